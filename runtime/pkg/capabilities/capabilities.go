package capabilities

import (
	"sort"
	"strings"

	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/syndtr/gocapability/capability"
)

// Default is the capability set a sandboxed application starts with. It
// matches what container engines hand to unprivileged containers.
var Default = []string{
	"CAP_CHOWN",
	"CAP_DAC_OVERRIDE",
	"CAP_FOWNER",
	"CAP_FSETID",
	"CAP_KILL",
	"CAP_NET_BIND_SERVICE",
	"CAP_SETFCAP",
	"CAP_SETGID",
	"CAP_SETPCAP",
	"CAP_SETUID",
	"CAP_SYS_CHROOT",
	"CAP_AUDIT_WRITE",
}

var capabilityMap map[string]capability.Cap

func init() {
	capabilityMap = make(map[string]capability.Cap, capability.CAP_LAST_CAP+1)
	for _, c := range capability.List() {
		// CAP_LAST_CAP is read from the running kernel, newer names the
		// kernel does not know about are left out.
		if c > capability.CAP_LAST_CAP {
			continue
		}
		capabilityMap["CAP_"+strings.ToUpper(c.String())] = c
	}
}

// Split separates caps into the names the running kernel supports and the
// ones it does not. Known names keep their input order, unknown names are
// sorted and deduplicated.
func Split(caps []string) (known, unknown []string) {
	unknownSet := make(map[string]struct{})
	for _, c := range caps {
		if _, ok := capabilityMap[c]; ok {
			known = append(known, c)
		} else {
			unknownSet[c] = struct{}{}
		}
	}
	for c := range unknownSet {
		unknown = append(unknown, c)
	}
	sort.Strings(unknown)
	return known, unknown
}

// ForProcess builds the process capability sets from caps. Inheritable is
// left empty so exec'd binaries cannot regain dropped capabilities.
func ForProcess(caps []string) *specs.LinuxCapabilities {
	return &specs.LinuxCapabilities{
		Bounding:  append([]string(nil), caps...),
		Effective: append([]string(nil), caps...),
		Permitted: append([]string(nil), caps...),
	}
}
