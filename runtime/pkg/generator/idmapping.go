package generator

import (
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/pkg/userns"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

var (
	inUserNS      = userns.RunningInUserNS
	currentUIDMap = userns.CurrentUIDMap
	currentGIDMap = userns.CurrentGIDMap
)

// IdentityMapping maps the invoking uid and gid onto themselves, one id
// each. The sandbox is rootless, nothing else from the host is mapped.
func IdentityMapping(doc *specs.Spec, snap *host.Snapshot) error {
	if inUserNS() {
		checkMapped("uid", snap.UID, currentUIDMap)
		checkMapped("gid", snap.GID, currentGIDMap)
	}
	linux := config.EnsureLinux(doc)
	linux.UIDMappings = []specs.LinuxIDMapping{{
		ContainerID: uint32(snap.UID),
		HostID:      uint32(snap.UID),
		Size:        1,
	}}
	linux.GIDMappings = []specs.LinuxIDMapping{{
		ContainerID: uint32(snap.GID),
		HostID:      uint32(snap.GID),
		Size:        1,
	}}
	return nil
}

// checkMapped warns when id has no mapping in the namespace ll-box runs in.
// The constructor could not map it onto itself then.
func checkMapped(kind string, id int, current func() ([]specs.LinuxIDMapping, error)) {
	maps, err := current()
	if err != nil {
		logrus.Warnf("read current %s map: %v", kind, err)
		return
	}
	if !userns.Mapped(maps, uint32(id)) {
		logrus.Warnf("%s %d is not mapped in the current user namespace", kind, id)
	}
}
