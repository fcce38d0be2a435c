package generator

import (
	"strings"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/capabilities"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

var basicNamespaces = []specs.LinuxNamespaceType{
	specs.PIDNamespace,
	specs.MountNamespace,
	specs.UTSNamespace,
	specs.IPCNamespace,
	specs.UserNamespace,
}

// Basics fills in what every sandboxed process needs regardless of the
// application: the namespaces, the pseudo filesystems and a locked down
// process.
func Basics(doc *specs.Spec, snap *host.Snapshot) error {
	p := config.EnsureProcess(doc)
	if p.Cwd == "" {
		p.Cwd = "/"
	}
	hasPath := false
	for _, e := range p.Env {
		if strings.HasPrefix(e, "PATH=") {
			hasPath = true
			break
		}
	}
	if !hasPath {
		p.Env = append(p.Env, "PATH="+utils.DefaultPath)
	}
	p.NoNewPrivileges = true

	known, unknown := capabilities.Split(capabilities.Default)
	if len(unknown) > 0 {
		logrus.Warn("ignoring unknown or unavailable capabilities: ", unknown)
	}
	p.Capabilities = capabilities.ForProcess(known)

	linux := config.EnsureLinux(doc)
	for _, t := range basicNamespaces {
		addNamespace(linux, t)
	}

	config.AddMounts(doc,
		specs.Mount{
			Destination: "/proc",
			Type:        string(config.TypeProc),
			Source:      "proc",
			Options:     []string{config.OptNosuid, config.OptNoexec, config.OptNodev},
		},
		config.Tmpfs("/dev", "strictatime", "mode=755", "size=65536k"),
		specs.Mount{
			Destination: "/dev/pts",
			Type:        string(config.TypeDevpts),
			Source:      "devpts",
			Options:     []string{config.OptNosuid, config.OptNoexec, "newinstance", "ptmxmode=0666", "mode=0620"},
		},
		config.Tmpfs("/dev/shm", config.OptNoexec, "mode=1777"),
		specs.Mount{
			Destination: "/dev/mqueue",
			Type:        string(config.TypeMqueue),
			Source:      "mqueue",
			Options:     []string{config.OptNosuid, config.OptNoexec, config.OptNodev},
		},
		config.BindRO("/sys", "/sys"),
	)
	return nil
}

func addNamespace(linux *specs.Linux, t specs.LinuxNamespaceType) {
	for _, ns := range linux.Namespaces {
		if ns.Type == t {
			return
		}
	}
	linux.Namespaces = append(linux.Namespaces, specs.LinuxNamespace{Type: t})
}
