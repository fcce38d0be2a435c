package generator

import (
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

type bridge struct {
	source      string
	destination string
}

// staticFiles are host configuration files exposed read-only when present.
var staticFiles = []bridge{
	{"/etc/hosts", utils.HostRoot + "/network/etc/hosts"},
	{"/etc/host.conf", "/etc/host.conf"},
	{"/etc/nsswitch.conf", "/etc/nsswitch.conf"},
	{"/etc/timezone", "/etc/timezone"},
	{"/etc/hostname", utils.HostRoot + "/etc/hostname"},
	{"/etc/os-release", utils.HostRoot + "/os-release"},
}

// HostStatics exposes the static host configuration files that exist.
func HostStatics(doc *specs.Spec, snap *host.Snapshot) error {
	for _, b := range staticFiles {
		if !snap.Exists(b.source) {
			logrus.Debugf("%s not found on host, skipped", b.source)
			continue
		}
		config.AddMounts(doc, config.BindRO(b.source, b.destination))
	}
	return nil
}
