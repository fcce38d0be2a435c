package generator

import (
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/opencontainers/runtime-spec/specs-go"
)

// legacyMounts are shared system resources older applications expect. The
// table is applied as is, a missing source is left for the namespace
// constructor to tolerate.
var legacyMounts = []bridge{
	{"/etc/resolv.conf", utils.HostRoot + "/network/etc/resolv.conf"},
	{"/usr/lib/locale/", "/usr/lib/locale/"},
	{"/usr/share/themes", "/usr/share/themes"},
	{"/usr/share/icons", "/usr/share/icons"},
	{"/usr/share/zoneinfo", "/usr/share/zoneinfo"},
	{"/etc/localtime", utils.HostRoot + "/etc/localtime"},
	{"/etc/machine-id", utils.HostRoot + "/etc/machine-id"},
	{"/etc/machine-id", "/etc/machine-id"},
	{"/etc/ssl/certs", "/etc/ssl/certs"},
	{"/usr/share/fonts", "/usr/share/fonts"},
	{"/var/cache/fontconfig", utils.HostRoot + "/appearance/fonts-cache"},
	{"/usr/share/X11/xkb", "/usr/share/X11/xkb"},
}

// Legacy appends the compatibility mounts. It runs last so no later stage
// can shadow them.
func Legacy(doc *specs.Spec, _ *host.Snapshot) error {
	for _, b := range legacyMounts {
		config.AddMounts(doc, config.BindRO(b.source, b.destination))
	}
	return nil
}
