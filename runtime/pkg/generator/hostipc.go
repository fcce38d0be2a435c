package generator

import (
	"path/filepath"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

const (
	systemBusSocket = "/run/dbus/system_bus_socket"
	x11SocketDir    = "/tmp/.X11-unix"
)

// HostIPC bridges the system bus and X11. Each socket is only bridged when
// the environment points at exactly the expected location.
func HostIPC(doc *specs.Spec, snap *host.Snapshot) error {
	if addr := snap.Getenv("DBUS_SYSTEM_BUS_ADDRESS"); addr != systemBusSocket {
		logrus.Debugf("DBUS_SYSTEM_BUS_ADDRESS=%q is not %s, system bus not bridged", addr, systemBusSocket)
	} else if !snap.Exists(systemBusSocket) {
		logrus.Debugf("%s not found, system bus not bridged", systemBusSocket)
	} else {
		config.AddMounts(doc, config.Bind(systemBusSocket, systemBusSocket))
	}

	bridgeXauthority(doc, snap)

	config.AddMounts(doc, config.Bind(x11SocketDir, x11SocketDir))
	return nil
}

func bridgeXauthority(doc *specs.Spec, snap *host.Snapshot) {
	xauth := snap.Getenv("XAUTHORITY")
	home := snap.Getenv("HOME")
	if xauth == "" || home == "" || !filepath.IsAbs(home) {
		logrus.Debug("XAUTHORITY or HOME unset, X authority not bridged")
		return
	}
	if xauth != filepath.Join(home, ".Xauthority") {
		logrus.Infof("XAUTHORITY=%q is not $HOME/.Xauthority, X authority not bridged", xauth)
		return
	}
	if !snap.Exists(xauth) {
		logrus.Debugf("%s not found, X authority not bridged", xauth)
		return
	}
	config.AddMounts(doc, config.BindRO(xauth, xauth))
}
