package generator

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/docker/docker/errdefs"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const dbusUnixPathPrefix = "unix:path="

// runtimeSubdirs are bridged verbatim when present.
var runtimeSubdirs = []string{"pulse", "gvfs"}

// XDGRuntimeDir gives the sandbox a private runtime directory and bridges
// the sockets desktop applications talk to. Running as root or with an
// unexpected XDG_RUNTIME_DIR aborts the launch.
func XDGRuntimeDir(doc *specs.Spec, snap *host.Snapshot) error {
	if snap.UID == 0 {
		return errdefs.Forbidden(errors.New("refusing to run an application as root"))
	}
	runtimeDir := fmt.Sprintf(utils.RuntimeDirFormat, snap.UID)
	if got := snap.Getenv("XDG_RUNTIME_DIR"); got != runtimeDir {
		return errdefs.Forbidden(errors.Errorf("XDG_RUNTIME_DIR=%q, expected %q", got, runtimeDir))
	}

	options := []string{"mode=700"}
	if size := snap.Options.TmpfsSize; size > 0 {
		options = append(options, "size="+strconv.FormatInt(size, 10))
	}
	config.AddMounts(doc, config.Tmpfs(runtimeDir, options...))

	for _, name := range runtimeSubdirs {
		bridgeRuntimePath(doc, snap, filepath.Join(runtimeDir, name))
	}

	if display := snap.Getenv("WAYLAND_DISPLAY"); display != "" {
		socket := filepath.Join(runtimeDir, display)
		if !utils.IsUnder(socket, runtimeDir) {
			logrus.Infof("WAYLAND_DISPLAY=%q leaves %s, wayland not bridged", display, runtimeDir)
		} else {
			bridgeRuntimePath(doc, snap, socket)
		}
	}

	if socket, ok := sessionBusPath(snap.Getenv("DBUS_SESSION_BUS_ADDRESS")); !ok {
		logrus.Debug("DBUS_SESSION_BUS_ADDRESS is not a unix:path address, session bus not bridged")
	} else if !utils.IsUnder(socket, runtimeDir) {
		logrus.Infof("session bus %s is outside %s, not bridged", socket, runtimeDir)
	} else {
		bridgeRuntimePath(doc, snap, filepath.Clean(socket))
	}

	bridgeRuntimePath(doc, snap, filepath.Join(runtimeDir, "dconf"))
	return nil
}

func bridgeRuntimePath(doc *specs.Spec, snap *host.Snapshot, path string) {
	if !snap.Exists(path) {
		logrus.Debugf("%s not found, skipped", path)
		return
	}
	config.AddMounts(doc, config.Bind(path, path))
}

// sessionBusPath extracts the socket path of a "unix:path=/x[,guid=...]"
// bus address.
func sessionBusPath(addr string) (string, bool) {
	if !strings.HasPrefix(addr, dbusUnixPathPrefix) {
		return "", false
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(addr, dbusUnixPathPrefix), ",")
	if path == "" {
		return "", false
	}
	return path, true
}
