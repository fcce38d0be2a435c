package generator

import (
	"strings"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

// forwardedEnv is the fixed list of host variables a desktop application
// gets to see: display, locale, input method, proxy and session settings.
var forwardedEnv = []string{
	"DISPLAY",
	"LANG",
	"LANGUAGE",
	"XDG_SESSION_DESKTOP",
	"D_DISABLE_RT_SCREEN_SCALE",
	"XMODIFIERS",
	"XCURSOR_SIZE",
	"DESKTOP_SESSION",
	"DEEPIN_WINE_SCALE",
	"XDG_CURRENT_DESKTOP",
	"XIM",
	"XDG_SESSION_TYPE",
	"XDG_RUNTIME_DIR",
	"CLUTTER_IM_MODULE",
	"QT4_IM_MODULE",
	"GTK_IM_MODULE",
	"QT_IM_MODULE",
	"auto_proxy",
	"http_proxy",
	"https_proxy",
	"ftp_proxy",
	"SOCKS_SERVER",
	"no_proxy",
	"all_proxy",
	"dde_proxy",
	"DBUS_SESSION_BUS_ADDRESS",
	"HOME",
	"WAYLAND_DISPLAY",
	"QT_QPA_PLATFORM",
	"QT_WAYLAND_SHELL_INTEGRATION",
	"QT_WAYLAND_FORCE_DPI",
	"QT_SCALE_FACTOR",
	"GDK_SCALE",
	"GDK_DPI_SCALE",
	"USER",
	"TERM",
}

const appIDEnv = "LINGLONG_APPID"

// ForwardedEnv returns a copy of the environment allow-list.
func ForwardedEnv() []string {
	return append([]string(nil), forwardedEnv...)
}

// HostEnvironment tags the process with its application id and forwards the
// allow-listed host variables. Containers marked onlyApp get the whole host
// environment instead.
func HostEnvironment(doc *specs.Spec, snap *host.Snapshot) error {
	appID, err := config.AppID(doc)
	if err != nil {
		return err
	}
	p := config.EnsureProcess(doc)
	config.SetEnv(p, appIDEnv, appID)

	if config.OnlyApp(doc) {
		logrus.Debug("onlyApp container, forwarding the whole host environment")
		for _, kv := range snap.Environ() {
			k, v, _ := strings.Cut(kv, "=")
			if k == appIDEnv {
				// the outer app's id, never ours
				continue
			}
			config.SetEnv(p, k, v)
		}
		return nil
	}

	for _, name := range forwardedEnv {
		if v := snap.Getenv(name); v != "" {
			config.SetEnv(p, name, v)
		}
	}
	return nil
}
