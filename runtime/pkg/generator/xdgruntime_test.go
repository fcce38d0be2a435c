package generator

import (
	"testing"

	"github.com/docker/docker/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func runXDG(t *testing.T, uid int, env map[string]string, paths ...string) error {
	t.Helper()
	_, err := Stage{Name: "45-xdg-runtime-dir", Generate: XDGRuntimeDir}.Apply(baseDoc(), newSnapshot(uid, env, paths...))
	return err
}

func TestXDGRuntimeDirPolicy(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		err := runXDG(t, 0, map[string]string{"XDG_RUNTIME_DIR": "/run/user/0"})
		assert.ErrorContains(t, err, "root")
		assert.Check(t, errdefs.IsForbidden(err))
	})
	t.Run("suffix", func(t *testing.T) {
		err := runXDG(t, 1000, map[string]string{"XDG_RUNTIME_DIR": "/run/user/1000x"})
		assert.ErrorContains(t, err, "XDG_RUNTIME_DIR")
		assert.Check(t, errdefs.IsForbidden(err))
	})
	t.Run("trailing slash", func(t *testing.T) {
		assert.Check(t, runXDG(t, 1000, map[string]string{"XDG_RUNTIME_DIR": "/run/user/1000/"}) != nil)
	})
	t.Run("unset", func(t *testing.T) {
		assert.Check(t, runXDG(t, 1000, nil) != nil)
	})
}

func TestXDGRuntimeDirMinimal(t *testing.T) {
	snap := newSnapshot(1000, map[string]string{"XDG_RUNTIME_DIR": "/run/user/1000"})
	out := apply(t, XDGRuntimeDir, baseDoc(), snap)
	assert.Equal(t, len(out.Mounts), 1)
	tmpfs := out.Mounts[0]
	assert.Equal(t, tmpfs.Destination, "/run/user/1000")
	assert.Equal(t, tmpfs.Type, "tmpfs")
	assert.DeepEqual(t, tmpfs.Options, []string{"nodev", "nosuid", "mode=700"})
}

func TestXDGRuntimeDirBridges(t *testing.T) {
	snap := newSnapshot(1000, map[string]string{
		"XDG_RUNTIME_DIR":          "/run/user/1000",
		"WAYLAND_DISPLAY":          "wayland-1",
		"DBUS_SESSION_BUS_ADDRESS": "unix:path=/run/user/1000/bus,guid=0123",
	},
		"/run/user/1000/pulse",
		"/run/user/1000/wayland-1",
		"/run/user/1000/bus",
		"/run/user/1000/dconf",
	)
	snap.Options.TmpfsSize = 8 << 20
	out := apply(t, XDGRuntimeDir, baseDoc(), snap)

	assert.Check(t, is.Contains(out.Mounts[0].Options, "size=8388608"))
	assertBind(t, out, "/run/user/1000/pulse", "/run/user/1000/pulse")
	assertNoMount(t, out, "/run/user/1000/gvfs")
	assertBind(t, out, "/run/user/1000/wayland-1", "/run/user/1000/wayland-1")
	assertBind(t, out, "/run/user/1000/bus", "/run/user/1000/bus")
	assertBind(t, out, "/run/user/1000/dconf", "/run/user/1000/dconf")
}

func TestXDGRuntimeDirRejectsEscapes(t *testing.T) {
	snap := newSnapshot(1000, map[string]string{
		"XDG_RUNTIME_DIR":          "/run/user/1000",
		"WAYLAND_DISPLAY":          "../1001/wayland-0",
		"DBUS_SESSION_BUS_ADDRESS": "unix:path=/tmp/dbus-abc",
	},
		"/run/user/1001/wayland-0",
		"/tmp/dbus-abc",
	)
	out := apply(t, XDGRuntimeDir, baseDoc(), snap)
	assert.Equal(t, len(out.Mounts), 1)
}

func TestXDGRuntimeDirMissingSockets(t *testing.T) {
	snap := newSnapshot(1000, map[string]string{
		"XDG_RUNTIME_DIR":          "/run/user/1000",
		"WAYLAND_DISPLAY":          "wayland-0",
		"DBUS_SESSION_BUS_ADDRESS": "unix:path=/run/user/1000/bus",
	})
	out := apply(t, XDGRuntimeDir, baseDoc(), snap)
	assertNoMount(t, out, "/run/user/1000/wayland-0")
	assertNoMount(t, out, "/run/user/1000/bus")
}

func TestSessionBusPath(t *testing.T) {
	cases := map[string]string{
		"unix:path=/run/user/1000/bus":           "/run/user/1000/bus",
		"unix:path=/run/user/1000/bus,guid=abcd": "/run/user/1000/bus",
		"unix:abstract=/tmp/dbus-x":              "",
		"unix:path=":                             "",
		"":                                       "",
	}
	for in, expected := range cases {
		got, ok := sessionBusPath(in)
		assert.Equal(t, got, expected, in)
		assert.Equal(t, ok, expected != "", in)
	}
}
