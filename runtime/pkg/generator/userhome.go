package generator

import (
	"path/filepath"
	"strconv"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/docker/docker/errdefs"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// xdgDir is one XDG base directory category. Categories without a shadow
// name are passed through so applications can see each other's data,
// the others get a private per-app directory so settings do not leak.
type xdgDir struct {
	env      string
	fallback string
	shadow   string
}

var xdgDirs = []xdgDir{
	{env: "XDG_DATA_HOME", fallback: ".local/share"},
	{env: "XDG_CONFIG_HOME", fallback: ".config", shadow: "config"},
	{env: "XDG_CACHE_HOME", fallback: ".cache", shadow: "cache"},
	{env: "XDG_STATE_HOME", fallback: ".local/state", shadow: "state"},
}

var userDirs = []string{
	"Desktop",
	"Documents",
	"Downloads",
	"Music",
	"Pictures",
	"Videos",
	"Public",
	"Templates",
}

// UserHome builds a private home directory. Shared user content is bound
// from the host, per application state lives under
// $HOME/.linglong/<appID>.
func UserHome(doc *specs.Spec, snap *host.Snapshot) error {
	appID, err := config.AppID(doc)
	if err != nil {
		return err
	}
	home := snap.Getenv("HOME")
	if home == "" || !filepath.IsAbs(home) {
		return errdefs.InvalidParameter(errors.Errorf("HOME=%q is not an absolute path", home))
	}
	home = filepath.Clean(home)

	homeOptions := []string{"mode=700"}
	if size := snap.Options.TmpfsSize; size > 0 {
		homeOptions = append(homeOptions, "size="+strconv.FormatInt(size, 10))
	}
	config.AddMounts(doc,
		config.Tmpfs("/home", "mode=755"),
		config.Tmpfs(home, homeOptions...),
	)

	appData := filepath.Join(home, utils.LinglongDataDir, appID)
	configHome := ""
	for _, d := range xdgDirs {
		path := xdgPath(snap, home, d)
		if d.env == "XDG_CONFIG_HOME" {
			configHome = path
		}
		if d.shadow == "" {
			passthrough(doc, snap, path, false)
			continue
		}
		private := filepath.Join(appData, d.shadow)
		if err := snap.FS.MkdirAll(private, 0o700); err != nil {
			return errdefs.System(errors.Wrapf(err, "create %s", private))
		}
		config.AddMounts(doc, config.Bind(private, path))
	}

	for _, d := range userDirs {
		passthrough(doc, snap, filepath.Join(home, d), false)
	}
	passthrough(doc, snap, filepath.Join(home, ".deepinwine"), false)

	// The user directory names are host wide settings, they go on top of the
	// private config directory.
	for _, f := range []string{"user-dirs.dirs", "user-dirs.locale"} {
		passthrough(doc, snap, filepath.Join(configHome, f), true)
	}
	return nil
}

// xdgPath resolves the host location of an XDG category. Unset or relative
// values fall back to the default below $HOME, as the XDG base directory
// rules require. Values outside $HOME are not bridged either.
func xdgPath(snap *host.Snapshot, home string, d xdgDir) string {
	v := snap.Getenv(d.env)
	switch {
	case v == "":
	case !filepath.IsAbs(v):
		logrus.Warnf("%s=%q is not absolute, using the default", d.env, v)
	case !utils.IsUnder(v, home):
		logrus.Warnf("%s=%q is outside %s, using the default", d.env, v, home)
	default:
		return filepath.Clean(v)
	}
	return filepath.Join(home, d.fallback)
}

func passthrough(doc *specs.Spec, snap *host.Snapshot, path string, readonly bool) {
	if !snap.Exists(path) {
		logrus.Debugf("%s not found, skipped", path)
		return
	}
	if readonly {
		config.AddMounts(doc, config.BindRO(path, path))
		return
	}
	config.AddMounts(doc, config.Bind(path, path))
}
