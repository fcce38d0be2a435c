// Package host samples the host state the generators are allowed to look
// at: the invoking identity, the environment and path existence.
package host

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/DeJeune/llbox/cli/opts"
)

// PathProber answers filesystem questions about the host. Generators never
// touch the filesystem directly.
type PathProber interface {
	// Exists reports whether path exists, following symlinks.
	Exists(path string) bool
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm os.FileMode) error
}

// Options are the tunables loaded from the configuration file.
type Options struct {
	// TmpfsSize is the size limit in bytes for private tmpfs mounts, 0 means
	// no limit.
	TmpfsSize int64
	// CDISpecDirs are the directories searched for CDI device specs.
	CDISpecDirs []string
}

// Snapshot is the host state sampled once per pipeline run.
type Snapshot struct {
	UID     int
	GID     int
	Env     map[string]string
	FS      PathProber
	Options Options
}

// Sample reads the current process identity and environment.
func Sample(o Options) *Snapshot {
	return &Snapshot{
		UID:     os.Geteuid(),
		GID:     os.Getegid(),
		Env:     opts.ConvertKVStringsToMap(os.Environ()),
		FS:      OSFS{},
		Options: o,
	}
}

// Getenv returns the value of name, or "" when unset.
func (s *Snapshot) Getenv(name string) string {
	return s.Env[name]
}

// LookupEnv returns the value of name and whether it is set.
func (s *Snapshot) LookupEnv(name string) (string, bool) {
	v, ok := s.Env[name]
	return v, ok
}

// Environ returns the environment as sorted KEY=VALUE pairs.
func (s *Snapshot) Environ() []string {
	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+s.Env[k])
	}
	return env
}

// Exists reports whether path exists on the host.
func (s *Snapshot) Exists(path string) bool {
	return s.FS.Exists(path)
}

// OSFS probes the real filesystem.
type OSFS struct{}

func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RootedFS resolves every absolute path below Root. It lets a directory tree
// stand in for the host filesystem.
type RootedFS struct {
	Root string
}

func (r RootedFS) resolve(path string) string {
	return filepath.Join(r.Root, filepath.Clean("/"+path))
}

func (r RootedFS) Exists(path string) bool {
	_, err := os.Stat(r.resolve(path))
	return err == nil
}

func (r RootedFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(r.resolve(path), perm)
}
