package generator

import (
	"os"
	"testing"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/opencontainers/runtime-spec/specs-go"
	"gotest.tools/v3/assert"
)

const testAppID = "org.deepin.demo"

// fakeFS answers existence checks from a fixed set of paths.
type fakeFS struct {
	paths map[string]bool
	made  []string
}

func newFakeFS(paths ...string) *fakeFS {
	f := &fakeFS{paths: make(map[string]bool)}
	for _, p := range paths {
		f.paths[p] = true
	}
	return f
}

func (f *fakeFS) Exists(path string) bool {
	return f.paths[path]
}

func (f *fakeFS) MkdirAll(path string, _ os.FileMode) error {
	f.made = append(f.made, path)
	f.paths[path] = true
	return nil
}

func newSnapshot(uid int, env map[string]string, paths ...string) *host.Snapshot {
	if env == nil {
		env = map[string]string{}
	}
	return &host.Snapshot{
		UID: uid,
		GID: uid,
		Env: env,
		FS:  newFakeFS(paths...),
	}
}

func baseDoc() *specs.Spec {
	return &specs.Spec{
		Version: config.Version,
		Process: &specs.Process{
			Args: []string{"/opt/apps/org.deepin.demo/files/bin/demo"},
		},
		Annotations: map[string]string{
			config.AnnotationAppID: testAppID,
		},
	}
}

func mountsAt(doc *specs.Spec, destination string) []specs.Mount {
	var out []specs.Mount
	for _, m := range doc.Mounts {
		if m.Destination == destination {
			out = append(out, m)
		}
	}
	return out
}

func assertBind(t *testing.T, doc *specs.Spec, source, destination string) {
	t.Helper()
	ms := mountsAt(doc, destination)
	assert.Equal(t, len(ms), 1, "expected one mount at %s, got %+v", destination, ms)
	assert.Equal(t, ms[0].Source, source)
	assert.Equal(t, ms[0].Type, "bind")
}

func assertNoMount(t *testing.T, doc *specs.Spec, destination string) {
	t.Helper()
	ms := mountsAt(doc, destination)
	assert.Equal(t, len(ms), 0, "unexpected mount at %s: %+v", destination, ms)
}

func apply(t *testing.T, fn Func, doc *specs.Spec, snap *host.Snapshot) *specs.Spec {
	t.Helper()
	out, err := Stage{Name: "test", Generate: fn}.Apply(doc, snap)
	assert.NilError(t, err)
	return out
}

var legacyTestMount = config.Tmpfs("/tmp")
