package generator

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestHostStatics(t *testing.T) {
	out := apply(t, HostStatics, baseDoc(), newSnapshot(1000, nil, "/etc/hosts", "/etc/os-release"))
	assert.Equal(t, len(out.Mounts), 2)
	assertBind(t, out, "/etc/hosts", "/run/host/network/etc/hosts")
	assertBind(t, out, "/etc/os-release", "/run/host/os-release")
}

func TestLegacyIsFixed(t *testing.T) {
	for _, snap := range [][]string{nil, {"/etc/resolv.conf", "/usr/share/fonts"}} {
		doc := baseDoc()
		doc.Mounts = append(doc.Mounts, legacyTestMount)
		out := apply(t, Legacy, doc, newSnapshot(1000, nil, snap...))
		assert.Equal(t, len(out.Mounts), 13)
		assert.DeepEqual(t, out.Mounts[0], legacyTestMount)
		for _, m := range out.Mounts[1:] {
			assert.Equal(t, m.Type, "bind")
			assert.DeepEqual(t, m.Options, []string{"rbind", "ro"})
		}
	}
	out := apply(t, Legacy, baseDoc(), newSnapshot(1000, nil))
	assert.Equal(t, len(mountsAt(out, "/etc/machine-id")), 1)
	assert.Equal(t, len(mountsAt(out, "/run/host/etc/machine-id")), 1)
}
