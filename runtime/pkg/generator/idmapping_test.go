package generator

import (
	"testing"

	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIdentityMapping(t *testing.T) {
	doc := baseDoc()
	doc.Linux = &specs.Linux{
		UIDMappings: []specs.LinuxIDMapping{{ContainerID: 0, HostID: 100000, Size: 65536}},
	}
	snap := newSnapshot(1000, nil)
	snap.GID = 1001

	out := apply(t, IdentityMapping, doc, snap)
	assert.DeepEqual(t, out.Linux.UIDMappings, []specs.LinuxIDMapping{{ContainerID: 1000, HostID: 1000, Size: 1}})
	assert.DeepEqual(t, out.Linux.GIDMappings, []specs.LinuxIDMapping{{ContainerID: 1001, HostID: 1001, Size: 1}})
}

func TestIdentityMappingCreatesLinux(t *testing.T) {
	out := apply(t, IdentityMapping, baseDoc(), newSnapshot(4242, nil))
	assert.Equal(t, len(out.Linux.UIDMappings), 1)
	assert.Equal(t, out.Linux.UIDMappings[0].HostID, uint32(4242))
	assert.Equal(t, len(out.Linux.GIDMappings), 1)
}

func TestIdentityMappingWarnsWhenUnmapped(t *testing.T) {
	defer func(ns func() bool, uids, gids func() ([]specs.LinuxIDMapping, error)) {
		inUserNS, currentUIDMap, currentGIDMap = ns, uids, gids
	}(inUserNS, currentUIDMap, currentGIDMap)

	inUserNS = func() bool { return true }
	currentUIDMap = func() ([]specs.LinuxIDMapping, error) {
		return []specs.LinuxIDMapping{{ContainerID: 0, HostID: 1000, Size: 1}}, nil
	}
	currentGIDMap = func() ([]specs.LinuxIDMapping, error) {
		return []specs.LinuxIDMapping{{ContainerID: 0, HostID: 1000, Size: 2000}}, nil
	}

	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	out := apply(t, IdentityMapping, baseDoc(), newSnapshot(1000, nil))
	assert.Equal(t, out.Linux.UIDMappings[0].HostID, uint32(1000))

	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
		}
	}
	assert.Check(t, is.DeepEqual(warnings, []string{"uid 1000 is not mapped in the current user namespace"}))
}
