package userns

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
)

const (
	uidMapPath = "/proc/self/uid_map"
	gidMapPath = "/proc/self/gid_map"
)

var (
	inUserNS bool
	nsOnce   sync.Once
)

// RunningInUserNS reports whether the current process already lives in a
// user namespace other than the initial one.
func RunningInUserNS() bool {
	nsOnce.Do(func() {
		f, err := os.Open(uidMapPath)
		if err != nil {
			// This kernel-provided file only exists if user namespaces are supported.
			return
		}
		defer f.Close()
		maps, err := ParseIDMap(f)
		if err != nil {
			return
		}
		inUserNS = !isInitialMap(maps)
	})
	return inUserNS
}

// CurrentUIDMap returns the uid map of the current process.
func CurrentUIDMap() ([]specs.LinuxIDMapping, error) {
	return readIDMap(uidMapPath)
}

// CurrentGIDMap returns the gid map of the current process.
func CurrentGIDMap() ([]specs.LinuxIDMapping, error) {
	return readIDMap(gidMapPath)
}

func readIDMap(path string) ([]specs.LinuxIDMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ParseIDMap(f)
}

// Mapped reports whether id falls into the inside range of one of maps.
func Mapped(maps []specs.LinuxIDMapping, id uint32) bool {
	for _, m := range maps {
		if uint64(id) >= uint64(m.ContainerID) && uint64(id) < uint64(m.ContainerID)+uint64(m.Size) {
			return true
		}
	}
	return false
}

// ParseIDMap reads the "inside outside length" triples of a
// /proc/<pid>/{uid,gid}_map file.
func ParseIDMap(r io.Reader) ([]specs.LinuxIDMapping, error) {
	var maps []specs.LinuxIDMapping
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		var m specs.LinuxIDMapping
		if _, err := fmt.Sscanf(line, "%d %d %d", &m.ContainerID, &m.HostID, &m.Size); err != nil {
			return nil, errors.Wrapf(err, "invalid id map line %q", line)
		}
		maps = append(maps, m)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return maps, nil
}

// As per user_namespaces(7), the initial user namespace maps the full
// 32-bit range onto itself: "0 0 4294967295". An empty map is the state
// right after a namespace was created and before it was written.
func isInitialMap(maps []specs.LinuxIDMapping) bool {
	if len(maps) != 1 {
		return false
	}
	m := maps[0]
	return m.ContainerID == 0 && m.HostID == 0 && m.Size == 4294967295
}
