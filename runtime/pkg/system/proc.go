package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// State is the one letter process state from /proc/<pid>/stat.
type State rune

const (
	Running  State = 'R'
	Sleeping State = 'S'
	Stopped  State = 'T'
	Zombie   State = 'Z'
	Dead     State = 'X'
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Sleeping:
		return "sleeping"
	case Stopped:
		return "stopped"
	case Zombie:
		return "zombie"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("unknown (%c)", s)
	}
}

// Stat_t holds the fields of /proc/<pid>/stat the supervisor cares about.
type Stat_t struct {
	Name  string
	State State
	PPid  int
	Pgrp  int
}

// Stat 读取 /proc/<pid>/stat
func Stat(pid int) (Stat_t, error) {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return Stat_t{}, errors.Wrapf(err, "read stat of pid %d", pid)
	}
	return parseStat(string(data))
}

// IsZombie reports whether pid has exited but not been reaped yet. A process
// that cannot be inspected is treated as gone.
func IsZombie(pid int) bool {
	st, err := Stat(pid)
	if err != nil {
		return true
	}
	return st.State == Zombie || st.State == Dead
}

func parseStat(data string) (Stat_t, error) {
	var stat Stat_t

	// comm may contain spaces and parentheses, it ends at the last ')'.
	first := strings.IndexByte(data, '(')
	last := strings.LastIndexByte(data, ')')
	if first < 0 || last <= first {
		return stat, errors.Errorf("invalid stat data (no comm): %q", data)
	}
	stat.Name = data[first+1 : last]

	fields := strings.Fields(data[last+1:])
	if len(fields) < 3 || len(fields[0]) != 1 {
		return stat, errors.Errorf("invalid stat data (too short): %q", data)
	}
	stat.State = State(fields[0][0])

	var err error
	if stat.PPid, err = strconv.Atoi(fields[1]); err != nil {
		return stat, errors.Wrap(err, "invalid stat data (bad ppid)")
	}
	if stat.Pgrp, err = strconv.Atoi(fields[2]); err != nil {
		return stat, errors.Wrap(err, "invalid stat data (bad pgrp)")
	}
	return stat, nil
}
