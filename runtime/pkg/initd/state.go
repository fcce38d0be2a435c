package initd

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// State is the lifecycle phase of a Supervisor.
type State int

const (
	// Idle 尚未启动子进程
	Idle State = iota
	// ChildRunning means the primary child is alive.
	ChildRunning
	// Draining means the primary child was reaped and orphans are still
	// being collected.
	Draining
	// Terminated means no children remain.
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ChildRunning:
		return "child-running"
	case Draining:
		return "draining"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Status is the wait status of one reaped process.
type Status struct {
	Pid        int
	WaitStatus unix.WaitStatus
}

// ExitCode folds the wait status into a shell style exit code: the exit
// status, 128+signal for a killed process, -1 otherwise.
func (s Status) ExitCode() int {
	switch {
	case s.WaitStatus.Exited():
		return s.WaitStatus.ExitStatus()
	case s.WaitStatus.Signaled():
		return 128 + int(s.WaitStatus.Signal())
	default:
		return -1
	}
}

func (s Status) String() string {
	switch {
	case s.Pid == 0:
		return "unknown"
	case s.WaitStatus.Exited():
		return fmt.Sprintf("pid %d exited with code %d", s.Pid, s.WaitStatus.ExitStatus())
	case s.WaitStatus.Signaled():
		return fmt.Sprintf("pid %d killed by signal %s", s.Pid, unix.SignalName(s.WaitStatus.Signal()))
	default:
		return fmt.Sprintf("pid %d unknown status %#x", s.Pid, uint32(s.WaitStatus))
	}
}
