// Package initd is the first process inside the sandbox. It starts the
// application, reaps every process that ends up parented to it and forwards
// termination requests to the application.
package initd

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/DeJeune/llbox/runtime/pkg/system"
	"github.com/docker/docker/errdefs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// handledSignals are routed to the reap loop. SIGTTIN and SIGTTOU are
// caught only so the supervisor is never stopped by background terminal
// I/O, they are dropped.
var handledSignals = []os.Signal{
	unix.SIGCHLD,
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGTTIN,
	unix.SIGTTOU,
}

// Supervisor runs one primary command and stays alive until every
// descendant is gone.
type Supervisor struct {
	Args   []string
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	state   State
	primary int
	code    int
	last    Status
	signals chan os.Signal
}

// New returns a supervisor for args wired to the standard streams.
func New(args []string) *Supervisor {
	return &Supervisor{
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		code:   -1,
	}
}

// State returns the current lifecycle phase.
func (s *Supervisor) State() State {
	return s.state
}

// LastStatus returns the status of the most recently reaped process.
func (s *Supervisor) LastStatus() Status {
	return s.last
}

// Run starts the primary command and reaps until no children remain. The
// returned code is the primary child's exit code, or -1 together with an
// error when the supervisor could not get the child running.
func (s *Supervisor) Run() (int, error) {
	if s.state != Idle {
		return -1, errdefs.InvalidParameter(errors.Errorf("supervisor is %s", s.state))
	}
	if len(s.Args) == 0 {
		return -1, errdefs.InvalidParameter(errors.New("no command given"))
	}
	s.code = -1

	if err := unix.Prctl(unix.PR_SET_CHILD_SUBREAPER, 1, 0, 0, 0); err != nil {
		return -1, errdefs.System(errors.Wrap(err, "become child subreaper"))
	}

	s.signals = make(chan os.Signal, 32)
	signal.Notify(s.signals, handledSignals...)
	defer signal.Stop(s.signals)

	if err := s.start(); err != nil {
		s.state = Terminated
		return -1, err
	}

	for {
		done, err := s.reap()
		if err != nil {
			s.state = Terminated
			return s.code, err
		}
		if done {
			break
		}
		s.handle(<-s.signals)
	}
	s.state = Terminated

	logrus.WithField("last", s.last.String()).Infof("all children reaped, exit code %d", s.code)
	return s.code, nil
}

func (s *Supervisor) start() error {
	cmd := exec.Command(s.Args[0], s.Args[1:]...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if s.Stdin != nil && controllingTerminal(s.Stdin) {
		cmd.SysProcAttr.Foreground = true
		cmd.SysProcAttr.Ctty = int(s.Stdin.Fd())
	} else {
		logrus.Debug("stdin is not our controlling terminal, child stays in the background")
	}

	if err := cmd.Start(); err != nil {
		return errdefs.System(errors.Wrapf(err, "start %s", s.Args[0]))
	}
	s.primary = cmd.Process.Pid
	// the loop below reaps with wait4, os/exec must not wait for it too
	_ = cmd.Process.Release()

	s.state = ChildRunning
	logrus.WithField("pid", s.primary).Debugf("started %v", s.Args)
	return nil
}

// reap collects every child that has already exited. It reports done once
// the supervisor has no children left.
func (s *Supervisor) reap() (bool, error) {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.ECHILD:
			return true, nil
		case err != nil:
			return false, errdefs.System(errors.Wrap(err, "wait4"))
		case pid == 0:
			return false, nil
		}

		s.last = Status{Pid: pid, WaitStatus: ws}
		logrus.WithField("pid", pid).Debugf("reaped: %s", s.last)
		if pid == s.primary {
			s.code = s.last.ExitCode()
			s.primary = 0
			s.state = Draining
		}
	}
}

func (s *Supervisor) handle(sig os.Signal) {
	switch sig {
	case unix.SIGINT, unix.SIGTERM:
		s.forward(sig.(syscall.Signal))
	case unix.SIGCHLD:
	default:
		logrus.Debugf("ignoring %s", sig)
	}
}

func (s *Supervisor) forward(sig syscall.Signal) {
	if s.primary == 0 {
		logrus.Debugf("%s received, no child to forward to", sig)
		return
	}
	if system.IsZombie(s.primary) {
		logrus.WithField("pid", s.primary).Debugf("child already exited, %s not forwarded", sig)
		return
	}
	if err := unix.Kill(s.primary, sig); err != nil {
		logrus.WithField("pid", s.primary).Warnf("forward %s: %v", sig, err)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// controllingTerminal reports whether f is the terminal this process can
// hand its foreground to. A tty that is not ours (after setsid, or a pty
// slave opened with O_NOCTTY) answers TIOCGPGRP with ENOTTY.
func controllingTerminal(f *os.File) bool {
	if !isTerminal(f) {
		return false
	}
	if _, err := unix.IoctlGetInt(int(f.Fd()), unix.TIOCGPGRP); err != nil {
		logrus.Debugf("%s is a terminal but not the controlling one: %v", f.Name(), err)
		return false
	}
	return true
}
