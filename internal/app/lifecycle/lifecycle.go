package lifecycle

import (
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"veil/internal/app/errors"
	"veil/internal/app/process"
	"veil/internal/config/logger"
)

// escalation is the order signals are sent in; every step but the last waits for the task to exit
var escalation = []syscall.Signal{syscall.SIGTERM, syscall.SIGKILL}

// Lifecycle handles process group configuration and termination
type Lifecycle interface {
	Configure(cmd *exec.Cmd)
	Terminate(proc process.Process, timeout time.Duration) error
}

// lifecycle implements the Lifecycle interface
type lifecycle struct {
	log logger.Logger
}

// NewLifecycle creates a new Lifecycle instance
func NewLifecycle(log logger.Logger) Lifecycle {
	return &lifecycle{log: log.WithComponent("LIFECYCLE")}
}

// Configure puts the command in its own process group so the whole task tree can be signalled
func (l *lifecycle) Configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// Terminate walks the escalation ladder until the task exits, giving each step timeout to take effect
func (l *lifecycle) Terminate(proc process.Process, timeout time.Duration) error {
	if proc.PID() == 0 || exited(proc) {
		return nil
	}

	l.log.Info().Msgf("Stopping task '%s' (PID: %d)", proc.Name(), proc.PID())

	for i, sig := range escalation {
		last := i == len(escalation)-1

		if err := l.signal(proc, sig); err != nil {
			if last {
				return fmt.Errorf("%w: %w", errors.ErrFailedToTerminateProcess, err)
			}

			l.log.Warn().Err(err).Msgf("Failed to send %s to task '%s'", sig, proc.Name())

			continue
		}

		if last {
			<-proc.Done()
			return nil
		}

		select {
		case <-proc.Done():
			return nil
		case <-time.After(timeout):
			l.log.Warn().Msgf("Task '%s' ignored %s for %s, escalating", proc.Name(), sig, timeout)
		}
	}

	return nil
}

// signal targets the task's process group, falling back to the leader alone
func (l *lifecycle) signal(proc process.Process, sig syscall.Signal) error {
	if err := syscall.Kill(-proc.PID(), sig); err == nil {
		return nil
	}

	return proc.Cmd().Process.Signal(sig)
}

func exited(proc process.Process) bool {
	select {
	case <-proc.Done():
		return true
	default:
		return false
	}
}
