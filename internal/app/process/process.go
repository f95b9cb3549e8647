package process

import (
	"os/exec"
)

// Process represents a running task command
type Process interface {
	Name() string
	Cmd() *exec.Cmd
	PID() int
	Done() <-chan struct{}
	Err() error
}

// Handle wraps a Process with lifecycle control methods
type Handle struct {
	Process
	proc *proc
}

// Close records the exit error and signals that the process has exited
func (h *Handle) Close(err error) {
	h.proc.err = err
	close(h.proc.done)
}

// Params contains parameters for creating a new process
type Params struct {
	Name string
	Cmd  *exec.Cmd
}

// proc implements the Process interface
type proc struct {
	name string
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

// NewProcess creates a new Process instance and returns a Handle for lifecycle control
func NewProcess(p Params) *Handle {
	process := &proc{
		name: p.Name,
		cmd:  p.Cmd,
		done: make(chan struct{}),
	}

	return &Handle{
		Process: process,
		proc:    process,
	}
}

// Name returns the task name
func (p *proc) Name() string {
	return p.name
}

// Cmd returns the underlying exec command
func (p *proc) Cmd() *exec.Cmd {
	return p.cmd
}

// PID returns the process id, or 0 before the command started
func (p *proc) PID() int {
	if p.cmd == nil || p.cmd.Process == nil {
		return 0
	}

	return p.cmd.Process.Pid
}

// Done returns a channel that closes when the process exits
func (p *proc) Done() <-chan struct{} {
	return p.done
}

// Err returns the exit error; only valid once Done is closed
func (p *proc) Err() error {
	return p.err
}
