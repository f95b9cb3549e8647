package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

const stopGrace = 10 * time.Second

// capture collects process output while the test reads it
type capture struct {
	sync.Mutex
	bytes.Buffer
}

func (c *capture) Write(p []byte) (int, error) {
	c.Lock()
	defer c.Unlock()

	return c.Buffer.Write(p)
}

func (c *capture) String() string {
	c.Lock()
	defer c.Unlock()

	return c.Buffer.String()
}

// Runner manages a veil process for e2e tests
type Runner struct {
	t       *testing.T
	bin     string
	cmd     *exec.Cmd
	done    chan struct{}
	stdout  *capture
	stderr  *capture
	workDir string
}

// NewRunner creates a runner working in a fresh directory holding config as veil.yaml; an empty config writes no file
func NewRunner(t *testing.T, config string) *Runner {
	t.Helper()

	bin := os.Getenv("VEIL_BIN")
	if bin == "" {
		bin = "veil"
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		t.Skipf("veil binary not available: %v", err)
	}

	workDir := t.TempDir()

	if config != "" {
		if err := os.WriteFile(filepath.Join(workDir, "veil.yaml"), []byte(config), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}

	r := &Runner{
		t:       t,
		bin:     path,
		workDir: workDir,
		stdout:  &capture{},
		stderr:  &capture{},
	}

	t.Cleanup(func() { _ = r.Stop() })

	return r
}

// Start launches veil with args
func (r *Runner) Start(args ...string) error {
	r.cmd = exec.Command(r.bin, args...)
	r.cmd.Dir = r.workDir
	r.cmd.Stdout = r.stdout
	r.cmd.Stderr = r.stderr

	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start veil: %w", err)
	}

	r.done = make(chan struct{})

	go func() {
		_ = r.cmd.Wait()
		close(r.done)
	}()

	return nil
}

// Run launches veil with args and waits for it to exit
func (r *Runner) Run(timeout time.Duration, args ...string) (int, error) {
	if err := r.Start(args...); err != nil {
		return -1, err
	}

	select {
	case <-r.done:
		return r.ExitCode(), nil
	case <-time.After(timeout):
		return -1, fmt.Errorf("veil did not exit within %s\nStderr:\n%s", timeout, r.Stderr())
	}
}

// Stop interrupts a running veil, killing it if it has not exited after stopGrace
func (r *Runner) Stop() error {
	if r.done == nil || r.exited() {
		return nil
	}

	if err := r.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("interrupt veil: %w", err)
	}

	select {
	case <-r.done:
		return nil
	case <-time.After(stopGrace):
	}

	_ = r.cmd.Process.Kill()
	<-r.done

	return fmt.Errorf("veil ignored SIGTERM for %s", stopGrace)
}

// WaitForLog blocks until pattern appears in stderr or timeout
func (r *Runner) WaitForLog(pattern string, timeout time.Duration) error {
	if waitFor(timeout, func() bool { return strings.Contains(r.Stderr(), pattern) }) {
		return nil
	}

	return fmt.Errorf("no log line matching %q after %s\nStderr:\n%s", pattern, timeout, r.Stderr())
}

func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if cond() {
			return true
		}

		time.Sleep(25 * time.Millisecond)
	}

	return cond()
}

// WriteFile replaces a file in the working directory to trigger the watcher
func (r *Runner) WriteFile(name, content string) error {
	return os.WriteFile(filepath.Join(r.workDir, name), []byte(content), 0600)
}

// ReadFile returns a file from the working directory
func (r *Runner) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.workDir, name))
	return string(data), err
}

// Output returns current stdout content
func (r *Runner) Output() string {
	return r.stdout.String()
}

// Stderr returns current stderr content
func (r *Runner) Stderr() string {
	return r.stderr.String()
}

// ExitCode returns process exit code, or -1 while it is still running
func (r *Runner) ExitCode() int {
	if r.done == nil || !r.exited() {
		return -1
	}

	return r.cmd.ProcessState.ExitCode()
}

func (r *Runner) exited() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
