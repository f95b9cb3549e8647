//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=tasks
package tasks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"veil/internal/app/bus"
	"veil/internal/app/errors"
	"veil/internal/app/indicator"
	"veil/internal/app/items"
	"veil/internal/app/lifecycle"
	"veil/internal/app/loop"
	"veil/internal/app/monitor"
	"veil/internal/app/process"
	"veil/internal/app/surface"
	"veil/internal/app/telemetry"
	"veil/internal/app/watcher"
	"veil/internal/app/worker"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// Scanner buffer size constants
const (
	// scannerBufferSize is the initial buffer size for reading task output (64KB)
	scannerBufferSize = 64 * 1024
	// scannerMaxBufferSize is the maximum buffer size for reading task output (4MB)
	scannerMaxBufferSize = 4 * 1024 * 1024
)

// Runner runs configured tasks behind a terminal busy indicator
type Runner interface {
	Run(ctx context.Context, patterns []string) (*Summary, error)
}

// Params contains dependencies for creating a Runner
type Params struct {
	fx.In

	Config    *config.Config
	Loop      loop.Loop
	Pool      worker.Pool
	Monitor   monitor.Monitor
	Lifecycle lifecycle.Lifecycle
	Bus       bus.Bus
	Watcher   watcher.Watcher
	Reporter  telemetry.Reporter
	Logger    logger.Logger
}

// runner implements the Runner interface
type runner struct {
	cfg       *config.Config
	loop      loop.Loop
	pool      worker.Pool
	monitor   monitor.Monitor
	lifecycle lifecycle.Lifecycle
	bus       bus.Bus
	watcher   watcher.Watcher
	reporter  telemetry.Reporter
	out       io.Writer
	in        surface.Input
	log       logger.Logger
}

// NewRunner creates a Runner drawing its indicator on stderr
func NewRunner(p Params) Runner {
	return &runner{
		cfg:       p.Config,
		loop:      p.Loop,
		pool:      p.Pool,
		monitor:   p.Monitor,
		lifecycle: p.Lifecycle,
		bus:       p.Bus,
		watcher:   p.Watcher,
		reporter:  p.Reporter,
		out:       os.Stderr,
		in:        os.Stdin,
		log:       p.Logger.WithComponent("TASKS"),
	}
}

// Run starts every task matching patterns and waits for all of them; the first task error is returned
func (r *runner) Run(ctx context.Context, patterns []string) (*Summary, error) {
	selected, err := Select(r.cfg.Tasks, patterns)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := surface.NewTerminal(r.out, r.in, r.log)
	term.OnInterrupt(cancel)
	r.loop.OnPanic(r.restore(term))

	ctrl, err := r.newController(ctx, term)
	if err != nil {
		return nil, err
	}

	r.loop.Every(ctx, config.FrameInterval, term.Tick)

	if err := r.watcher.Start(ctx, r.applyFunc(ctrl)); err != nil {
		r.log.Warn().Err(err).Msg("Config hot reload unavailable")
	}

	summary := &Summary{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(selected)),
	}

	names := make([]string, len(selected))
	for i, task := range selected {
		names[i] = task.Name
		summary.Results[i].Task = task.Name
	}

	r.log.Info().Str("run", summary.RunID).Msgf("Running %d task(s) with %d worker(s)", len(selected), r.pool.Limit())
	r.bus.Publish(bus.Message{Type: bus.EventRunStarted, Data: bus.RunStarted{RunID: summary.RunID, Tasks: names}})

	start := time.Now()

	var g errgroup.Group

	for i, task := range selected {
		g.Go(func() error {
			err := r.pool.Do(ctx, func() error {
				summary.Results[i] = r.runTask(ctx, ctrl, task)
				return summary.Results[i].Err
			})

			if err != nil && summary.Results[i].Err == nil {
				summary.Results[i].Err = fmt.Errorf("%w: %w", errors.ErrFailedToAcquireWorker, err)
			}

			return summary.Results[i].Err
		})
	}

	runErr := g.Wait()
	summary.Duration = time.Since(start)

	r.settle(ctx, ctrl, term)

	if err := r.loop.Do(context.Background(), term.Close); err != nil {
		r.log.Warn().Err(err).Msg("Failed to restore terminal")
	}

	r.bus.Publish(bus.Message{
		Type: bus.EventRunFinished,
		Data: bus.RunFinished{RunID: summary.RunID, Duration: summary.Duration, Failed: summary.Failed()},
	})

	return summary, runErr
}

// newController builds the run's controller on the loop goroutine
func (r *runner) newController(ctx context.Context, term *surface.Terminal) (*indicator.Controller, error) {
	item, err := items.New(r.cfg.Indicator.Item, r.cfg.Indicator.Label)
	if err != nil {
		return nil, err
	}

	var ctrl *indicator.Controller

	doErr := r.loop.Do(ctx, func() {
		ctrl, err = indicator.NewController(indicator.SettingsFromConfig(r.cfg), r.loop, term, item, r.log)
		if err == nil {
			ctrl.OnEvent(r.reporter.Report)
			ctrl.OnEvent(r.bus.Observer())
		}
	})
	if doErr != nil {
		return nil, doErr
	}

	return ctrl, err
}

// restore runs on the loop goroutine when it panics, such as on a strict contract violation
func (r *runner) restore(term *surface.Terminal) func(recovered any) {
	return func(any) {
		term.Close()
		r.reporter.Flush()
	}
}

// applyFunc hands reloaded settings to the controller on the loop goroutine
func (r *runner) applyFunc(ctrl *indicator.Controller) watcher.ApplyFunc {
	return func(cfg *config.Config) {
		r.loop.Post(func() {
			if err := items.Apply(ctrl, cfg); err != nil {
				r.log.Error().Err(err).Msg("Failed to apply reloaded config")
			}
		})
	}
}

// runTask runs one task between an increment and a decrement of the controller
func (r *runner) runTask(ctx context.Context, ctrl *indicator.Controller, task config.Task) Result {
	result := Result{Task: task.Name}

	r.loop.Post(ctrl.Increment)
	defer r.loop.Post(ctrl.Decrement)

	start := time.Now()

	handle, err := r.start(task)
	if err != nil {
		result.Err = err
		r.finished(result)

		return result
	}

	r.bus.Publish(bus.Message{Type: bus.EventTaskStarted, Data: bus.TaskStarted{Task: task.Name, PID: handle.PID()}})

	peak := r.sample(ctx, handle)

	result.Duration = time.Since(start)
	result.PeakRSS = peak.RSS

	if err := handle.Err(); err != nil {
		result.Err = fmt.Errorf("%w '%s': %w", errors.ErrTaskFailed, task.Name, err)
	}

	r.finished(result)

	return result
}

// finished logs and publishes a task outcome
func (r *runner) finished(result Result) {
	if result.Err != nil {
		r.log.Error().Err(result.Err).Msgf("Task '%s' failed after %s", result.Task, result.Duration)
	} else {
		r.log.Info().Msgf("Task '%s' finished in %s", result.Task, result.Duration)
	}

	r.bus.Publish(bus.Message{
		Type:     bus.EventTaskFinished,
		Data:     bus.TaskFinished{Task: result.Task, Duration: result.Duration, PeakRSS: result.PeakRSS, Error: result.Err},
		Critical: result.Err != nil,
	})
}

// start launches the task's command through the shell in its own process group
func (r *runner) start(task config.Task) (*process.Handle, error) {
	dir, err := taskDir(task)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command("sh", "-c", task.Command) // #nosec G204 -- commands come from the user's own config
	cmd.Dir = dir
	cmd.Env = os.Environ()

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w (stdout): %w", errors.ErrFailedToCreatePipe, err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w (stderr): %w", errors.ErrFailedToCreatePipe, err)
	}

	r.lifecycle.Configure(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToStartCommand, err)
	}

	r.log.Debug().Msgf("Started task '%s' (PID: %d) in directory: %s", task.Name, cmd.Process.Pid, dir)

	handle := process.NewProcess(process.Params{Name: task.Name, Cmd: cmd})

	var streams sync.WaitGroup

	streams.Add(2)

	go r.teeStream(stdoutPipe, task.Name, "STDOUT", &streams)
	go r.teeStream(stderrPipe, task.Name, "STDERR", &streams)

	go func() {
		streams.Wait()
		handle.Close(cmd.Wait())
	}()

	return handle, nil
}

// teeStream logs every line a task writes
func (r *runner) teeStream(src io.Reader, taskName, streamType string, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerMaxBufferSize)

	for scanner.Scan() {
		r.log.Info().
			Str("task", taskName).
			Str("stream", streamType).
			Msg(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		r.log.Error().Err(err).Msgf("Error reading %s stream for task '%s'", streamType, taskName)
	}
}

// sample tracks the task's resource usage until it exits, terminating it when ctx is cancelled
func (r *runner) sample(ctx context.Context, handle *process.Handle) monitor.Peak {
	var peak monitor.Peak

	ticker := time.NewTicker(config.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.Done():
			return peak
		case <-ctx.Done():
			if err := r.lifecycle.Terminate(handle, config.ShutdownTimeout); err != nil {
				r.log.Error().Err(err).Msgf("Failed to stop task '%s'", handle.Name())
			}

			<-handle.Done()

			return peak
		case <-ticker.C:
			stats, err := r.monitor.GetStats(ctx, handle.PID())
			if err != nil {
				r.log.Debug().Err(err).Msgf("Failed to sample task '%s'", handle.Name())
				continue
			}

			peak.Observe(stats)
		}
	}
}

// settle waits until the indicator has been hidden and its line cleared
func (r *runner) settle(ctx context.Context, ctrl *indicator.Controller, term *surface.Terminal) {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	for {
		var busy bool

		err := r.loop.Do(ctx, func() {
			busy = ctrl.IsShowing() || ctrl.Pending() || term.Visible()
		})
		if err != nil || !busy {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// taskDir resolves the task's working directory against the current one
func taskDir(task config.Task) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToGetWorkingDir, err)
	}

	if task.Dir == "" {
		return wd, nil
	}

	dir := task.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(wd, dir)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", errors.ErrTaskDirectoryNotExist, dir)
	}

	return dir, nil
}
