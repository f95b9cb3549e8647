package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"veil/internal/app/indicator"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// MessageType names what a message carries
type MessageType string

// Event types
const (
	EventIndicator      MessageType = "indicator"
	EventTaskStarted    MessageType = "task_started"
	EventTaskFinished   MessageType = "task_finished"
	EventRunStarted     MessageType = "run_started"
	EventRunFinished    MessageType = "run_finished"
	EventConfigReloaded MessageType = "config_reloaded"
	EventReloadFailed   MessageType = "reload_failed"
	EventWatchStarted   MessageType = "watch_started"
	EventWatchStopped   MessageType = "watch_stopped"
)

// Message is one published event; Critical messages displace the oldest queued message when a subscriber is full
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      any
	Critical  bool
}

// RunStarted indicates a batch of tasks is starting
type RunStarted struct {
	RunID string
	Tasks []string
}

func (d RunStarted) String() string {
	return fmt.Sprintf("{run: %s, tasks: %v}", d.RunID, d.Tasks)
}

// RunFinished indicates every task of a run has completed
type RunFinished struct {
	RunID    string
	Duration time.Duration
	Failed   int
}

func (d RunFinished) String() string {
	return fmt.Sprintf("{run: %s, duration: %s, failed: %d}", d.RunID, d.Duration, d.Failed)
}

// TaskStarted indicates a task process was started
type TaskStarted struct {
	Task string
	PID  int
}

func (d TaskStarted) String() string {
	return fmt.Sprintf("{task: %s, pid: %d}", d.Task, d.PID)
}

// TaskFinished indicates a task process has exited
type TaskFinished struct {
	Task     string
	Duration time.Duration
	PeakRSS  uint64
	Error    error
}

func (d TaskFinished) String() string {
	return fmt.Sprintf("{task: %s, duration: %s, error: %v}", d.Task, d.Duration, d.Error)
}

// ConfigReloaded indicates new settings were applied from the config file
type ConfigReloaded struct {
	Path  string
	Delay time.Duration
	Item  string
}

func (d ConfigReloaded) String() string {
	return fmt.Sprintf("{path: %s, delay: %s, item: %s}", d.Path, d.Delay, d.Item)
}

// ReloadFailed indicates a changed config file could not be applied
type ReloadFailed struct {
	Path  string
	Error error
}

func (d ReloadFailed) String() string {
	return fmt.Sprintf("{path: %s, error: %v}", d.Path, d.Error)
}

// WatchState names the file a watcher started or stopped following
type WatchState struct {
	Path string
}

func (d WatchState) String() string {
	return fmt.Sprintf("{path: %s}", d.Path)
}

// Bus fans published messages out to every live subscriber
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Observer() indicator.Observer
	Close()
}

type bus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Message
	nextID uint64
	closed bool
	log    logger.Logger
}

// New creates a Bus; a nil logger disables message tracing
func New(log logger.Logger) Bus {
	return &bus{
		subs: make(map[uint64]chan Message),
		log:  log,
	}
}

// Subscribe returns a buffered channel that is closed when ctx ends or the bus closes
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, config.BusBuffer)
	if b.closed {
		close(ch)
		return ch
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	go func() {
		<-ctx.Done()
		b.drop(id)
	}()

	return ch
}

// Publish stamps msg and offers it to every subscriber without blocking
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, describe(msg.Data))
	}

	for _, ch := range b.subs {
		offer(ch, msg)
	}
}

// Observer adapts the bus into an indicator observer; contract violations are critical
func (b *bus) Observer() indicator.Observer {
	return func(e indicator.Event) {
		b.Publish(Message{
			Type:     EventIndicator,
			Data:     e,
			Critical: e.Type == indicator.EventContractViolation,
		})
	}
}

// Close closes every subscriber channel; later publishes are dropped
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}

func (b *bus) drop(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		close(ch)
		delete(b.subs, id)
	}
}

// offer must run under the read lock so ch cannot be closed underneath it
func offer(ch chan Message, msg Message) {
	select {
	case ch <- msg:
		return
	default:
	}

	if !msg.Critical {
		return
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- msg:
	default:
	}
}

func describe(data any) string {
	switch d := data.(type) {
	case indicator.Event:
		if d.Message != "" {
			return fmt.Sprintf("{type: %s, count: %d, phase: %s, message: %s}", d.Type, d.Count, d.Phase, d.Message)
		}

		return fmt.Sprintf("{type: %s, count: %d, phase: %s}", d.Type, d.Count, d.Phase)
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a bus that delivers nothing
func NoOp() Bus {
	return noOpBus{}
}

type noOpBus struct{}

func (noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (noOpBus) Publish(Message)              {}
func (noOpBus) Observer() indicator.Observer { return func(indicator.Event) {} }
func (noOpBus) Close()                       {}
