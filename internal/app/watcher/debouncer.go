package watcher

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces rapid file events into a single callback after a quiet period
type Debouncer interface {
	Trigger(file string)
	Stop()
}

// debouncer arms a fresh timer per trigger; only the newest generation may fire
type debouncer struct {
	quiet     time.Duration
	callback  func(files []string)
	afterFunc func(d time.Duration, fn func())

	mu         sync.Mutex
	generation uint64
	pending    map[string]struct{}
	stopped    bool
}

// NewDebouncer creates a Debouncer; a non-positive duration fires on every trigger
func NewDebouncer(duration time.Duration, callback func(files []string)) Debouncer {
	return &debouncer{
		quiet:    duration,
		callback: callback,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		pending: make(map[string]struct{}),
	}
}

// Trigger records a changed file and supersedes any earlier pending fire
func (d *debouncer) Trigger(file string) {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	d.pending[file] = struct{}{}
	d.generation++
	gen := d.generation

	d.mu.Unlock()

	if d.quiet <= 0 {
		d.fire(gen)
		return
	}

	d.afterFunc(d.quiet, func() { d.fire(gen) })
}

// Stop drops pending files and ignores later triggers
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = make(map[string]struct{})
}

// fire hands the pending files over in sorted order when gen is still the newest trigger
func (d *debouncer) fire(gen uint64) {
	d.mu.Lock()

	if d.stopped || gen != d.generation || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	files := make([]string, 0, len(d.pending))
	for f := range d.pending {
		files = append(files, f)
	}

	d.pending = make(map[string]struct{})

	d.mu.Unlock()

	sort.Strings(files)
	d.callback(files)
}
