package loop

import (
	"context"
	"sync"
	"time"

	"veil/internal/app/errors"
	"veil/internal/config/logger"
)

// Loop runs posted functions one at a time on a single goroutine
type Loop interface {
	Post(fn func()) bool
	Do(ctx context.Context, fn func()) error
	AfterFunc(d time.Duration, fn func())
	Every(ctx context.Context, d time.Duration, fn func())
	OnPanic(hook func(recovered any))
	Close()
}

// loop implements the Loop interface with an unbounded queue
type loop struct {
	mu     sync.Mutex
	queue  []func()
	hooks  []func(recovered any)
	closed bool
	wake   chan struct{}
	done   chan struct{}
	log    logger.Logger
}

// New starts a loop goroutine
func New(log logger.Logger) Loop {
	l := &loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		log:  log.WithComponent("LOOP"),
	}

	go l.run()

	return l
}

// Post enqueues fn and reports whether the loop accepted it
func (l *loop) Post(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}

	l.queue = append(l.queue, fn)

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// Do runs fn on the loop and waits for it to return.
// It must not be called from the loop goroutine.
func (l *loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})

	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return errors.ErrLoopClosed
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AfterFunc posts fn to the loop once d has elapsed
func (l *loop) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		if !l.Post(fn) {
			l.log.Debug().Msg("Dropping timer callback after close")
		}
	})
}

// Every posts fn to the loop on each tick until ctx is done or the loop closes
func (l *loop) Every(ctx context.Context, d time.Duration, fn func()) {
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-l.done:
				return
			case <-ticker.C:
				if !l.Post(fn) {
					return
				}
			}
		}
	}()
}

// OnPanic registers a hook that runs on the loop goroutine when a posted function panics.
// Hooks run in registration order, then the panic continues.
func (l *loop) OnPanic(hook func(recovered any)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.hooks = append(l.hooks, hook)
}

// Close runs what is already queued, then stops the loop goroutine.
// It must not be called from the loop goroutine.
func (l *loop) Close() {
	l.mu.Lock()

	if l.closed {
		l.mu.Unlock()
		<-l.done

		return
	}

	l.closed = true

	select {
	case l.wake <- struct{}{}:
	default:
	}

	l.mu.Unlock()

	<-l.done
	l.log.Debug().Msg("Loop stopped")
}

func (l *loop) run() {
	defer close(l.done)

	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		closed := l.closed
		l.mu.Unlock()

		for _, fn := range batch {
			l.call(fn)
		}

		if len(batch) > 0 {
			continue
		}

		if closed {
			return
		}

		<-l.wake
	}
}

func (l *loop) call(fn func()) {
	if recovered := l.guard(fn); recovered != nil {
		panic(recovered)
	}
}

// guard runs fn and, if it panics, the panic hooks; it returns what was recovered
func (l *loop) guard(fn func()) (recovered any) {
	defer func() {
		if recovered = recover(); recovered == nil {
			return
		}

		l.mu.Lock()
		hooks := append([]func(any){}, l.hooks...)
		l.mu.Unlock()

		l.log.Error().Msgf("Loop function panicked: %v", recovered)

		for _, hook := range hooks {
			hook(recovered)
		}
	}()

	fn()

	return nil
}
