package worker

import (
	"context"

	"golang.org/x/sync/semaphore"

	"veil/internal/config"
)

// Pool bounds how many tasks run at the same time
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
	Do(ctx context.Context, fn func() error) error
	Limit() int
}

// pool implements the Pool interface
type pool struct {
	sem   *semaphore.Weighted
	limit int
}

// NewWorkerPool creates a pool sized by the configured worker count
func NewWorkerPool(cfg *config.Config) Pool {
	return &pool{
		sem:   semaphore.NewWeighted(int64(cfg.Concurrency.Workers)),
		limit: cfg.Concurrency.Workers,
	}
}

// Acquire takes a slot, blocking while all are busy, or returns the context error
func (p *pool) Acquire(ctx context.Context) error {
	return p.sem.Acquire(ctx, 1)
}

// Release returns a slot
func (p *pool) Release() {
	p.sem.Release(1)
}

// Do runs fn while holding a slot
func (p *pool) Do(ctx context.Context, fn func() error) error {
	if err := p.Acquire(ctx); err != nil {
		return err
	}
	defer p.Release()

	return fn()
}

// Limit returns the number of slots
func (p *pool) Limit() int {
	return p.limit
}
