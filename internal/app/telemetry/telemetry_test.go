package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/app/bus"
	"veil/internal/app/indicator"
	"veil/internal/app/items"
	"veil/internal/app/surface"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// captured collects events at the BeforeSend hook and drops them
type captured struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *captured) beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event)

	return nil
}

func (c *captured) all() []*sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]*sentry.Event(nil), c.events...)
}

func newCapturingReporter(t *testing.T) (Reporter, *captured) {
	t.Helper()

	c := &captured{}

	r, err := newReporter(sentry.ClientOptions{BeforeSend: c.beforeSend}, logger.NewNopLogger())
	require.NoError(t, err)

	return r, c
}

func Test_New(t *testing.T) {
	t.Run("no DSN disables telemetry", func(t *testing.T) {
		r, err := New(config.DefaultConfig(), logger.NewNopLogger())

		require.NoError(t, err)
		assert.IsType(t, &noOpReporter{}, r)
	})

	t.Run("malformed DSN", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Telemetry.DSN = "not a dsn"

		r, err := New(cfg, logger.NewNopLogger())

		assert.Error(t, err)
		assert.Nil(t, r)
	})
}

func Test_Reporter_Report(t *testing.T) {
	r, c := newCapturingReporter(t)

	r.Report(indicator.Event{Type: indicator.EventShown, Count: 1})
	r.Report(indicator.Event{
		Type:    indicator.EventContractViolation,
		Count:   -1,
		Phase:   indicator.Idle,
		Message: "decrement below zero (count -1)",
	})

	events := c.all()
	require.Len(t, events, 1)

	assert.Equal(t, "decrement below zero (count -1)", events[0].Message)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "indicator", events[0].Tags["component"])
	assert.Equal(t, "-1", events[0].Tags["count"])
	assert.Equal(t, indicator.Idle, events[0].Tags["phase"])
}

func Test_Reporter_Watch(t *testing.T) {
	r, c := newCapturingReporter(t)
	b := bus.New(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Watch(ctx, b)

	observe := b.Observer()
	observe(indicator.Event{Type: indicator.EventContractViolation, Message: "negative count"})
	b.Publish(bus.Message{Type: bus.EventReloadFailed, Data: bus.ReloadFailed{Path: "veil.yaml", Error: errors.New("bad yaml")}})

	assert.Eventually(t, func() bool { return len(c.all()) == 1 }, time.Second, 5*time.Millisecond)

	events := c.all()
	assert.Equal(t, "watcher", events[0].Tags["component"])
	assert.Equal(t, sentry.LevelWarning, events[0].Level)

	assert.Never(t, func() bool { return len(c.all()) > 1 }, 50*time.Millisecond, 5*time.Millisecond,
		"violations are reported by the controller observer, not the bus")

	b.Close()
	r.Flush()
}

func Test_Reporter_StrictViolationCapturedBeforePanic(t *testing.T) {
	r, c := newCapturingReporter(t)

	item, err := items.New(config.ItemSpinner, "")
	require.NoError(t, err)

	settings := indicator.DefaultSettings()
	settings.Strict = true

	sched := indicator.SchedulerFunc(func(time.Duration, func()) {})

	ctrl, err := indicator.NewController(settings, sched, surface.NewOverlay(), item, logger.NewNopLogger())
	require.NoError(t, err)

	ctrl.OnEvent(r.Report)

	assert.Panics(t, ctrl.Decrement)

	events := c.all()
	require.Len(t, events, 1)
	assert.Equal(t, "-1", events[0].Tags["count"])
}

func Test_NoOp(t *testing.T) {
	r := NoOp()

	r.Report(indicator.Event{Type: indicator.EventContractViolation})
	r.Watch(context.Background(), bus.NoOp())
	r.Flush()
}
