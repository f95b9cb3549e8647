package indicator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/app/indicator"
	"veil/internal/app/items"
	"veil/internal/app/loop"
	"veil/internal/app/surface"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// harness drives a controller on a real event loop with wall-clock timers
type harness struct {
	t       *testing.T
	loop    loop.Loop
	ctrl    *indicator.Controller
	overlay *surface.Overlay
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	if testing.Short() {
		t.Skip("Real-time scenario")
	}

	log := logger.NewNopLogger()
	l := loop.New(log)
	t.Cleanup(l.Close)

	item, err := items.New(config.ItemSpinner, config.DefaultLabel)
	require.NoError(t, err)

	h := &harness{t: t, loop: l, overlay: surface.NewOverlay()}

	h.do(func() {
		h.ctrl, err = indicator.NewController(indicator.DefaultSettings(), l, h.overlay, item, log)
	})
	require.NoError(t, err)

	return h
}

func (h *harness) do(fn func()) {
	h.t.Helper()
	require.NoError(h.t, h.loop.Do(context.Background(), fn))
}

func (h *harness) after(d time.Duration, fn func()) {
	h.loop.AfterFunc(d, fn)
}

func (h *harness) times(n int, fn func()) func() {
	return func() {
		for i := 0; i < n; i++ {
			fn()
		}
	}
}

func (h *harness) showingAfter(d time.Duration) bool {
	h.t.Helper()
	time.Sleep(d)

	var showing bool
	h.do(func() { showing = h.ctrl.IsShowing() })

	return showing
}

func (h *harness) showing() bool {
	return h.showingAfter(0)
}

func Test_Scenario_Quelled(t *testing.T) {
	h := newHarness(t)

	h.do(h.ctrl.Increment)
	assert.False(t, h.showing())

	h.after(50*time.Millisecond, h.ctrl.Decrement)
	assert.False(t, h.showingAfter(time.Second), "signal once")

	h.do(h.times(5, h.ctrl.Increment))
	assert.False(t, h.showing())

	h.after(50*time.Millisecond, h.times(5, h.ctrl.Decrement))
	assert.False(t, h.showingAfter(time.Second), "signal five times")
}

func Test_Scenario_ShownAndRemoved(t *testing.T) {
	h := newHarness(t)

	h.do(h.ctrl.Increment)
	assert.False(t, h.showing())
	assert.True(t, h.showingAfter(500*time.Millisecond), "increment once and fire")

	h.do(h.ctrl.Decrement)
	assert.True(t, h.showing())
	assert.False(t, h.showingAfter(500*time.Millisecond), "decrement once and fire")

	h.do(h.times(5, h.ctrl.Increment))
	assert.False(t, h.showing())
	assert.True(t, h.showingAfter(500*time.Millisecond), "increment five times and fire")

	h.do(h.times(4, h.ctrl.Decrement))
	assert.True(t, h.showing())
	assert.True(t, h.showingAfter(500*time.Millisecond), "decrement four times and wait")

	h.do(h.ctrl.Decrement)
	assert.True(t, h.showing())
	assert.False(t, h.showingAfter(500*time.Millisecond), "decrement once and fire")
}

func Test_Scenario_Extended(t *testing.T) {
	h := newHarness(t)

	h.do(h.ctrl.Increment)
	assert.False(t, h.showing())
	assert.True(t, h.showingAfter(500*time.Millisecond), "increment once")

	h.do(h.ctrl.Decrement)
	assert.True(t, h.showing())

	h.after(50*time.Millisecond, h.ctrl.Increment)
	assert.True(t, h.showingAfter(500*time.Millisecond), "increment before fire")

	h.do(h.ctrl.Decrement)
	assert.True(t, h.showing())
	assert.False(t, h.showingAfter(500*time.Millisecond), "decrement once")
}

func Test_Scenario_DifferentDelay(t *testing.T) {
	h := newHarness(t)

	h.do(func() { require.NoError(t, h.ctrl.SetDelay(time.Second)) })

	h.do(h.ctrl.Increment)
	assert.False(t, h.showing())
	assert.False(t, h.showingAfter(500*time.Millisecond))
	assert.True(t, h.showingAfter(time.Second), "delay set to one second")

	h.do(h.ctrl.Decrement)
	assert.True(t, h.showing())
	assert.True(t, h.showingAfter(500*time.Millisecond))
	assert.False(t, h.showingAfter(time.Second), "decrement once")
}

func Test_Scenario_SurfaceTornDown(t *testing.T) {
	h := newHarness(t)

	h.do(h.ctrl.Increment)

	var absorbs bool
	h.do(func() { absorbs = h.overlay.Absorbs() })
	assert.True(t, absorbs, "shield absorbs input during the window")

	time.Sleep(400 * time.Millisecond)
	h.do(h.ctrl.Decrement)
	time.Sleep(600 * time.Millisecond)

	var visible bool
	h.do(func() { visible = h.overlay.Visible() })
	assert.False(t, visible)
}
