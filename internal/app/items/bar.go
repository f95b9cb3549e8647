package items

import (
	"github.com/charmbracelet/bubbles/progress"
)

const barWidth = 16

// barSweep is the fill sequence played on show and on hide
var barSweep = []float64{0.25, 0.5, 0.75, 1.0, 0.75, 0.5, 0.25, 0.0}

// barAnim sweeps a progress bar full and back to empty on every show and hide
type barAnim struct {
	model   progress.Model
	percent float64
	step    int
	shown   bool
}

func newBar() *barAnim {
	return &barAnim{
		model: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
		step: len(barSweep),
	}
}

// Start marks the bar shown and replays the sweep
func (b *barAnim) Start() {
	b.shown = true
	b.sweep()
}

// Resume marks the bar shown and leaves it at rest without a sweep
func (b *barAnim) Resume() {
	b.shown = true
	b.step = len(barSweep)
	b.percent = 0
}

// Stop marks the bar hidden and replays the sweep
func (b *barAnim) Stop() {
	b.shown = false
	b.sweep()
}

func (b *barAnim) sweep() {
	b.step = 0
	b.percent = 0
}

// Update plays the next sweep step, if any
func (b *barAnim) Update() {
	if b.step >= len(barSweep) {
		return
	}

	b.percent = barSweep[b.step]
	b.step++
}

// Frame renders the bar at its current fill
func (b *barAnim) Frame() string {
	return b.model.ViewAs(b.percent)
}

// IsActive reports whether the bar is between a show and a hide
func (b *barAnim) IsActive() bool {
	return b.shown
}

// sweeping reports whether a sweep is still playing
func (b *barAnim) sweeping() bool {
	return b.step < len(barSweep)
}
