package items

import (
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"veil/internal/app/ui/components"
)

const (
	pulseEmpty = "◯"
	pulseFull  = "◉"

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Heartbeat pattern in ticks: ◯ -- ◉ - ◯ ◉ --- ◯ --
	pulseSettleTicks   = 2
	pulseBeat1Ticks    = 1
	pulseMicroGapTicks = 1
	pulseBeat2Ticks    = 1
	pulseRecoveryTicks = 3

	// Position threshold for frame switching
	pulseFrameThreshold = 0.3

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

type beat int

const (
	settle beat = iota
	beat1
	microGap
	beat2
	recovery
)

// pulseAnim is a spring-driven heartbeat
type pulseAnim struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
	beat      beat
}

func newPulse() *pulseAnim {
	//nolint:gosec // weak random is fine for animation timing
	offset := rand.IntN(pulseSettleTicks + pulseBeat1Ticks + pulseMicroGapTicks + pulseBeat2Ticks + pulseRecoveryTicks)

	return &pulseAnim{
		spring:    harmonica.NewSpring(harmonica.FPS(components.UITicksPerSecond), pulseAngularFrequency, pulseDampingRatio),
		tickCount: offset,
		beat:      settle,
	}
}

// Start begins the heartbeat
func (p *pulseAnim) Start() {
	p.active = true
}

// Resume begins the heartbeat; it has no separate appearance effect
func (p *pulseAnim) Resume() {
	p.Start()
}

// Stop ends the heartbeat and resets to the empty frame
func (p *pulseAnim) Stop() {
	p.active = false
	p.target = pulsePositionEmpty
	p.position = pulsePositionEmpty
	p.velocity = pulsePositionEmpty
	p.tickCount = 0
	p.beat = settle
}

// Update advances the heartbeat by one tick
func (p *pulseAnim) Update() {
	if !p.active {
		return
	}

	p.tickCount++

	switch p.beat {
	case settle:
		p.step(pulseSettleTicks, beat1, pulsePositionFull)
	case beat1:
		p.step(pulseBeat1Ticks, microGap, pulsePositionEmpty)
	case microGap:
		p.step(pulseMicroGapTicks, beat2, pulsePositionFull)
	case beat2:
		p.step(pulseBeat2Ticks, recovery, pulsePositionEmpty)
	case recovery:
		p.step(pulseRecoveryTicks, settle, pulsePositionEmpty)
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// step moves to the next beat once the current one has lasted its ticks
func (p *pulseAnim) step(ticks int, next beat, target float64) {
	if p.tickCount < ticks {
		return
	}

	p.beat = next
	p.target = target
	p.tickCount = 0
}

// Frame returns the heartbeat frame for the spring position
func (p *pulseAnim) Frame() string {
	style := lipgloss.NewStyle().Foreground(components.FgPrimary)

	if !p.active || p.position < pulseFrameThreshold {
		return style.Render(pulseEmpty)
	}

	return style.Render(pulseFull)
}

// IsActive reports whether the heartbeat runs
func (p *pulseAnim) IsActive() bool {
	return p.active
}
