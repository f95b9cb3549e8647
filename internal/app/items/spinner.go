package items

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"veil/internal/app/ui/components"
)

// spinnerAnim drives a bubbles Dot spinner one frame per tick and fades it in over the first ticks after start
type spinnerAnim struct {
	model  spinner.Model
	fade   int
	active bool
}

func newSpinner() *spinnerAnim {
	return &spinnerAnim{model: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

// Start restarts the fade and the frame cycle
func (s *spinnerAnim) Start() {
	s.active = true
	s.fade = 0
}

// Resume spins at full color without fading in
func (s *spinnerAnim) Resume() {
	s.active = true
	s.fade = len(components.FadeRamp) - 1
}

// Stop freezes the spinner on its current frame
func (s *spinnerAnim) Stop() {
	s.active = false
}

// Update feeds the model its own tick; the follow-up command is dropped since the host drives the ticks
func (s *spinnerAnim) Update() {
	if !s.active {
		return
	}

	s.model, _ = s.model.Update(s.model.Tick())

	if s.fade < len(components.FadeRamp)-1 {
		s.fade++
	}
}

// Frame renders the current frame in its fade color
func (s *spinnerAnim) Frame() string {
	m := s.model
	m.Style = components.MutedStyle

	if s.active {
		m.Style = lipgloss.NewStyle().Foreground(components.FadeRamp[s.fade])
	}

	return m.View()
}

// IsActive reports whether the spinner is cycling
func (s *spinnerAnim) IsActive() bool {
	return s.active
}
