package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a controller callback back into Update once its delay elapsed
type timerMsg struct {
	fn func()
}

// deferred is a callback the controller asked to run after d
type deferred struct {
	d  time.Duration
	fn func()
}

// scheduler turns controller timers into tea commands so callbacks run on the update goroutine
type scheduler struct {
	pending []deferred
}

// AfterFunc queues fn until the next flush
func (s *scheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, deferred{d: d, fn: fn})
}

// take removes and returns the queued callbacks
func (s *scheduler) take() []deferred {
	pending := s.pending
	s.pending = nil

	return pending
}

// flush turns every queued callback into a tick command delivering a timerMsg
func (s *scheduler) flush() tea.Cmd {
	pending := s.take()
	if len(pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(pending))
	for i, p := range pending {
		fn := p.fn
		cmds[i] = tea.Tick(p.d, func(time.Time) tea.Msg {
			return timerMsg{fn: fn}
		})
	}

	return tea.Batch(cmds...)
}
