package indicator

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"veil/internal/config/logger"
)

// virtualScheduler runs callbacks in virtual time, in due order, ties broken by scheduling order
type virtualScheduler struct {
	now     time.Duration
	seq     int
	pending []scheduled
}

type scheduled struct {
	at  time.Duration
	seq int
	fn  func()
}

func (s *virtualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, scheduled{at: s.now + d, seq: s.seq, fn: fn})
}

// At schedules a client action at an absolute virtual time
func (s *virtualScheduler) At(at time.Duration, fn func()) {
	s.AfterFunc(at-s.now, fn)
}

// Advance moves virtual time forward, running every callback that falls due
func (s *virtualScheduler) Advance(d time.Duration) {
	target := s.now + d

	for {
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at == s.pending[j].at {
				return s.pending[i].seq < s.pending[j].seq
			}

			return s.pending[i].at < s.pending[j].at
		})

		if len(s.pending) == 0 || s.pending[0].at > target {
			break
		}

		next := s.pending[0]
		s.pending = s.pending[1:]
		s.now = next.at
		next.fn()
	}

	s.now = target
}

// AdvanceTo moves virtual time to an absolute point
func (s *virtualScheduler) AdvanceTo(at time.Duration) {
	s.Advance(at - s.now)
}

type stubView struct {
	name   string
	hidden bool
}

func (v *stubView) Render() string        { return v.name }
func (v *stubView) SetHidden(hidden bool) { v.hidden = hidden }
func (v *stubView) Hidden() bool          { return v.hidden }

type stubItem struct {
	view  *stubView
	shows int
	hides int
}

func newStubItem(name string) *stubItem {
	return &stubItem{view: &stubView{name: name}}
}

func (i *stubItem) View() View   { return i.view }
func (i *stubItem) AnimateShow() { i.shows++ }
func (i *stubItem) AnimateHide() { i.hides++ }

type recordingSurface struct {
	visible  bool
	blocked  bool
	attached []View
	raises   int
}

func (s *recordingSurface) SetVisible(visible bool) {
	if visible && !s.visible {
		s.raises++
	}

	s.visible = visible
}

func (s *recordingSurface) SetInteractionBlocked(blocked bool) { s.blocked = blocked }
func (s *recordingSurface) Attach(view View)                   { s.attached = append(s.attached, view) }

func (s *recordingSurface) Detach(view View) {
	for i, v := range s.attached {
		if v == view {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}

// Absorbs mirrors what a real surface does with the two flags
func (s *recordingSurface) Absorbs() bool {
	return s.visible && s.blocked
}

type timedEvent struct {
	at    time.Duration
	event Event
}

type fixture struct {
	sched   *virtualScheduler
	surface *recordingSurface
	item    *stubItem
	ctrl    *Controller
	events  []timedEvent
}

func newFixture(t *testing.T, settings Settings) *fixture {
	t.Helper()

	f := &fixture{
		sched:   &virtualScheduler{},
		surface: &recordingSurface{},
		item:    newStubItem("default"),
	}

	ctrl, err := NewController(settings, f.sched, f.surface, f.item, logger.NewNopLogger())
	require.NoError(t, err)

	ctrl.OnEvent(func(e Event) {
		f.events = append(f.events, timedEvent{at: f.sched.now, event: e})
	})

	f.ctrl = ctrl

	return f
}

// count returns how many events of the given type were observed
func (f *fixture) count(eventType EventType) int {
	n := 0

	for _, e := range f.events {
		if e.event.Type == eventType {
			n++
		}
	}

	return n
}

// times returns when events of the given type were observed
func (f *fixture) times(eventType EventType) []time.Duration {
	var result []time.Duration

	for _, e := range f.events {
		if e.event.Type == eventType {
			result = append(result, e.at)
		}
	}

	return result
}
