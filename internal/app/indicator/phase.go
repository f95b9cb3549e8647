package indicator

import (
	"context"

	"github.com/looplab/fsm"

	"veil/internal/config/logger"
)

// FSM states
const (
	Idle        = "idle"
	PendingShow = "pending_show"
	Showing     = "showing"
	PendingHide = "pending_hide"
)

// FSM events
const (
	Arm    = "arm"
	Show   = "show"
	Quell  = "quell"
	Settle = "settle"
	Extend = "extend"
	Hide   = "hide"
)

// newPhaseFSM creates the state machine that mirrors the controller's debounce phase.
// The controller drives it; a rejected event means the counter contract was broken.
func newPhaseFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Arm, Src: []string{Idle}, Dst: PendingShow},
			{Name: Show, Src: []string{PendingShow}, Dst: Showing},
			{Name: Quell, Src: []string{PendingShow}, Dst: Idle},
			{Name: Settle, Src: []string{Showing}, Dst: PendingHide},
			{Name: Extend, Src: []string{PendingHide}, Dst: Showing},
			{Name: Hide, Src: []string{PendingHide}, Dst: Idle},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("PHASE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// armEvent picks the event for arming a timer
func armEvent(showing bool) string {
	if showing {
		return Settle
	}

	return Arm
}

// fireEvent picks the event for a timer decision
func fireEvent(wasShowing, showing bool) string {
	switch {
	case !wasShowing && showing:
		return Show
	case !wasShowing && !showing:
		return Quell
	case wasShowing && showing:
		return Extend
	default:
		return Hide
	}
}
