package indicator

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"

	"veil/internal/app/errors"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// Settings holds the tunable parts of a controller
type Settings struct {
	Delay            time.Duration
	BlockInteraction bool
	Strict           bool
}

// DefaultSettings returns the settings a controller starts with when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Delay:            config.DefaultDelay,
		BlockInteraction: config.DefaultBlockInteraction,
	}
}

// SettingsFromConfig extracts controller settings from the application config
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Delay:            cfg.Indicator.Delay,
		BlockInteraction: cfg.Indicator.BlockInteraction,
		Strict:           cfg.Indicator.Strict,
	}
}

// timer is the handle of a scheduled debounce decision
type timer struct {
	delay time.Duration
}

// Controller decides when a busy overlay is shown and hidden for a number of in-flight tasks.
//
// Every method, and every callback the controller hands to its Scheduler, must run on
// the same goroutine. The controller holds no locks.
type Controller struct {
	scheduler Scheduler
	surface   Surface
	item      Item
	phase     *fsm.FSM
	observers []Observer
	log       logger.Logger

	count            int
	timer            *timer
	showing          bool
	delay            time.Duration
	blockInteraction bool
	strict           bool

	// shielded is true while the surface is raised only to absorb input
	shielded bool
	// epoch changes on every raise so a stale teardown can tell it was superseded
	epoch uint64
}

// NewController creates a controller and attaches the item's view to the surface
func NewController(settings Settings, scheduler Scheduler, surface Surface, item Item, log logger.Logger) (*Controller, error) {
	if item == nil {
		return nil, errors.ErrNilItem
	}

	if settings.Delay <= 0 {
		return nil, errors.ErrInvalidDelay
	}

	log = log.WithComponent("INDICATOR")

	c := &Controller{
		scheduler:        scheduler,
		surface:          surface,
		item:             item,
		phase:            newPhaseFSM(log),
		log:              log,
		delay:            settings.Delay,
		blockInteraction: settings.BlockInteraction,
		strict:           settings.Strict,
	}

	item.View().SetHidden(true)
	surface.Attach(item.View())

	return c, nil
}

// OnEvent registers an observer for controller events
func (c *Controller) OnEvent(observer Observer) {
	c.observers = append(c.observers, observer)
}

// Increment registers a started task.
// The show timer is armed only when the controller is at rest: no pending timer and a zero count.
func (c *Controller) Increment() {
	if c.shouldArm() {
		c.raiseShield()
		c.arm()
	}

	c.count++
	c.emit(EventTaskStarted, "")
}

// Decrement registers a finished task and arms the hide timer when the count drops to zero
func (c *Controller) Decrement() {
	c.count--
	c.emit(EventTaskFinished, "")

	if c.count < 0 {
		c.violation(fmt.Sprintf("decrement below zero (count %d)", c.count))
	}

	if c.shouldArm() {
		c.arm()
	}
}

// IsShowing reports the committed visibility, not the pending intent
func (c *Controller) IsShowing() bool {
	return c.showing
}

// Count returns the number of in-flight tasks
func (c *Controller) Count() int {
	return c.count
}

// Pending reports whether a debounce decision is scheduled
func (c *Controller) Pending() bool {
	return c.timer != nil
}

// Phase returns the current debounce phase
func (c *Controller) Phase() string {
	return c.phase.Current()
}

// Delay returns the debounce window
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// SetDelay changes the debounce window for timers armed from now on
func (c *Controller) SetDelay(d time.Duration) error {
	if d <= 0 {
		return errors.ErrInvalidDelay
	}

	if d == c.delay {
		return nil
	}

	c.delay = d
	c.emit(EventDelayChanged, "")

	return nil
}

// InteractionBlocked reports whether the overlay absorbs input while present
func (c *Controller) InteractionBlocked() bool {
	return c.blockInteraction
}

// SetInteractionBlocked changes the blocking policy, applying it to a visible overlay at once
func (c *Controller) SetInteractionBlocked(blocked bool) {
	if blocked == c.blockInteraction {
		return
	}

	c.blockInteraction = blocked

	if c.showing {
		c.surface.SetInteractionBlocked(blocked)
	}

	if !blocked {
		c.lowerShield()
	}

	c.emit(EventBlockingChanged, "")
}

// Item returns the active indicator item
func (c *Controller) Item() Item {
	return c.item
}

// SetItem replaces the active item without touching visibility, the counter or a pending timer
func (c *Controller) SetItem(item Item) error {
	if item == nil {
		return errors.ErrNilItem
	}

	c.surface.Detach(c.item.View())

	c.item = item
	item.View().SetHidden(!c.showing)
	c.surface.Attach(item.View())

	c.emit(EventItemSwapped, "")

	return nil
}

// shouldArm reports whether a new debounce timer may be scheduled
func (c *Controller) shouldArm() bool {
	return c.count == 0 && c.timer == nil
}

// arm schedules the single debounce decision
func (c *Controller) arm() {
	t := &timer{delay: c.delay}
	c.timer = t

	c.advance(armEvent(c.showing))
	c.scheduler.AfterFunc(t.delay, func() { c.fire(t) })

	c.emit(EventTimerArmed, "")
}

// fire makes the one visibility decision for a debounce window
func (c *Controller) fire(t *timer) {
	if c.timer != t {
		c.log.Debug().Msg("Discarding superseded timer")
		return
	}

	if c.count < 0 {
		c.violation(fmt.Sprintf("negative count %d at fire time", c.count))
	}

	c.transition(c.count > 0)
	c.timer = nil
}

// transition stores the new visibility and dispatches its side effects in one step
func (c *Controller) transition(showing bool) {
	wasShowing := c.showing
	c.advance(fireEvent(wasShowing, showing))

	if showing == wasShowing {
		if showing {
			c.emit(EventExtended, "")
		} else {
			c.lowerShield()
			c.emit(EventQuelled, "")
		}

		return
	}

	c.showing = showing

	if showing {
		c.show()
	} else {
		c.hide()
	}
}

// show raises the surface with the item visible and starts the appearance animation
func (c *Controller) show() {
	c.epoch++
	c.shielded = false

	c.surface.SetVisible(true)
	c.surface.SetInteractionBlocked(c.blockInteraction)
	c.item.View().SetHidden(false)
	c.item.AnimateShow()

	c.log.Debug().Msgf("Shown with %d task(s) in flight", c.count)
	c.emit(EventShown, "")
}

// hide starts the disappearance animation and tears the surface down one delay later
func (c *Controller) hide() {
	c.item.AnimateHide()

	epoch := c.epoch
	c.scheduler.AfterFunc(c.delay, func() { c.teardown(epoch) })

	c.log.Debug().Msg("Hidden")
	c.emit(EventHidden, "")
}

// teardown hides the surface unless it was raised again after the hide decision
func (c *Controller) teardown(epoch uint64) {
	if c.showing || epoch != c.epoch {
		return
	}

	c.surface.SetVisible(false)
	c.item.View().SetHidden(true)

	c.emit(EventTornDown, "")
}

// raiseShield puts an input-absorbing surface up for the debounce window when blocking is on
func (c *Controller) raiseShield() {
	if !c.blockInteraction || c.showing {
		return
	}

	c.epoch++
	c.shielded = true

	c.item.View().SetHidden(true)
	c.surface.SetVisible(true)
	c.surface.SetInteractionBlocked(true)

	c.emit(EventShieldRaised, "")
}

// lowerShield removes a shield that never turned into a visible indicator
func (c *Controller) lowerShield() {
	if !c.shielded {
		return
	}

	c.shielded = false
	c.surface.SetVisible(false)

	c.emit(EventShieldLowered, "")
}

// advance feeds the phase tracker, reporting rejected transitions
func (c *Controller) advance(event string) {
	if err := c.phase.Event(context.Background(), event); err != nil {
		c.violation(fmt.Sprintf("phase %s rejected %s: %v", c.phase.Current(), event, err))
	}
}

// violation reports a broken caller contract; the counter is never corrected
func (c *Controller) violation(msg string) {
	c.log.Error().Int("count", c.count).Str("phase", c.phase.Current()).Msg(msg)
	c.emit(EventContractViolation, msg)

	if c.strict {
		panic(fmt.Errorf("%w: %s", errors.ErrContractViolation, msg))
	}
}

// emit notifies observers with a snapshot of the controller
func (c *Controller) emit(eventType EventType, msg string) {
	if len(c.observers) == 0 {
		return
	}

	event := Event{
		Type:    eventType,
		Count:   c.count,
		Showing: c.showing,
		Phase:   c.phase.Current(),
		Delay:   c.delay,
		Message: msg,
	}

	for _, observer := range c.observers {
		observer(event)
	}
}
