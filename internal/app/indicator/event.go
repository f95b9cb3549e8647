package indicator

import "time"

// EventType identifies a controller event
type EventType string

// Controller events
const (
	EventTaskStarted       EventType = "task_started"
	EventTaskFinished      EventType = "task_finished"
	EventTimerArmed        EventType = "timer_armed"
	EventShieldRaised      EventType = "shield_raised"
	EventShieldLowered     EventType = "shield_lowered"
	EventShown             EventType = "shown"
	EventHidden            EventType = "hidden"
	EventQuelled           EventType = "quelled"
	EventExtended          EventType = "extended"
	EventTornDown          EventType = "torn_down"
	EventItemSwapped       EventType = "item_swapped"
	EventDelayChanged      EventType = "delay_changed"
	EventBlockingChanged   EventType = "blocking_changed"
	EventContractViolation EventType = "contract_violation"
)

// Event is a snapshot of the controller taken right after something happened
type Event struct {
	Type    EventType
	Count   int
	Showing bool
	Phase   string
	Delay   time.Duration
	Message string
}

// Observer receives controller events on the controller's goroutine
type Observer func(Event)
