package indicator

import "time"

// Scheduler runs a one-shot callback after d on the goroutine that owns the controller.
// Implementations must never invoke fn synchronously from AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(d time.Duration, fn func())

// AfterFunc calls f(d, fn)
func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) {
	f(d, fn)
}
