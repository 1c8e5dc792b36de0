package core

import "time"

// UpdateInterval is the sampling cadence. One trigger fires per interval;
// the rate is fixed at build time.
const UpdateInterval = 500 * time.Millisecond

// TimerDriver is the periodic wakeup source for the sampling loop.
type TimerDriver interface {
	// StartRepeating invokes callback every period until the callback
	// returns false or Stop is called. The callback runs in timer context
	// (an interrupt handler on hardware targets) and must only perform
	// wait-free work such as Trigger.Fire.
	StartRepeating(period time.Duration, callback func() bool) error

	// Stop cancels the repeating callback.
	Stop()
}

// Global singleton used by core code.
var timerDriver TimerDriver

// SetTimerDriver is called by target-specific code to register its driver.
func SetTimerDriver(d TimerDriver) {
	timerDriver = d
}

// MustTimer returns the configured driver or panics if missing.
func MustTimer() TimerDriver {
	if timerDriver == nil {
		panic("timer driver not configured")
	}
	return timerDriver
}
