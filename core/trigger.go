package core

// Trigger is the handoff between the periodic timer and the sampling loop.
// It carries at most one pending wake: a tick that lands while a cycle is
// still running coalesces into the already-pending wake instead of queuing
// a second one, so a slow cycle is followed by exactly one catch-up cycle.
//
// Fire never blocks and is safe to call from timer interrupt context; Wait
// suspends the caller until a wake is pending, which is the loop's idle
// state between cycles.
type Trigger struct {
	fired chan struct{}
}

// NewTrigger returns a trigger with no wake pending.
func NewTrigger() *Trigger {
	return &Trigger{fired: make(chan struct{}, 1)}
}

// Fire records a wake. If one is already pending the call is a no-op.
func (t *Trigger) Fire() {
	select {
	case t.fired <- struct{}{}:
	default:
	}
}

// Wait blocks until a wake is pending and consumes it.
func (t *Trigger) Wait() {
	<-t.fired
}

// TryWait consumes a pending wake without blocking. It reports whether one
// was pending.
func (t *Trigger) TryWait() bool {
	select {
	case <-t.fired:
		return true
	default:
		return false
	}
}
