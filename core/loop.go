package core

import (
	"fmt"
	"io"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/protocol"
)

// LoopState is where the sampling loop currently is in its cycle.
type LoopState uint8

const (
	// StateIdle means the loop is suspended waiting for the next trigger.
	StateIdle LoopState = iota
	// StateSampling means an acquisition cycle is running.
	StateSampling
	// StatePresenting means the averaged reading is being written out.
	StatePresenting
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampling:
		return "sampling"
	case StatePresenting:
		return "presenting"
	}
	return "unknown"
}

// Loop ties the periodic trigger to acquisition cycles and presentation.
// It owns the sample buffer between transfers and is the only reader of
// the trigger.
type Loop struct {
	trigger *Trigger
	acq     *Acquirer
	buf     *SampleBuffer
	display Display
	status  io.Writer
	stats   Stats
	state   LoopState
}

// NewLoop assembles a sampling loop. display may be nil when no render
// target exists; status must not be nil.
func NewLoop(trigger *Trigger, acq *Acquirer, buf *SampleBuffer, display Display, status io.Writer) *Loop {
	return &Loop{
		trigger: trigger,
		acq:     acq,
		buf:     buf,
		display: display,
		status:  status,
	}
}

// State returns the loop's current phase.
func (l *Loop) State() LoopState {
	return l.state
}

// Stats returns the running figures over completed cycles.
func (l *Loop) Stats() *Stats {
	return &l.stats
}

// Run drives cycles forever. There is no terminal state: a failed cycle is
// reported on the status sink and the loop waits for the next tick.
func (l *Loop) Run() {
	for {
		l.RunOnce()
	}
}

// RunOnce suspends until the next trigger, then performs one full cycle:
// acquire, average, present. It returns the acquisition error, if any,
// after restoring the idle state; presentation problems are reported on
// the status sink but do not fail the cycle.
func (l *Loop) RunOnce() error {
	l.state = StateIdle
	l.trigger.Wait()

	l.state = StateSampling
	avg, err := l.acq.RunCycle(l.buf)
	if err != nil {
		fmt.Fprintf(l.status, "cycle aborted: %v\n", err)
		l.state = StateIdle
		return err
	}

	l.state = StatePresenting
	l.stats.Update(avg)
	fmt.Fprintln(l.status, protocol.FormatReading(avg))
	if l.display != nil {
		if err := l.display.ShowTemperature(avg); err != nil {
			fmt.Fprintf(l.status, "display error: %v\n", err)
		}
	}

	l.state = StateIdle
	return nil
}
