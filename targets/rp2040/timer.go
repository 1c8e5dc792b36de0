//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"runtime/interrupt"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

// Alarm 1 paces the sampling loop. Alarm 0 belongs to the TinyGo runtime's
// sleep timer and must not be touched.
const (
	alarmNum  = 1
	alarmMask = 1 << alarmNum
)

var (
	errTimerRunning = errors.New("timer: already running")
	errTimerPeriod  = errors.New("timer: period out of range")
)

// Alarm state shared with the interrupt handler. One repeating alarm
// exists per firmware image, like the single hardware alarm it drives.
var (
	timerCallback func() bool
	timerPeriodUS uint32
	timerTarget   uint32
	timerIRQ      interrupt.Interrupt
	timerCreated  bool
)

// RpTimerDriver implements core.TimerDriver on TIMER alarm 1. The callback
// runs in interrupt context with a fixed cadence: each shot is scheduled
// from the previous target, not from when the handler ran, so processing
// time does not drift the tick.
type RpTimerDriver struct{}

var _ core.TimerDriver = (*RpTimerDriver)(nil)

// NewRPTimerDriver constructs the driver for the single repeating alarm.
func NewRPTimerDriver() *RpTimerDriver {
	return &RpTimerDriver{}
}

// StartRepeating arms the alarm to invoke callback every period.
func (d *RpTimerDriver) StartRepeating(period time.Duration, callback func() bool) error {
	if timerCallback != nil {
		return errTimerRunning
	}
	us := period.Microseconds()
	if us <= 0 || us > 1<<31 {
		return errTimerPeriod
	}

	timerPeriodUS = uint32(us)
	timerCallback = callback
	if !timerCreated {
		timerIRQ = interrupt.New(rp.IRQ_TIMER_IRQ_1, handleSampleAlarm)
		timerCreated = true
	}

	rp.TIMER.INTR.Set(alarmMask) // clear any stale pending bit
	rp.TIMER.INTE.SetBits(alarmMask)
	timerTarget = rp.TIMER.TIMERAWL.Get() + timerPeriodUS
	rp.TIMER.ALARM1.Set(timerTarget)
	timerIRQ.Enable()
	return nil
}

// Stop disarms the alarm and drops the callback.
func (d *RpTimerDriver) Stop() {
	rp.TIMER.INTE.ClearBits(alarmMask)
	rp.TIMER.ARMED.Set(alarmMask) // write 1 disarms the latched alarm
	rp.TIMER.INTR.Set(alarmMask)
	timerCallback = nil
}

func handleSampleAlarm(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(alarmMask) // acknowledge, write 1 to clear

	cb := timerCallback
	if cb == nil {
		rp.TIMER.INTE.ClearBits(alarmMask)
		return
	}
	if !cb() {
		rp.TIMER.INTE.ClearBits(alarmMask)
		timerCallback = nil
		return
	}

	// Fixed cadence: schedule from the previous target. If the handler ran
	// so late that the next target already passed, restart from now rather
	// than waiting out a full counter wrap.
	next := timerTarget + timerPeriodUS
	if now := rp.TIMER.TIMERAWL.Get(); int32(next-now) <= 0 {
		next = now + timerPeriodUS
	}
	timerTarget = next
	rp.TIMER.ALARM1.Set(next)
}
