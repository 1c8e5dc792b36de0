package core

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/protocol"
)

func newLoopFixture(fill func(i int) uint16, display Display) (*Loop, *fakeDMA, *bytes.Buffer) {
	rec := &cycleRecorder{}
	adc := &fakeADC{rec: rec}
	dma := &fakeDMA{rec: rec, fill: fill}
	status := &bytes.Buffer{}
	loop := NewLoop(NewTrigger(), NewAcquirer(adc, dma), NewSampleBuffer(), display, status)
	return loop, dma, status
}

func TestLoopRunOnce(t *testing.T) {
	var shown []float32
	display := DisplayFunc(func(celsius float32) error {
		shown = append(shown, celsius)
		return nil
	})
	loop, _, status := newLoopFixture(func(int) uint16 { return 874 }, display)

	loop.trigger.Fire()
	if err := loop.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	line := strings.TrimSpace(status.String())
	got, ok := protocol.ParseReading(line)
	if !ok {
		t.Fatalf("status output %q is not a reading line", line)
	}
	want := ConvertToCelsius(874)
	if math.Abs(got-float64(want)) > 0.01 {
		t.Errorf("status reading = %f, want about %f", got, want)
	}

	if len(shown) != 1 {
		t.Fatalf("display called %d times, want 1", len(shown))
	}
	if diff := math32.Abs(shown[0] - want); diff > 0.01 {
		t.Errorf("display shown %f, want about %f", shown[0], want)
	}
	if loop.State() != StateIdle {
		t.Errorf("loop state = %v after a cycle, want idle", loop.State())
	}
}

func TestLoopCoalescedTicks(t *testing.T) {
	// Ticks that pile up while a cycle runs collapse into one catch-up
	// cycle: three fires, one observe, nothing left pending.
	calls := 0
	display := DisplayFunc(func(float32) error {
		calls++
		return nil
	})
	loop, _, _ := newLoopFixture(func(int) uint16 { return 874 }, display)

	loop.trigger.Fire()
	loop.trigger.Fire()
	loop.trigger.Fire()

	if err := loop.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("display called %d times, want 1", calls)
	}
	if loop.trigger.TryWait() {
		t.Error("coalesced ticks left more than one wake pending")
	}
}

func TestLoopCycleErrorReported(t *testing.T) {
	displayCalls := 0
	display := DisplayFunc(func(float32) error {
		displayCalls++
		return nil
	})
	loop, dma, status := newLoopFixture(func(int) uint16 { return 874 }, display)
	dma.waitErr = ErrTransferTimeout

	loop.trigger.Fire()
	err := loop.RunOnce()
	if !errors.Is(err, ErrTransferTimeout) {
		t.Fatalf("RunOnce error = %v, want ErrTransferTimeout", err)
	}

	if !strings.Contains(status.String(), "cycle aborted") {
		t.Errorf("status output %q does not report the aborted cycle", status.String())
	}
	if displayCalls != 0 {
		t.Error("display updated from a failed cycle")
	}
	if loop.Stats().Count() != 0 {
		t.Error("failed cycle counted in stats")
	}
	if loop.State() != StateIdle {
		t.Errorf("loop state = %v after a failed cycle, want idle", loop.State())
	}

	// Next tick recovers.
	dma.waitErr = nil
	loop.trigger.Fire()
	if err := loop.RunOnce(); err != nil {
		t.Fatalf("recovery cycle failed: %v", err)
	}
	if displayCalls != 1 {
		t.Errorf("display called %d times after recovery, want 1", displayCalls)
	}
}

func TestLoopDisplayErrorDoesNotFailCycle(t *testing.T) {
	display := DisplayFunc(func(float32) error {
		return errors.New("i2c bus stuck")
	})
	loop, _, status := newLoopFixture(func(int) uint16 { return 874 }, display)

	loop.trigger.Fire()
	if err := loop.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed on a display error: %v", err)
	}

	out := status.String()
	if !strings.Contains(out, "display error") {
		t.Errorf("status output %q does not report the display error", out)
	}
	if _, ok := protocol.ParseReading(strings.SplitN(out, "\n", 2)[0]); !ok {
		t.Errorf("reading line missing from %q", out)
	}
	if loop.Stats().Count() != 1 {
		t.Error("successful acquisition not counted despite display error")
	}
}

func TestLoopNilDisplay(t *testing.T) {
	loop, _, status := newLoopFixture(func(int) uint16 { return 874 }, nil)

	loop.trigger.Fire()
	if err := loop.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed with nil display: %v", err)
	}
	if _, ok := protocol.ParseReading(strings.TrimSpace(status.String())); !ok {
		t.Errorf("status output %q is not a reading line", status.String())
	}
}

func TestLoopStats(t *testing.T) {
	fills := []uint16{800, 900}
	cycle := 0
	loop, _, _ := newLoopFixture(func(int) uint16 { return fills[cycle] }, nil)

	for ; cycle < len(fills); cycle++ {
		loop.trigger.Fire()
		if err := loop.RunOnce(); err != nil {
			t.Fatalf("cycle %d failed: %v", cycle, err)
		}
	}

	stats := loop.Stats()
	if stats.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", stats.Count())
	}
	hot := ConvertToCelsius(800)  // fewer counts, higher temperature
	cold := ConvertToCelsius(900) // more counts, lower temperature
	if diff := math32.Abs(stats.Max() - hot); diff > 0.01 {
		t.Errorf("Max() = %f, want about %f", stats.Max(), hot)
	}
	if diff := math32.Abs(stats.Min() - cold); diff > 0.01 {
		t.Errorf("Min() = %f, want about %f", stats.Min(), cold)
	}
	if diff := math32.Abs(stats.Last() - cold); diff > 0.01 {
		t.Errorf("Last() = %f, want about %f", stats.Last(), cold)
	}
}

func TestLoopStateDuringPresentation(t *testing.T) {
	var loop *Loop
	var observed LoopState
	display := DisplayFunc(func(float32) error {
		observed = loop.State()
		return nil
	})
	loop, _, _ = newLoopFixture(func(int) uint16 { return 874 }, display)

	loop.trigger.Fire()
	if err := loop.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if observed != StatePresenting {
		t.Errorf("loop state during display update = %v, want presenting", observed)
	}
}
