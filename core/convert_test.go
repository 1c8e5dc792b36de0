package core

import (
	"testing"

	"github.com/chewxy/math32"
)

// referenceCelsius mirrors the sensor characterization in float32 steps so
// tests compare against the same arithmetic the converter performs.
func referenceCelsius(raw uint16) float32 {
	voltage := float32(raw) * (float32(3.3) / 4096)
	return 27.0 - (voltage-0.706)/0.001721
}

func TestConvertToCelsiusFormula(t *testing.T) {
	testCases := []struct {
		name string
		raw  uint16
	}{
		{"zero count", 0},
		{"one count", 1},
		{"room temperature", 874}, // ~0.704 V, right at the 27 degC calibration point
		{"mid scale", 2048},
		{"full scale", 4095},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertToCelsius(tc.raw)
			want := referenceCelsius(tc.raw)
			if diff := math32.Abs(got - want); diff > 1e-3 {
				t.Errorf("ConvertToCelsius(%d) = %f, want %f (diff %f)", tc.raw, got, want, diff)
			}
			t.Logf("raw %4d -> %.2f degC", tc.raw, got)
		})
	}
}

func TestConvertToCelsiusAtZero(t *testing.T) {
	// With no voltage on the input the formula reduces to
	// 27 + 0.706/0.001721, about 437 degC.
	got := ConvertToCelsius(0)
	want := float32(27.0) - (0-float32(0.706))/0.001721
	if diff := math32.Abs(got - want); diff > 1e-3 {
		t.Errorf("ConvertToCelsius(0) = %f, want %f", got, want)
	}
	if got < 437.0 || got > 437.5 {
		t.Errorf("ConvertToCelsius(0) = %f, expected about 437.2", got)
	}
}

func TestConvertToCelsiusRoomRange(t *testing.T) {
	// Raw counts near 874 land in a plausible die temperature band. The
	// mid-scale count is far outside it, which is how a miswired formula
	// shows up immediately.
	room := ConvertToCelsius(874)
	if room < 20.0 || room > 40.0 {
		t.Errorf("ConvertToCelsius(874) = %f, expected a room-band temperature", room)
	}

	mid := ConvertToCelsius(2048)
	if mid > -500.0 {
		t.Errorf("ConvertToCelsius(2048) = %f, expected a far out-of-band value below -500", mid)
	}
}

func TestConvertToCelsiusMonotonicDecreasing(t *testing.T) {
	// Higher counts mean higher sensor voltage, which the characterization
	// maps to lower temperature. One count is ~0.47 degC, far above float32
	// granularity, so the decrease must be strict at every step.
	prev := ConvertToCelsius(0)
	for raw := uint16(1); raw < 4096; raw++ {
		cur := ConvertToCelsius(raw)
		if cur >= prev {
			t.Fatalf("ConvertToCelsius not strictly decreasing at raw=%d: %f -> %f", raw, prev, cur)
		}
		prev = cur
	}
}
