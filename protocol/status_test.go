package protocol

import (
	"math"
	"testing"
)

func TestFormatReading(t *testing.T) {
	testCases := []struct {
		name    string
		celsius float32
		want    string
	}{
		{"room", 27.93, "Temperatura média: 27.93 °C"},
		{"zero", 0, "Temperatura média: 0.00 °C"},
		{"negative", -5.5, "Temperatura média: -5.50 °C"},
		{"rounded", 28.456, "Temperatura média: 28.46 °C"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatReading(tc.celsius)
			if got != tc.want {
				t.Errorf("FormatReading(%f) = %q, want %q", tc.celsius, got, tc.want)
			}
		})
	}
}

func TestParseReading(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want float64
		ok   bool
	}{
		{"plain", "Temperatura média: 27.93 °C", 27.93, true},
		{"negative", "Temperatura média: -3.25 °C", -3.25, true},
		{"serial CRLF", "Temperatura média: 28.01 °C\r", 28.01, true},
		{"diagnostic line", "cycle aborted: dma: transfer timeout", 0, false},
		{"empty", "", 0, false},
		{"missing unit", "Temperatura média: 27.93", 0, false},
		{"garbled number", "Temperatura média: 2x.93 °C", 0, false},
		{"unrelated text", "boot: display ready", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseReading(tc.line)
			if ok != tc.ok {
				t.Fatalf("ParseReading(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			}
			if ok && math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ParseReading(%q) = %f, want %f", tc.line, got, tc.want)
			}
		})
	}
}

func TestReadingRoundTrip(t *testing.T) {
	// Two decimals survive the trip within half a hundredth.
	for _, celsius := range []float32{27.93, -40.0, 0.005, 437.23, 85.5} {
		line := FormatReading(celsius)
		got, ok := ParseReading(line)
		if !ok {
			t.Fatalf("ParseReading rejected %q", line)
		}
		if math.Abs(got-float64(celsius)) > 0.005+1e-9 {
			t.Errorf("round trip %f -> %q -> %f drifted", celsius, line, got)
		}
	}
}
