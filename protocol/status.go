// Package protocol defines the status-line format the firmware emits over
// its serial console and host tooling parses back.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies the firmware build reporting in this format.
const Version = "1.0.0"

// One reading per completed cycle, one line per reading.
const (
	readingPrefix = "Temperatura média: "
	readingSuffix = " °C"
)

// FormatReading renders one averaged temperature as its status line,
// without a trailing newline. Two decimals, degrees Celsius.
func FormatReading(celsius float32) string {
	return fmt.Sprintf("Temperatura média: %.2f °C", celsius)
}

// ParseReading extracts the temperature from one status line. It reports
// false for any line that is not a reading, including the firmware's
// diagnostic output, so callers can scan a mixed stream.
func ParseReading(line string) (float64, bool) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, readingPrefix)
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, readingSuffix)
	if !ok {
		return 0, false
	}
	celsius, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0, false
	}
	return celsius, true
}
