// Package monitor consumes the firmware's status stream on the host:
// reading lines become Readings, everything else is counted as
// diagnostics and skipped.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/protocol"
)

// Reading is one averaged temperature as reported by the board, stamped
// with the host arrival time.
type Reading struct {
	At      time.Time
	Celsius float64
}

func (r Reading) String() string {
	return fmt.Sprintf("%.2f °C at %s", r.Celsius, r.At.Format(time.TimeOnly))
}

// Monitor scans a status stream. It is not safe for concurrent use; one
// goroutine owns the port.
type Monitor struct {
	scanner *bufio.Scanner
	stats   core.Stats
	skipped int
	now     func() time.Time
}

// New returns a Monitor over r, typically an open serial port.
func New(r io.Reader) *Monitor {
	return &Monitor{
		scanner: bufio.NewScanner(r),
		now:     time.Now,
	}
}

// Next blocks until the next reading line and returns it, folding it into
// the running stats. Diagnostic lines are counted and skipped. It returns
// io.EOF once the stream ends and the underlying reader's error if
// scanning fails.
func (m *Monitor) Next() (Reading, error) {
	for m.scanner.Scan() {
		celsius, ok := protocol.ParseReading(m.scanner.Text())
		if !ok {
			m.skipped++
			continue
		}
		m.stats.Update(float32(celsius))
		return Reading{At: m.now(), Celsius: celsius}, nil
	}
	if err := m.scanner.Err(); err != nil {
		return Reading{}, fmt.Errorf("status stream failed: %w", err)
	}
	return Reading{}, io.EOF
}

// Stats returns the running figures over all readings seen so far.
func (m *Monitor) Stats() *core.Stats {
	return &m.stats
}

// Skipped returns how many non-reading lines were passed over.
func (m *Monitor) Skipped() int {
	return m.skipped
}
