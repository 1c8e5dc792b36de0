// Package serial opens the board's USB serial console on the host.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is the byte stream of a connected board. Real hardware comes from
// Open; tests and replays hand any io.ReadWriteCloser to the consumers
// instead.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path, e.g. "/dev/ttyACM0" or "COM3".
	Device string

	// Baud rate. The board enumerates as USB CDC and ignores it, but the
	// OS driver still wants a value.
	Baud int

	// ReadTimeout, zero for blocking reads. Blocking reads end when the
	// port is closed.
	ReadTimeout time.Duration
}

// DefaultConfig returns the configuration matching the firmware's console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}

// Open opens the native serial port described by cfg.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return port, nil
}
