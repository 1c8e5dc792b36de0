package core

import "errors"

// ErrTransferTimeout is returned by DMADriver.WaitForFinish when a bounded
// wait expires before the burst completes. The driver aborts the transfer
// before returning, so the armed buffer is no longer written and the cycle
// may be retried.
var ErrTransferTimeout = errors.New("dma: transfer timeout")

// ErrNoChannel is returned by DMADriver.Claim when no transfer channel is
// free.
var ErrNoChannel = errors.New("dma: no free channel")

// DMADriver is the abstract transfer engine that moves raw conversions
// from the converter FIFO into memory without CPU involvement.
type DMADriver interface {
	// Claim reserves a transfer channel for the lifetime of the sampler.
	Claim() error

	// Release returns the claimed channel. The firmware loop never gets
	// here; hosted runs and tests do.
	Release()

	// StartPull arms one burst and starts it immediately: len(dst) 16-bit
	// reads from the fixed FIFO register into dst, destination
	// incrementing, paced by the converter's data request.
	StartPull(dst []uint16) error

	// WaitForFinish blocks until the armed burst completes. With a bounded
	// wait configured it returns ErrTransferTimeout on expiry; otherwise
	// it blocks indefinitely. After it returns, the engine no longer
	// touches the destination.
	WaitForFinish() error
}

// Global singleton used by core code.
var dmaDriver DMADriver

// SetDMADriver is called by target-specific code to register its driver.
func SetDMADriver(d DMADriver) {
	dmaDriver = d
}

// MustDMA returns the configured driver or panics if missing.
func MustDMA() DMADriver {
	if dmaDriver == nil {
		panic("DMA driver not configured")
	}
	return dmaDriver
}
