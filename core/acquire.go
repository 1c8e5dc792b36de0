package core

// burstFIFO is the FIFO setup every burst runs with: results routed to the
// FIFO, data request asserted from the first entry, error bit and byte
// shift off so entries are plain 12-bit counts.
var burstFIFO = FIFOConfig{
	Enable:     true,
	DREQEnable: true,
	Threshold:  1,
}

// Acquirer runs the sample-acquisition cycle against the converter and
// transfer-engine drivers it was built with.
type Acquirer struct {
	adc ADCDriver
	dma DMADriver
}

// NewAcquirer returns an Acquirer over the given drivers.
func NewAcquirer(adc ADCDriver, dma DMADriver) *Acquirer {
	return &Acquirer{adc: adc, dma: dma}
}

// RunCycle performs one complete burst capture into buf and returns the
// averaged temperature.
//
// The sequence is fixed: drain stale FIFO entries, reconfigure the FIFO
// with conversion stopped, restart free-running conversion, arm the
// transfer with the whole buffer and block until it completes, stop
// conversion, fold. The blocking wait is the happens-before edge that
// returns buffer ownership to this goroutine; no sample is read before it
// returns.
//
// On a transfer error the converter is stopped, buf ownership is restored
// and the error is returned with no average produced; the caller simply
// waits for the next trigger.
func (a *Acquirer) RunCycle(buf *SampleBuffer) (float32, error) {
	a.adc.DrainFIFO()
	a.adc.Run(false)
	a.adc.ConfigureFIFO(burstFIFO)
	a.adc.Run(true)

	dst := buf.BeginTransfer()
	if err := a.dma.StartPull(dst); err != nil {
		buf.CompleteTransfer()
		a.adc.Run(false)
		return 0, err
	}

	err := a.dma.WaitForFinish()
	buf.CompleteTransfer()
	a.adc.Run(false)
	if err != nil {
		return 0, err
	}

	var sum float32
	for _, raw := range buf.Samples() {
		sum += ConvertToCelsius(raw)
	}
	return sum / NumSamples, nil
}
