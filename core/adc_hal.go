package core

// TempSensorInput is the ADC input multiplexed to the on-die temperature
// sensor.
const TempSensorInput = 4

// FIFOConfig is the conversion-FIFO setup applied before each burst. The
// acquisition cycle always requests a threshold of one with the error bit
// and byte shift off, so every 12-bit result reaches the transfer engine
// untouched and as soon as it lands.
type FIFOConfig struct {
	// Enable routes conversion results into the FIFO instead of the
	// single-result register.
	Enable bool

	// DREQEnable asserts the data request line when the FIFO holds at
	// least Threshold entries, pacing the transfer engine.
	DREQEnable bool

	// Threshold is the FIFO level that asserts the data request.
	Threshold uint8

	// ErrInFIFO tags each entry with the conversion error flag in bit 15.
	ErrInFIFO bool

	// ByteShift narrows results to 8 bits for byte-wide transfers.
	ByteShift bool
}

// ADCDriver is the abstract converter interface the acquisition cycle
// drives. Implementations own the peripheral registers; the core only
// sequences them.
type ADCDriver interface {
	// Init powers up the converter and waits until it is ready.
	Init() error

	// EnableTempSensor powers the on-die temperature sensor bias.
	EnableTempSensor(enable bool)

	// SelectInput routes the given input to the converter.
	SelectInput(input uint8) error

	// DrainFIFO discards any stale entries left from a previous run.
	DrainFIFO()

	// ConfigureFIFO applies the FIFO setup. Call with sampling stopped.
	ConfigureFIFO(cfg FIFOConfig)

	// Run starts or stops free-running conversion.
	Run(enable bool)
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
