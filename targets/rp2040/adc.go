//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"machine"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

var errBadADCInput = errors.New("adc: input out of range")

// RpAdcDriver implements core.ADCDriver on the RP2040 ADC block. The core
// sequences drain/configure/run around each burst; this driver only
// touches the CS and FCS registers.
type RpAdcDriver struct{}

var _ core.ADCDriver = (*RpAdcDriver)(nil)

// NewRPAdcDriver constructs the driver but does not Init() it yet.
func NewRPAdcDriver() *RpAdcDriver {
	return &RpAdcDriver{}
}

// Init powers up the converter and waits until it reports ready.
func (d *RpAdcDriver) Init() error {
	machine.InitADC()
	for !rp.ADC.CS.HasBits(rp.ADC_CS_READY) {
	}
	return nil
}

// EnableTempSensor powers the on-die sensor bias. The first conversion is
// valid a few microseconds after enabling, well inside one timer period.
func (d *RpAdcDriver) EnableTempSensor(enable bool) {
	if enable {
		rp.ADC.CS.SetBits(rp.ADC_CS_TS_EN)
	} else {
		rp.ADC.CS.ClearBits(rp.ADC_CS_TS_EN)
	}
}

// SelectInput routes one of the five analog inputs to the converter.
// Input 4 is the temperature sensor.
func (d *RpAdcDriver) SelectInput(input uint8) error {
	if input > 4 {
		return errBadADCInput
	}
	rp.ADC.CS.ReplaceBits(
		uint32(input)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)
	return nil
}

// DrainFIFO pops entries until the FIFO reports empty. The FIFO is four
// entries deep, so with conversion stopped this terminates immediately.
func (d *RpAdcDriver) DrainFIFO() {
	for !rp.ADC.FCS.HasBits(rp.ADC_FCS_EMPTY) {
		_ = rp.ADC.FIFO.Get()
	}
}

// ConfigureFIFO applies the FIFO setup in one masked write, leaving the
// level and sticky flag fields alone.
func (d *RpAdcDriver) ConfigureFIFO(cfg core.FIFOConfig) {
	var val uint32
	if cfg.Enable {
		val |= rp.ADC_FCS_EN
	}
	if cfg.DREQEnable {
		val |= rp.ADC_FCS_DREQ_EN
	}
	if cfg.ErrInFIFO {
		val |= rp.ADC_FCS_ERR
	}
	if cfg.ByteShift {
		val |= rp.ADC_FCS_SHIFT
	}
	val |= uint32(cfg.Threshold) << rp.ADC_FCS_THRESH_Pos

	mask := uint32(rp.ADC_FCS_EN | rp.ADC_FCS_DREQ_EN | rp.ADC_FCS_ERR |
		rp.ADC_FCS_SHIFT | rp.ADC_FCS_THRESH_Msk)
	rp.ADC.FCS.ReplaceBits(val, mask, 0)
}

// Run starts or stops free-running conversion.
func (d *RpAdcDriver) Run(enable bool) {
	if enable {
		rp.ADC.CS.SetBits(rp.ADC_CS_START_MANY)
	} else {
		rp.ADC.CS.ClearBits(rp.ADC_CS_START_MANY)
	}
}
