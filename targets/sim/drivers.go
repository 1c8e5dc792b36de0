package main

import (
	"math"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

// One simulated conversion takes 96 ADC clocks at 48 MHz, like the real
// converter.
const conversionTime = 2 * time.Microsecond

// SimADC implements core.ADCDriver over a modeled die temperature: a slow
// wander around a bias plus deterministic noise, mapped back through the
// sensor characterization to raw counts. All methods run on the sampling
// goroutine.
type SimADC struct {
	running bool
	input   uint8
	fifo    core.FIFOConfig
	bias    float64
	start   time.Time
}

var _ core.ADCDriver = (*SimADC)(nil)

// NewSimADC models a die idling near bias degrees Celsius.
func NewSimADC(bias float64) *SimADC {
	return &SimADC{bias: bias, start: time.Now()}
}

func (a *SimADC) Init() error {
	a.start = time.Now()
	return nil
}

func (a *SimADC) EnableTempSensor(enable bool) {}

func (a *SimADC) SelectInput(input uint8) error {
	a.input = input
	return nil
}

func (a *SimADC) DrainFIFO() {}

func (a *SimADC) ConfigureFIFO(cfg core.FIFOConfig) {
	a.fifo = cfg
}

func (a *SimADC) Run(enable bool) {
	a.running = enable
}

// sample produces one raw count from the temperature model by inverting
// the sensor characterization.
func (a *SimADC) sample() uint16 {
	elapsed := time.Since(a.start).Seconds()

	// A slow one-minute wander plus two incommensurate ripples standing in
	// for conversion noise.
	die := a.bias +
		1.5*math.Sin(2*math.Pi*elapsed/60) +
		0.2*math.Sin(elapsed*137.5) +
		0.1*math.Cos(elapsed*311.7)

	voltage := 0.706 + (27.0-die)*0.001721
	raw := voltage / 3.3 * 4096
	if raw < 0 {
		raw = 0
	} else if raw > 4095 {
		raw = 4095
	}
	return uint16(raw)
}

// SimDMA implements core.DMADriver against a SimADC. A burst costs the
// same wall time as the hardware one; with the converter stopped the wait
// behaves like a stalled channel and times out.
type SimDMA struct {
	adc     *SimADC
	dst     []uint16
	claimed bool
	timeout time.Duration
}

var _ core.DMADriver = (*SimDMA)(nil)

// NewSimDMA builds the engine pulling from adc.
func NewSimDMA(adc *SimADC) *SimDMA {
	return &SimDMA{adc: adc, timeout: time.Second}
}

// SetTimeout bounds WaitForFinish like the hardware driver's bounded wait.
func (d *SimDMA) SetTimeout(timeout time.Duration) {
	d.timeout = timeout
}

func (d *SimDMA) Claim() error {
	d.claimed = true
	return nil
}

func (d *SimDMA) Release() {
	d.claimed = false
	d.dst = nil
}

func (d *SimDMA) StartPull(dst []uint16) error {
	if !d.claimed {
		return core.ErrNoChannel
	}
	d.dst = dst
	return nil
}

func (d *SimDMA) WaitForFinish() error {
	if !d.adc.running {
		// No data requests arrive; the burst never completes.
		if d.timeout > 0 {
			time.Sleep(d.timeout)
		}
		d.dst = nil
		return core.ErrTransferTimeout
	}

	time.Sleep(time.Duration(len(d.dst)) * conversionTime)
	for i := range d.dst {
		d.dst[i] = d.adc.sample()
	}
	d.dst = nil
	return nil
}

// TickerTimer implements core.TimerDriver with a plain ticker goroutine,
// the hosted stand-in for the hardware alarm.
type TickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
}

var _ core.TimerDriver = (*TickerTimer)(nil)

// NewTickerTimer constructs a stopped timer.
func NewTickerTimer() *TickerTimer {
	return &TickerTimer{}
}

func (t *TickerTimer) StartRepeating(period time.Duration, callback func() bool) error {
	t.ticker = time.NewTicker(period)
	t.done = make(chan struct{})

	go func() {
		for {
			select {
			case <-t.ticker.C:
				if !callback() {
					return
				}
			case <-t.done:
				return
			}
		}
	}()
	return nil
}

func (t *TickerTimer) Stop() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.done)
	t.ticker = nil
}
