//go:build rp2040

package main

import (
	"os"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/protocol"
)

// dmaWaitBound caps the completion wait of one burst. A healthy burst of
// 100 conversions finishes in well under a millisecond; hitting this bound
// means the ADC stopped pacing the channel, and the cycle is retried on
// the next tick instead of hanging the loop.
const dmaWaitBound = time.Second

func main() {
	// Let USB enumerate and the panel leave reset before touching either.
	time.Sleep(2 * time.Second)

	println("temp-dma firmware", protocol.Version)

	display, err := NewOledDisplay()
	if err != nil {
		holdBoot("display init failed:", err)
	}

	adc := NewRPAdcDriver()
	core.SetADCDriver(adc)

	dma := NewRPDmaDriver()
	dma.SetTimeout(dmaWaitBound)
	core.SetDMADriver(dma)

	core.SetTimerDriver(NewRPTimerDriver())

	if err := core.MustADC().Init(); err != nil {
		holdBoot("adc init failed:", err)
	}
	core.MustADC().EnableTempSensor(true)
	if err := core.MustADC().SelectInput(core.TempSensorInput); err != nil {
		holdBoot("adc input select failed:", err)
	}

	if err := core.MustDMA().Claim(); err != nil {
		holdBoot("dma claim failed:", err)
	}

	trigger := core.NewTrigger()
	buf := core.NewSampleBuffer()
	acq := core.NewAcquirer(core.MustADC(), core.MustDMA())
	loop := core.NewLoop(trigger, acq, buf, display, os.Stdout)

	err = core.MustTimer().StartRepeating(core.UpdateInterval, func() bool {
		trigger.Fire()
		return true
	})
	if err != nil {
		holdBoot("timer start failed:", err)
	}

	loop.Run()
}

// holdBoot reports a boot failure once a second forever. The firmware has
// nothing sensible to do without its peripherals, and the repeating line
// keeps the fault visible on the serial console.
func holdBoot(stage string, err error) {
	for {
		println(stage, err.Error())
		time.Sleep(time.Second)
	}
}
