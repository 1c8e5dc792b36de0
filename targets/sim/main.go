// Command sim runs the sampling loop on a desktop against simulated
// peripherals. The status lines land on stdout exactly as the firmware
// writes them over serial, so host tooling can be pointed at this process
// instead of a board.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

func main() {
	var (
		bias    = flag.Float64("bias", 28.5, "simulated die temperature in degrees Celsius")
		period  = flag.Duration("period", core.UpdateInterval, "sampling period")
		cycles  = flag.Uint("cycles", 0, "stop after this many cycles, 0 to run forever")
		statsN  = flag.Uint("stats-every", 10, "log running stats every N cycles, 0 to disable")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	adc := NewSimADC(*bias)
	core.SetADCDriver(adc)
	dma := NewSimDMA(adc)
	core.SetDMADriver(dma)
	timer := NewTickerTimer()
	core.SetTimerDriver(timer)

	if err := core.MustADC().Init(); err != nil {
		logger.Error("adc init failed", "err", err)
		os.Exit(1)
	}
	core.MustADC().EnableTempSensor(true)
	if err := core.MustADC().SelectInput(core.TempSensorInput); err != nil {
		logger.Error("adc input select failed", "err", err)
		os.Exit(1)
	}
	if err := core.MustDMA().Claim(); err != nil {
		logger.Error("dma claim failed", "err", err)
		os.Exit(1)
	}
	defer core.MustDMA().Release()

	trigger := core.NewTrigger()
	display := core.DisplayFunc(func(celsius float32) error {
		logger.Debug("display update", "celsius", celsius)
		return nil
	})
	loop := core.NewLoop(trigger, core.NewAcquirer(core.MustADC(), core.MustDMA()), core.NewSampleBuffer(), display, os.Stdout)

	err := core.MustTimer().StartRepeating(*period, func() bool {
		trigger.Fire()
		return true
	})
	if err != nil {
		logger.Error("timer start failed", "err", err)
		os.Exit(1)
	}
	defer core.MustTimer().Stop()

	logger.Info("sampler running", "period", *period, "samples", core.NumSamples, "bias", *bias)

	start := time.Now()
	for done := uint(0); *cycles == 0 || done < *cycles; done++ {
		if err := loop.RunOnce(); err != nil {
			logger.Warn("cycle failed", "err", err)
		}
		if s := loop.Stats(); *statsN > 0 && s.Count() > 0 && s.Count()%uint32(*statsN) == 0 {
			logger.Info("stats",
				"cycles", s.Count(),
				"last", s.Last(),
				"min", s.Min(),
				"max", s.Max(),
				"mean", s.Mean(),
				"uptime", time.Since(start).Round(time.Second),
			)
		}
	}
}
