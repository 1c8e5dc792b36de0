// Command temp-host watches a board's status stream from the host: it
// logs every reading, warns about implausible values and silent streams,
// and prints running statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/host/config"
	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/host/monitor"
	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/host/serial"
)

var (
	configPath = flag.String("config", "temp-host.yaml", "Config file path")
	device     = flag.String("device", "", "Serial device path, overrides the config")
	baud       = flag.Int("baud", 0, "Baud rate, overrides the config (ignored for USB CDC)")
	verbose    = flag.Bool("verbose", false, "Enable debug output")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config load failed", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *device != "" {
		cfg.Serial.Port = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device: cfg.Serial.Port,
		Baud:   cfg.Serial.Baud,
	})
	if err != nil {
		logger.Error("serial open failed", "err", err)
		os.Exit(1)
	}
	defer port.Close()
	logger.Info("watching status stream", "port", cfg.Serial.Port)

	// Closing the port on interrupt unblocks the monitor's read.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	if err := watch(logger, cfg, port); err != nil && ctx.Err() == nil {
		logger.Error("stream ended", "err", err)
		os.Exit(1)
	}
	logger.Info("done")
}

// watch consumes readings until the stream ends. A side goroutine flags
// streams that go silent for longer than the configured threshold.
func watch(logger *slog.Logger, cfg *config.Config, port serial.Port) error {
	m := monitor.New(port)

	var mu sync.Mutex
	lastSeen := time.Now()
	staleDone := make(chan struct{})
	defer close(staleDone)
	go func() {
		ticker := time.NewTicker(cfg.Monitor.StaleAfter / 2)
		defer ticker.Stop()
		for {
			select {
			case <-staleDone:
				return
			case <-ticker.C:
				mu.Lock()
				silent := time.Since(lastSeen)
				mu.Unlock()
				if silent > cfg.Monitor.StaleAfter {
					logger.Warn("no readings", "silent", silent.Round(time.Second))
				}
			}
		}
	}()

	for {
		reading, err := m.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logReport(logger, m)
				return nil
			}
			return err
		}

		mu.Lock()
		lastSeen = reading.At
		mu.Unlock()

		logger.Info("reading", "celsius", fmt.Sprintf("%.2f", reading.Celsius))
		if reading.Celsius < cfg.Monitor.MinCelsius || reading.Celsius > cfg.Monitor.MaxCelsius {
			logger.Warn("reading out of plausible band",
				"celsius", reading.Celsius,
				"min", cfg.Monitor.MinCelsius,
				"max", cfg.Monitor.MaxCelsius,
			)
		}

		if n := cfg.Monitor.StatsEvery; n > 0 && m.Stats().Count()%uint32(n) == 0 {
			logReport(logger, m)
		}
	}
}

func logReport(logger *slog.Logger, m *monitor.Monitor) {
	s := m.Stats()
	if s.Count() == 0 {
		return
	}
	logger.Info("stats",
		"readings", s.Count(),
		"min", s.Min(),
		"max", s.Max(),
		"mean", s.Mean(),
		"skipped_lines", m.Skipped(),
	)
}
