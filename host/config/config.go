// Package config holds the host tool's configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the temp-host configuration.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Monitor MonitorConfig `yaml:"monitor"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// MonitorConfig contains stream-watching parameters.
type MonitorConfig struct {
	// StaleAfter is how long the stream may stay silent before the tool
	// warns. The board reports twice a second, so a couple of seconds of
	// silence means trouble.
	StaleAfter time.Duration `yaml:"stale_after"`

	// MinCelsius and MaxCelsius bound the plausible die temperature;
	// readings outside the band are logged as warnings.
	MinCelsius float64 `yaml:"min_celsius"`
	MaxCelsius float64 `yaml:"max_celsius"`

	// StatsEvery logs running statistics every N readings, 0 to disable.
	StatsEvery int `yaml:"stats_every"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyACM0", // "COM3" on Windows
			Baud: 115200,
		},
		Monitor: MonitorConfig{
			StaleAfter: 2 * time.Second,
			MinCelsius: 0,
			MaxCelsius: 60,
			StatsEvery: 20,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, defaults fill the gaps.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ensureDefaults backfills required fields a sparse file left out.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}
	if c.Monitor.StaleAfter == 0 {
		c.Monitor.StaleAfter = def.Monitor.StaleAfter
	}
	if c.Monitor.MaxCelsius == 0 {
		c.Monitor.MaxCelsius = def.Monitor.MaxCelsius
	}
}
