// Package config provides configuration loading and validation for the aoc
// command.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel validation errors.
var (
	ErrInvalidRingSize  = errors.New("ring size must be positive")
	ErrInvalidRingStart = errors.New("ring start must lie on the ring")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)

var (
	validFormats   = []string{"text", "json", "yaml"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds all configuration for the aoc command.
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Ring      RingConfig      `mapstructure:"ring"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// InputConfig selects where puzzle inputs are read from.
type InputConfig struct {
	Dir     string `mapstructure:"dir"`
	Example bool   `mapstructure:"example"`
}

// RingConfig holds the dial geometry used by day 1.
type RingConfig struct {
	Size  int64 `mapstructure:"size"`
	Start int64 `mapstructure:"start"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds tracing and metrics export settings.
type TelemetryConfig struct {
	OTLPEndpoint    string `mapstructure:"otlp_endpoint"`
	OTLPInsecure    bool   `mapstructure:"otlp_insecure"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Ring.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRingSize, c.Ring.Size)
	}

	if c.Ring.Start < 0 || c.Ring.Start >= c.Ring.Size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRingStart, c.Ring.Start, c.Ring.Size)
	}

	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}
