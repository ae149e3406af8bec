// Package config loads dstat settings from the environment.
package config

import (
	"fmt"

	"github.com/Geun-Oh/dstat/internal/sink"
	"github.com/hyp3rd/ewrap"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrInvalidFormat is returned when the output format is not supported.
	ErrInvalidFormat = ewrap.New("invalid output format")

	// ErrEmptyOutput is returned when no results file path is configured.
	ErrEmptyOutput = ewrap.New("empty output path")

	// ErrLoad is returned when an environment variable cannot be decoded.
	ErrLoad = ewrap.New("failed to load config")
)

// Config holds all application configuration.
type Config struct {
	Output  OutputConfig
	Logging LogConfig
}

// OutputConfig holds results file and console settings.
type OutputConfig struct {
	Path   string `envconfig:"DSTAT_OUTPUT" default:"StatisticsResults.txt"`
	Format string `envconfig:"DSTAT_FORMAT" default:"text"`
	Color  bool   `envconfig:"DSTAT_COLOR" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"DSTAT_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"DSTAT_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   sink.DefaultResultsFile,
			Format: sink.FormatText,
		},
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	if !sink.ValidFormat(c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Output.Path == "" {
		return ErrEmptyOutput
	}
	return nil
}
