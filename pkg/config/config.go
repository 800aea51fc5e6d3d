// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/user/idemfs/pkg/orchestrator"
	"github.com/user/idemfs/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the full configuration for the idemfs CLI.
type Config struct {
	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Quiet     bool   `yaml:"quiet"`

	// Manifest runner
	ContinueOnError bool   `yaml:"continue_on_error"`
	Summary         string `yaml:"summary"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Unknown keys are rejected; an empty file yields the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	if !ports.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, error or quiet)", c.LogLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q (want %s or %s)", c.LogFormat, FormatText, FormatJSON)
	}
	return nil
}

// Level returns the effective log level, taking Quiet into account.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		ContinueOnError: c.ContinueOnError,
	}
}
