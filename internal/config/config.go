// Package config provides configuration loading using koanf.
// Precedence: environment variables, then compiled defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every recognized environment variable carries.
const EnvPrefix = "UTCTIME_"

// ErrConfigRequired is returned when a key that has no safe default is missing.
var ErrConfigRequired = errors.New("required configuration key missing")

// Config holds all CLI configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	Log LogConfig `koanf:"log"`

	// Input handling
	Input InputConfig `koanf:"input"`

	// OpenTelemetry configuration
	OTEL OTELConfig `koanf:"otel"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// InputConfig controls how calendar input is validated.
type InputConfig struct {
	// Strict rejects non-UTC input instead of coercing it.
	Strict bool `koanf:"strict"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint string `koanf:"endpoint"` // Empty disables OTLP export
	Service  string `koanf:"service"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment: "local",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		OTEL: OTELConfig{
			Service: "utctime",
		},
	}
}

// Load loads configuration from UTCTIME_-prefixed environment variables
// over compiled defaults. UTCTIME_LOG_LEVEL maps to log.level.
//
// Required keys missing -> error; optional keys missing -> defaults.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateRequired checks that required configuration is present.
func validateRequired(cfg *Config) error {
	if !cfg.IsProd() {
		return nil
	}

	if cfg.OTEL.Endpoint == "" {
		return fmt.Errorf("%w: otel.endpoint", ErrConfigRequired)
	}

	return nil
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
