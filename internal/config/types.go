package config

import (
	"github.com/xraph/weave/internal/errors"
)

// Re-export error types and constructors for backward compatibility
type WeaveError = errors.WeaveError

var ErrConfigError = errors.ErrConfigError

// EnvPrefix prefixes environment overrides, e.g. WEAVE_STRICT_ASSERTIONS.
const EnvPrefix = "WEAVE"

// Config configures a registry.
type Config struct {
	// StrictAssertions turns programmer errors that are otherwise only logged
	// (duplicate final registration, second shared registry) into panics.
	StrictAssertions bool `yaml:"strict_assertions" mapstructure:"strict_assertions"`

	// LogLevel is a zap level name, or "off" for a noop logger.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// MetricsConfig contains configuration for registry metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
}

// TracingConfig contains configuration for composition tracing.
type TracingConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// Default returns the configuration used when nothing is loaded.
func Default() Config {
	return Config{
		LogLevel: "off",
		Metrics: MetricsConfig{
			Namespace: "weave",
		},
		Tracing: TracingConfig{
			Enabled: true,
		},
	}
}
