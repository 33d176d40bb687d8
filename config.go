package weave

import (
	"github.com/xraph/weave/internal/config"
)

// Config configures a registry. See WithConfig.
type Config = config.Config

// Config sections.
type (
	MetricsConfig = config.MetricsConfig
	TracingConfig = config.TracingConfig
)

// ConfigEnvPrefix prefixes environment overrides, e.g. WEAVE_LOG_LEVEL.
const ConfigEnvPrefix = config.EnvPrefix

var (
	// DefaultConfig returns the configuration used when nothing is loaded.
	DefaultConfig = config.Default
	// LoadConfig reads a YAML file, applies WEAVE_ environment overrides and validates.
	LoadConfig = config.Load
	// ParseConfig decodes and validates YAML bytes.
	ParseConfig = config.Parse
)
