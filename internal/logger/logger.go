package logger

import (
	"strings"

	"github.com/xraph/go-utils/log"
	"go.uber.org/zap/zapcore"
)

// Logger represents the logging interface.
type Logger = log.Logger

// Field represents a structured log field.
type Field = log.Field

// LoggingConfig represents logging configuration.
type LoggingConfig = log.LoggingConfig

// NewLogger creates a new logger with the given configuration.
func NewLogger(config LoggingConfig) Logger {
	return log.NewLogger(config)
}

// NewDevelopmentLogger creates a development logger with enhanced colors.
func NewDevelopmentLogger() Logger {
	return log.NewDevelopmentLogger()
}

// NewDevelopmentLoggerWithLevel creates a development logger with specified level.
func NewDevelopmentLoggerWithLevel(level zapcore.Level) Logger {
	return log.NewDevelopmentLoggerWithLevel(level)
}

// NewProductionLogger creates a production logger.
func NewProductionLogger() Logger {
	return log.NewProductionLogger()
}

// NewNoopLogger creates a logger that does nothing.
func NewNoopLogger() Logger {
	return log.NewNoopLogger()
}

// ParseLevel maps a config level name to a zap level. An empty name means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(name))
}

// ForLevel builds the development logger used when a level is configured, or a
// noop logger for "off".
func ForLevel(name string) (Logger, error) {
	if strings.EqualFold(strings.TrimSpace(name), "off") {
		return NewNoopLogger(), nil
	}
	level, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return NewDevelopmentLoggerWithLevel(level), nil
}
