package weave

import "github.com/xraph/weave/internal/logger"

// Re-export logger interfaces
type (
	Logger        = logger.Logger
	Field         = logger.Field
	LoggingConfig = logger.LoggingConfig
)

// Re-export logger constructors
var (
	NewLogger                     = logger.NewLogger
	NewDevelopmentLogger          = logger.NewDevelopmentLogger
	NewDevelopmentLoggerWithLevel = logger.NewDevelopmentLoggerWithLevel
	NewProductionLogger           = logger.NewProductionLogger
	NewNoopLogger                 = logger.NewNoopLogger
)
