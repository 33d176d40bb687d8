package logger

import (
	"github.com/xraph/go-utils/log"
)

// Field constructors that return wrapped fields.
var (
	// String creates a string field.
	String = log.String
	// Int creates an int field.
	Int = log.Int
	// Error creates an error field.
	Error = log.Error
)
