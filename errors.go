package weave

import (
	"github.com/xraph/weave/internal/errors"
)

// Re-export error constructors.
var (
	ErrServiceNotFound      = errors.ErrServiceNotFound
	ErrServiceAlreadyExists = errors.ErrServiceAlreadyExists
	ErrServiceTypeMismatch  = errors.ErrServiceTypeMismatch
	ErrSharedAlreadySet     = errors.ErrSharedAlreadySet
	ErrConfigError          = errors.ErrConfigError
)

// Standard registry errors.
var (
	ErrInvalidFactory = errors.ErrInvalidFactory
	ErrTypeMismatch   = errors.ErrTypeMismatch
	ErrRegistryClosed = errors.ErrRegistryClosed
	ErrNilRegistry    = errors.ErrNilRegistry
)

// Re-export sentinel errors for error comparison using errors.Is().
var (
	ErrServiceNotFoundSentinel      = errors.ErrServiceNotFoundSentinel
	ErrServiceAlreadyExistsSentinel = errors.ErrServiceAlreadyExistsSentinel
	ErrTypeMismatchSentinel         = errors.ErrTypeMismatchSentinel
	ErrSharedAlreadySetSentinel     = errors.ErrSharedAlreadySetSentinel
	ErrConfigErrorSentinel          = errors.ErrConfigErrorSentinel
)

// ServiceError wraps errors that concern a single service key.
type ServiceError = errors.ServiceError

// WeaveError is a structured error with a code.
type WeaveError = errors.WeaveError

// NewServiceError creates a new service error.
var NewServiceError = errors.NewServiceError

// Error helpers.
var (
	IsServiceNotFound      = errors.IsServiceNotFound
	IsServiceAlreadyExists = errors.IsServiceAlreadyExists
	IsTypeMismatch         = errors.IsTypeMismatch
)
