package errors

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors
const (
	CodeConfigError          = "CONFIG_ERROR"
	CodeServiceNotFound      = "SERVICE_NOT_FOUND"
	CodeServiceAlreadyExists = "SERVICE_ALREADY_EXISTS"
	CodeTypeMismatch         = "TYPE_MISMATCH"
	CodeSharedAlreadySet     = "SHARED_ALREADY_SET"
)

// =============================================================================
// REGISTRY ERRORS
// =============================================================================

// Standard registry errors
var (
	ErrInvalidFactory = errors.New("factory must not be nil")
	ErrTypeMismatch   = errors.New("service type mismatch")
	ErrRegistryClosed = errors.New("registry already closed")
	ErrNilRegistry    = errors.New("registry must not be nil")
)

// ServiceError wraps errors that concern a single service key.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service %s: %s: %v", e.Service, e.Operation, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is interface for ServiceError
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return (e.Service == "" || t.Service == "" || e.Service == t.Service) &&
		(e.Operation == "" || t.Operation == "" || e.Operation == t.Operation)
}

// NewServiceError creates a new service error
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// =============================================================================
// WEAVE ERROR (STRUCTURED ERROR)
// =============================================================================

// WeaveError represents a structured error with context
type WeaveError struct {
	Code      string
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]any
}

func (e *WeaveError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *WeaveError) Unwrap() error {
	return e.Cause
}

// Is compares by error code, so constructed errors match the sentinels below.
func (e *WeaveError) Is(target error) bool {
	t, ok := target.(*WeaveError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext adds context to the error
func (e *WeaveError) WithContext(key string, value any) *WeaveError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrConfigError creates a config error
func ErrConfigError(message string, cause error) *WeaveError {
	return &WeaveError{
		Code:      CodeConfigError,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   make(map[string]any),
	}
}

func ErrServiceNotFound(serviceName string) *WeaveError {
	return &WeaveError{
		Code:      CodeServiceNotFound,
		Message:   "service '" + serviceName + "' not found",
		Timestamp: time.Now(),
		Context:   map[string]any{"service_name": serviceName},
	}
}

func ErrServiceAlreadyExists(serviceName string) *WeaveError {
	return &WeaveError{
		Code:      CodeServiceAlreadyExists,
		Message:   "service '" + serviceName + "' already registered as final",
		Timestamp: time.Now(),
		Context:   map[string]any{"service_name": serviceName},
	}
}

// ErrServiceTypeMismatch reports a produced value that cannot be narrowed to the
// requested type. It wraps ErrTypeMismatch.
func ErrServiceTypeMismatch(serviceName string, want string, got any) *WeaveError {
	return &WeaveError{
		Code:      CodeTypeMismatch,
		Message:   fmt.Sprintf("service '%s' resolved to %T, want %s", serviceName, got, want),
		Cause:     ErrTypeMismatch,
		Timestamp: time.Now(),
		Context:   map[string]any{"service_name": serviceName, "want": want},
	}
}

func ErrSharedAlreadySet(current string) *WeaveError {
	return &WeaveError{
		Code:      CodeSharedAlreadySet,
		Message:   "shared registry already set to " + current,
		Timestamp: time.Now(),
		Context:   map[string]any{"registry_id": current},
	}
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

var (
	// ErrServiceNotFoundSentinel matches every service not found error
	ErrServiceNotFoundSentinel = &WeaveError{Code: CodeServiceNotFound}

	// ErrServiceAlreadyExistsSentinel matches duplicate final registrations
	ErrServiceAlreadyExistsSentinel = &WeaveError{Code: CodeServiceAlreadyExists}

	// ErrTypeMismatchSentinel matches values that failed to narrow
	ErrTypeMismatchSentinel = &WeaveError{Code: CodeTypeMismatch}

	// ErrSharedAlreadySetSentinel matches a second MakeShared
	ErrSharedAlreadySetSentinel = &WeaveError{Code: CodeSharedAlreadySet}

	// ErrConfigErrorSentinel matches config errors
	ErrConfigErrorSentinel = &WeaveError{Code: CodeConfigError}
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsServiceNotFound checks if the error is a service not found error
func IsServiceNotFound(err error) bool {
	return Is(err, ErrServiceNotFoundSentinel)
}

// IsServiceAlreadyExists checks if the error is a duplicate registration error
func IsServiceAlreadyExists(err error) bool {
	return Is(err, ErrServiceAlreadyExistsSentinel)
}

// IsTypeMismatch checks if the error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return Is(err, ErrTypeMismatchSentinel)
}
