package weave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	innerErr := errors.New("inner error")
	serviceErr := NewServiceError("test-service", "resolve", innerErr)

	expected := "service test-service: resolve: inner error"
	assert.Equal(t, expected, serviceErr.Error())
}

func TestServiceError_Unwrap(t *testing.T) {
	innerErr := errors.New("inner error")
	serviceErr := NewServiceError("test-service", "register", innerErr)

	unwrapped := serviceErr.Unwrap()
	assert.Equal(t, innerErr, unwrapped)
}

func TestServiceError_ErrorsAs(t *testing.T) {
	innerErr := errors.New("inner error")
	serviceErr := NewServiceError("test-service", "forward", innerErr)

	var svcErr *ServiceError
	assert.True(t, errors.As(serviceErr, &svcErr))
	assert.Equal(t, "test-service", svcErr.Service)
	assert.Equal(t, "forward", svcErr.Operation)
	assert.Equal(t, innerErr, svcErr.Err)
}

func TestServiceError_ErrorsIs(t *testing.T) {
	innerErr := errors.New("inner error")
	serviceErr := NewServiceError("test-service", "lookup", innerErr)

	assert.True(t, errors.Is(serviceErr, innerErr))
	assert.True(t, errors.Is(serviceErr, &ServiceError{Service: "test-service"}))
	assert.False(t, errors.Is(serviceErr, &ServiceError{Service: "other"}))
}

func TestStandardErrors(t *testing.T) {
	assert.Contains(t, ErrServiceNotFound("test").Error(), "not found")
	assert.Contains(t, ErrServiceAlreadyExists("test").Error(), "already registered")
	assert.Contains(t, ErrSharedAlreadySet("abc").Error(), "abc")
	assert.Contains(t, ErrRegistryClosed.Error(), "closed")

	mismatch := ErrServiceTypeMismatch("test", "*db.Pool", "a string")
	assert.Contains(t, mismatch.Error(), "resolved to string, want *db.Pool")
	assert.ErrorIs(t, mismatch, ErrTypeMismatch)
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", ErrServiceNotFound("a"), ErrServiceNotFoundSentinel},
		{"already exists", ErrServiceAlreadyExists("a"), ErrServiceAlreadyExistsSentinel},
		{"type mismatch", ErrServiceTypeMismatch("a", "int", ""), ErrTypeMismatchSentinel},
		{"shared set", ErrSharedAlreadySet("a"), ErrSharedAlreadySetSentinel},
		{"config", ErrConfigError("bad", nil), ErrConfigErrorSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := NewServiceError("svc", "resolve", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}

	assert.NotErrorIs(t, ErrServiceNotFound("a"), ErrServiceAlreadyExistsSentinel)
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsServiceNotFound(ErrServiceNotFound("a")))
	assert.True(t, IsServiceAlreadyExists(ErrServiceAlreadyExists("a")))
	assert.True(t, IsTypeMismatch(ErrServiceTypeMismatch("a", "int", "")))
	assert.False(t, IsServiceNotFound(errors.New("other")))
}

func TestWeaveError_WithContext(t *testing.T) {
	err := ErrConfigError("bad level", nil).WithContext("field", "log_level")

	assert.Equal(t, "log_level", err.Context["field"])
	assert.Equal(t, "bad level", err.Error())
}
