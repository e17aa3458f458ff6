package hubspot

import (
	"errors"
	"fmt"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
)

// Sentinel errors for configuration validation.
var (
	ErrNilConfig      = errors.New("hubspot: config cannot be nil")
	ErrMissingToken   = errors.New("hubspot: access token is required")
	ErrNilTransport   = errors.New("hubspot: transport is required")
	ErrInvalidBaseURL = errors.New("hubspot: base URL must be an absolute http or https URL")
)

// ErrUnsupportedMethod is returned by Send for verbs outside GET, POST, PUT,
// PATCH and DELETE.
var ErrUnsupportedMethod = pkghttp.ErrUnsupportedMethod

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("hubspot: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// WithCause sets the underlying error.
func (e *ValidationError) WithCause(err error) *ValidationError {
	e.Err = err
	return e
}
