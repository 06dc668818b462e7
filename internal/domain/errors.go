package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is empty or malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrPersonaNotFound is returned when a persona identifier does not
	// reference any persona known to the catalog or session.
	ErrPersonaNotFound = errors.New("persona not found")

	// ErrTaskNotFound is returned when a task identifier does not reference
	// any task on a patient record.
	ErrTaskNotFound = errors.New("task not found")

	// ErrQuestionNotFound is returned when a quiz answer references an
	// unknown question identifier.
	ErrQuestionNotFound = errors.New("quiz question not found")
)

// ValidationError provides field-level context for a validation failure
// while still supporting errors.Is checks against the wrapped sentinel.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given
// sentinel error.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
