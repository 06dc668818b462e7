package service

import (
	"errors"
	"fmt"
)

// ErrMessagingDisabled is returned when a reminder is requested while the
// messaging-flow feature toggle is off.
var ErrMessagingDisabled = errors.New("messaging flow is disabled")

// OnboardingServiceError is a custom error type for onboarding service
// errors.
type OnboardingServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for OnboardingServiceError.
func (e *OnboardingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("onboarding %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("onboarding %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *OnboardingServiceError) Unwrap() error {
	return e.Err
}

// NewOnboardingServiceError creates a new OnboardingServiceError.
func NewOnboardingServiceError(operation, message string, err error) *OnboardingServiceError {
	return &OnboardingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
