package api

import (
	"errors"
	"net/http"

	"github.com/carepath/onboard-api/internal/domain"
	"github.com/carepath/onboard-api/internal/service"
)

// MapErrorToStatusCode translates service and domain errors into HTTP status
// codes. Anything unrecognized is treated as an internal error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrPersonaNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMessagingDisabled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the error. Detailed
// error text stays in the logs; clients only see these fixed phrases.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPersonaNotFound):
		return "Persona not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, domain.ErrQuestionNotFound):
		return "Unknown quiz question"
	case errors.Is(err, service.ErrMessagingDisabled):
		return "Messaging flow is disabled"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	default:
		return "An internal error occurred"
	}
}
