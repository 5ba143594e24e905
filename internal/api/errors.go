package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"todoserver/internal/api/shared"
	"todoserver/internal/domain"
	"todoserver/internal/service/auth"
	"todoserver/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. The mapping is total: anything unrecognized is an
// internal server error.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input malformed
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Bad credentials at login
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Bad or missing token on a protected route
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusForbidden

	// Registration conflict
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Referenced entity absent
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Invalid entity reached the store
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Internal details never reach the client; they only
// appear, redacted, in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyDescription):
		return "Invalid description for task"

	case errors.Is(err, domain.ErrInvalidTaskID):
		return "Invalid id"

	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email"

	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password must be at least 8 characters long"

	case errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrPasswordTooLong):
		return "Invalid password"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid credentials"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a user-friendly
// message without exposing struct internals.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe.Tag()))
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// respondServiceError translates a service-layer failure into the matching
// HTTP status and a safe JSON error body, logging the underlying error.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
