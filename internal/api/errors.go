package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/service/tarea"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes by error
// type, never by error text.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication failures
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, account.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization failures: the resource exists but belongs to somebody else
	case errors.Is(err, tarea.ErrTareaNotOwned):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Malformed or rejected input
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, account.ErrSamePassword),
		errors.Is(err, account.ErrConfirmationMismatch):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for the error. Internal
// detail never crosses this boundary.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, account.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, tarea.ErrTareaNotOwned):
		return "You do not have permission to access this tarea"

	case errors.Is(err, store.ErrUsuarioNotFound):
		return "User not found"
	case errors.Is(err, store.ErrTareaNotFound):
		return "Tarea not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email is already registered"
	case errors.Is(err, account.ErrSamePassword):
		return "New password must differ from the current one"
	case errors.Is(err, account.ErrConfirmationMismatch):
		return "Confirmation phrase does not match"
	case errors.Is(err, domain.ErrInvalidPassword):
		return "Password does not meet the requirements"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return "Invalid " + ve.Field
		}
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the failure envelope. An explicit userMessage overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// fieldErrorsFromValidation converts validator and domain validation errors
// into the per-field error list of the response envelope.
func fieldErrorsFromValidation(err error) []shared.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]shared.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, shared.FieldError{
				Field:   jsonFieldName(fe.Field()),
				Message: validationTagMessage(fe.Tag()),
			})
		}
		return out
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return []shared.FieldError{{Field: ve.Field, Message: ve.Message}}
	}
	return nil
}

// jsonFieldName lowercases the first rune of a struct field name, matching
// the camelCase JSON tags of the request models.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "eqfield":
		return "does not match"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}
