package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/service/tarea"
	"github.com/procrastinant/procrastinant-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{auth.ErrMissingToken, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{account.ErrInvalidCredentials, http.StatusUnauthorized},
		{tarea.ErrTareaNotOwned, http.StatusForbidden},
		{store.ErrUsuarioNotFound, http.StatusNotFound},
		{store.ErrTareaNotFound, http.StatusNotFound},
		{store.ErrEmailExists, http.StatusBadRequest},
		{domain.ErrInvalidPassword, http.StatusBadRequest},
		{account.ErrSamePassword, http.StatusBadRequest},
		{account.ErrConfirmationMismatch, http.StatusBadRequest},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err), "error: %v", tc.err)
	}

	t.Run("wrapped errors keep their mapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading account: %w", store.ErrUsuarioNotFound)
		assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))
	})
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	leak := fmt.Errorf("pq: duplicate key on usuarios_email_idx: %w", store.ErrEmailExists)
	msg := GetSafeErrorMessage(leak)
	assert.Equal(t, "Email is already registered", msg)
	assert.NotContains(t, msg, "usuarios_email_idx")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("raw sql detail")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	t.Run("validation errors name the field", func(t *testing.T) {
		err := domain.NewValidationError("alias", "is too short", domain.ErrValidation)
		assert.Equal(t, "Invalid alias", GetSafeErrorMessage(err))
	})
}
