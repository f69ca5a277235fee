package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundHierarchy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUsuarioNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTareaNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrUsuarioNotFound, ErrTareaNotFound)
}

func TestDuplicateHierarchy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
}

func TestIsHelpersMatchWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading profile: %w", ErrUsuarioNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsDuplicateError(wrapped))

	assert.True(t, IsDuplicateError(fmt.Errorf("register: %w", ErrEmailExists)))
	assert.False(t, IsNotFoundError(errors.New("unrelated")))
}
