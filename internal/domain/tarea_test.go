package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTarea(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tarea, err := NewTarea(owner, "  comprar pan  ", false)
	require.NoError(t, err)

	assert.Equal(t, owner, tarea.UserID)
	assert.Equal(t, "comprar pan", tarea.Descripcion, "description should be trimmed")
	assert.False(t, tarea.Listo)
}

func TestNewTareaValidation(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	_, err := NewTarea(owner, "   ", false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTarea(owner, strings.Repeat("x", 301), false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTarea(uuid.Nil, "comprar pan", false)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewTarea(owner, strings.Repeat("x", 300), true)
	assert.NoError(t, err)
}

func TestTareaSetDescripcion(t *testing.T) {
	t.Parallel()

	tarea, err := NewTarea(uuid.New(), "antes", false)
	require.NoError(t, err)

	require.NoError(t, tarea.SetDescripcion(" después "))
	assert.Equal(t, "después", tarea.Descripcion)

	assert.ErrorIs(t, tarea.SetDescripcion(""), ErrValidation)
	assert.Equal(t, "después", tarea.Descripcion, "failed update must not change state")
}

func TestTareaToggleInvolution(t *testing.T) {
	t.Parallel()

	tarea, err := NewTarea(uuid.New(), "comprar pan", false)
	require.NoError(t, err)

	original := tarea.Listo
	tarea.Toggle(nil)
	assert.Equal(t, !original, tarea.Listo)
	tarea.Toggle(nil)
	assert.Equal(t, original, tarea.Listo, "toggling twice must restore the original state")
}

func TestTareaToggleExplicit(t *testing.T) {
	t.Parallel()

	tarea, err := NewTarea(uuid.New(), "comprar pan", false)
	require.NoError(t, err)

	v := true
	tarea.Toggle(&v)
	assert.True(t, tarea.Listo)

	// An explicit value equal to the current state is a no-op flip.
	tarea.Toggle(&v)
	assert.True(t, tarea.Listo)
}
