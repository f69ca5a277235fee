package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation limits for Tarea fields.
const (
	DescripcionMinLen = 1
	DescripcionMaxLen = 300
)

// Tarea is an owned to-do item. The owner reference is set at creation and
// never changes afterwards; every mutating operation re-checks it against
// the authenticated identity.
type Tarea struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Descripcion string    `json:"descripcion"`
	Listo       bool      `json:"listo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTarea creates a Tarea owned by userID with the given description and
// initial completion state.
func NewTarea(userID uuid.UUID, descripcion string, listo bool) (*Tarea, error) {
	now := time.Now().UTC()
	t := &Tarea{
		ID:          uuid.New(),
		UserID:      userID,
		Descripcion: strings.TrimSpace(descripcion),
		Listo:       listo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the Tarea's fields.
func (t *Tarea) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if t.UserID == uuid.Nil {
		return NewValidationError("userId", "cannot be empty", ErrInvalidID)
	}
	if len(t.Descripcion) < DescripcionMinLen || len(t.Descripcion) > DescripcionMaxLen {
		return NewValidationError(
			"descripcion",
			"must be between 1 and 300 characters",
			ErrValidation,
		)
	}
	return nil
}

// SetDescripcion trims and validates a new description before applying it.
func (t *Tarea) SetDescripcion(descripcion string) error {
	trimmed := strings.TrimSpace(descripcion)
	if len(trimmed) < DescripcionMinLen || len(trimmed) > DescripcionMaxLen {
		return NewValidationError(
			"descripcion",
			"must be between 1 and 300 characters",
			ErrValidation,
		)
	}
	t.Descripcion = trimmed
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Toggle flips the completion flag, or sets it to an explicit value when
// one is provided.
func (t *Tarea) Toggle(explicit *bool) {
	if explicit != nil {
		t.Listo = *explicit
	} else {
		t.Listo = !t.Listo
	}
	t.UpdatedAt = time.Now().UTC()
}
