// Package tarea implements the task operations with per-resource ownership
// enforcement. Every mutation re-reads the tarea from storage and compares
// its owner against the authenticated identity before touching anything.
package tarea

import (
	"context"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/platform/logger"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// Service implements the tarea operations.
type Service struct {
	tareas store.TareaStore
}

// NewService creates a tarea Service.
func NewService(tareas store.TareaStore) *Service {
	return &Service{tareas: tareas}
}

// authorize loads a tarea and checks its owner. The existence check runs
// first: a missing tarea surfaces store.ErrTareaNotFound, a foreign one
// ErrTareaNotOwned.
func (s *Service) authorize(ctx context.Context, userID, tareaID uuid.UUID) (*domain.Tarea, error) {
	t, err := s.tareas.GetByID(ctx, tareaID)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		logger.FromContext(ctx).Warn("ownership check failed",
			"tarea_id", tareaID,
			"owner_id", t.UserID,
			"requester_id", userID)
		return nil, ErrTareaNotOwned
	}
	return t, nil
}

// List returns the caller's tareas, filtered and sorted per opts, together
// with the total count. Scoping happens in the query; no other user's
// tareas can appear in the result.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Tarea, int, error) {
	return s.tareas.ListByUserID(ctx, userID, opts)
}

// Create adds a new tarea owned by userID.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	descripcion string,
	listo bool,
) (*domain.Tarea, error) {
	t, err := domain.NewTarea(userID, descripcion, listo)
	if err != nil {
		return nil, err
	}
	if err := s.tareas.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update changes a tarea's description. The completion flag and the owner
// are not updatable through this path.
func (s *Service) Update(
	ctx context.Context,
	userID, tareaID uuid.UUID,
	descripcion string,
) (*domain.Tarea, error) {
	t, err := s.authorize(ctx, userID, tareaID)
	if err != nil {
		return nil, err
	}
	if err := t.SetDescripcion(descripcion); err != nil {
		return nil, err
	}
	if err := s.tareas.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Toggle flips the tarea's completion flag, or sets it to the explicit
// value when one is provided.
func (s *Service) Toggle(
	ctx context.Context,
	userID, tareaID uuid.UUID,
	explicit *bool,
) (*domain.Tarea, error) {
	t, err := s.authorize(ctx, userID, tareaID)
	if err != nil {
		return nil, err
	}
	t.Toggle(explicit)
	if err := s.tareas.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the tarea after the ownership check.
func (s *Service) Delete(ctx context.Context, userID, tareaID uuid.UUID) error {
	if _, err := s.authorize(ctx, userID, tareaID); err != nil {
		return err
	}
	return s.tareas.Delete(ctx, tareaID)
}
