package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
)

// ListOptions controls filtering and ordering for owner-scoped listings.
type ListOptions struct {
	// Listo filters on the completion flag when non-nil.
	Listo *bool

	// Sort names the column to order by. Implementations whitelist the
	// accepted values and fall back to their default on anything else.
	Sort string

	// Order is "asc" or "desc"; anything else means ascending.
	Order string
}

// TareaStore defines the interface for task persistence. Every read and
// mutation is scoped or checked against the owning user at the call site;
// the store itself never widens a query beyond what it is given.
type TareaStore interface {
	// Create saves a new tarea.
	Create(ctx context.Context, tarea *domain.Tarea) error

	// GetByID retrieves a tarea by ID regardless of owner. Callers perform
	// the ownership check so not-found and not-owned stay distinguishable.
	// Returns ErrTareaNotFound if no such tarea exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tarea, error)

	// ListByUserID returns the tareas owned by userID, filtered and sorted
	// per opts, along with the total count for that filter.
	ListByUserID(ctx context.Context, userID uuid.UUID, opts ListOptions) ([]*domain.Tarea, int, error)

	// Update persists the tarea's current descripcion, listo and
	// updated_at values. The owner column is never written.
	// Returns ErrTareaNotFound if the tarea does not exist.
	Update(ctx context.Context, tarea *domain.Tarea) error

	// Delete removes a tarea by ID.
	// Returns ErrTareaNotFound if the tarea does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every tarea owned by userID and returns the
	// number deleted. Deleting for a user with no tareas is not an error,
	// which keeps cascade deletion idempotent.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// CountByUserID returns how many tareas the user owns.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// WithTx returns a TareaStore bound to the given transaction.
	WithTx(tx *sql.Tx) TareaStore
}
