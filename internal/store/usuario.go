package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
)

// UsuarioStore defines the interface for user persistence.
type UsuarioStore interface {
	// Create saves a new user. The user's HashedPassword must already be
	// set; plaintext never reaches the store.
	// Returns ErrEmailExists if the normalized email is already taken.
	Create(ctx context.Context, usuario *domain.Usuario) error

	// GetByID retrieves a user by ID.
	// Returns ErrUsuarioNotFound if no such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns ErrUsuarioNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)

	// Update persists the user's current field values, including
	// HashedPassword. Returns ErrUsuarioNotFound if the user does not
	// exist and ErrEmailExists when changing to an email already in use.
	Update(ctx context.Context, usuario *domain.Usuario) error

	// Delete permanently removes a user by ID.
	// Returns ErrUsuarioNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UsuarioStore bound to the given transaction so
	// multiple operations can commit atomically.
	WithTx(tx *sql.Tx) UsuarioStore
}
