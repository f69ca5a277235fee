package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// UsuarioStore implements store.UsuarioStore backed by PostgreSQL.
type UsuarioStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUsuarioStore creates a PostgreSQL implementation of the UsuarioStore
// interface. The connection (or transaction) is managed by the caller.
func NewUsuarioStore(db store.DBTX, logger *slog.Logger) *UsuarioStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UsuarioStore{
		db:     db,
		logger: logger.With(slog.String("component", "usuario_store")),
	}
}

// Ensure UsuarioStore implements store.UsuarioStore.
var _ store.UsuarioStore = (*UsuarioStore)(nil)

// WithTx implements store.UsuarioStore.WithTx.
func (s *UsuarioStore) WithTx(tx *sql.Tx) store.UsuarioStore {
	return &UsuarioStore{db: tx, logger: s.logger}
}

// Create implements store.UsuarioStore.Create.
func (s *UsuarioStore) Create(ctx context.Context, usuario *domain.Usuario) error {
	if err := usuario.Validate(); err != nil {
		return err
	}

	const query = `
		INSERT INTO usuarios (id, nombre, apellido, alias, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		usuario.ID,
		usuario.Nombre,
		usuario.Apellido,
		usuario.Alias,
		usuario.Email,
		usuario.HashedPassword,
		usuario.CreatedAt,
		usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		s.logger.Error("failed to insert usuario", "error", err, "usuario_id", usuario.ID)
		return fmt.Errorf("failed to create usuario: %w", err)
	}
	return nil
}

const usuarioColumns = `id, nombre, apellido, alias, email, hashed_password, created_at, updated_at`

func (s *UsuarioStore) scanUsuario(row *sql.Row) (*domain.Usuario, error) {
	var u domain.Usuario
	err := row.Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.Alias,
		&u.Email,
		&u.HashedPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrUsuarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan usuario: %w", err)
	}
	return &u, nil
}

// GetByID implements store.UsuarioStore.GetByID.
func (s *UsuarioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return s.scanUsuario(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UsuarioStore.GetByEmail. The lookup runs on
// the normalized (lowercased) email.
func (s *UsuarioStore) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1`
	return s.scanUsuario(s.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
}

// Update implements store.UsuarioStore.Update.
func (s *UsuarioStore) Update(ctx context.Context, usuario *domain.Usuario) error {
	if err := usuario.Validate(); err != nil {
		return err
	}

	const query = `
		UPDATE usuarios
		SET nombre = $2, apellido = $3, alias = $4, email = $5, hashed_password = $6, updated_at = $7
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		usuario.ID,
		usuario.Nombre,
		usuario.Apellido,
		usuario.Alias,
		usuario.Email,
		usuario.HashedPassword,
		usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		s.logger.Error("failed to update usuario", "error", err, "usuario_id", usuario.ID)
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrUsuarioNotFound
	}
	return nil
}

// Delete implements store.UsuarioStore.Delete.
func (s *UsuarioStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete usuario", "error", err, "usuario_id", id)
		return fmt.Errorf("failed to delete usuario: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrUsuarioNotFound
	}
	return nil
}
