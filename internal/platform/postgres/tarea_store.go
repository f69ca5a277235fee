package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// sortColumns whitelists the client-facing sort keys against real columns.
// Anything outside the map falls back to created_at; sort input is never
// interpolated into SQL directly.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"descripcion": "descripcion",
	"listo":       "listo",
}

const defaultSortColumn = "created_at"

// SortColumn resolves a client-facing sort key to a column name, falling
// back to the default for unknown keys.
func SortColumn(key string) string {
	if col, ok := sortColumns[key]; ok {
		return col
	}
	return defaultSortColumn
}

// TareaStore implements store.TareaStore backed by PostgreSQL.
type TareaStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTareaStore creates a PostgreSQL implementation of the TareaStore
// interface.
func NewTareaStore(db store.DBTX, logger *slog.Logger) *TareaStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TareaStore{
		db:     db,
		logger: logger.With(slog.String("component", "tarea_store")),
	}
}

// Ensure TareaStore implements store.TareaStore.
var _ store.TareaStore = (*TareaStore)(nil)

// WithTx implements store.TareaStore.WithTx.
func (s *TareaStore) WithTx(tx *sql.Tx) store.TareaStore {
	return &TareaStore{db: tx, logger: s.logger}
}

// Create implements store.TareaStore.Create.
func (s *TareaStore) Create(ctx context.Context, tarea *domain.Tarea) error {
	if err := tarea.Validate(); err != nil {
		return err
	}

	const query = `
		INSERT INTO tareas (id, user_id, descripcion, listo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		tarea.ID,
		tarea.UserID,
		tarea.Descripcion,
		tarea.Listo,
		tarea.CreatedAt,
		tarea.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to insert tarea", "error", err, "tarea_id", tarea.ID)
		return fmt.Errorf("failed to create tarea: %w", err)
	}
	return nil
}

// GetByID implements store.TareaStore.GetByID.
func (s *TareaStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tarea, error) {
	const query = `
		SELECT id, user_id, descripcion, listo, created_at, updated_at
		FROM tareas WHERE id = $1`

	var t domain.Tarea
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.UserID,
		&t.Descripcion,
		&t.Listo,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTareaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tarea: %w", err)
	}
	return &t, nil
}

// ListByUserID implements store.TareaStore.ListByUserID.
func (s *TareaStore) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Tarea, int, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, descripcion, listo, created_at, updated_at FROM tareas WHERE user_id = $1`)

	args := []any{userID}
	if opts.Listo != nil {
		sb.WriteString(` AND listo = $2`)
		args = append(args, *opts.Listo)
	}

	direction := "ASC"
	if strings.EqualFold(opts.Order, "desc") {
		direction = "DESC"
	}
	sb.WriteString(` ORDER BY ` + SortColumn(opts.Sort) + ` ` + direction)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		s.logger.Error("failed to list tareas", "error", err, "user_id", userID)
		return nil, 0, fmt.Errorf("failed to list tareas: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", "error", closeErr)
		}
	}()

	tareas := make([]*domain.Tarea, 0)
	for rows.Next() {
		var t domain.Tarea
		if err := rows.Scan(&t.ID, &t.UserID, &t.Descripcion, &t.Listo, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan tarea: %w", err)
		}
		tareas = append(tareas, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate tareas: %w", err)
	}

	return tareas, len(tareas), nil
}

// Update implements store.TareaStore.Update. The user_id column is
// deliberately absent from the statement; ownership is immutable.
func (s *TareaStore) Update(ctx context.Context, tarea *domain.Tarea) error {
	if err := tarea.Validate(); err != nil {
		return err
	}

	const query = `
		UPDATE tareas
		SET descripcion = $2, listo = $3, updated_at = $4
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		tarea.ID,
		tarea.Descripcion,
		tarea.Listo,
		tarea.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to update tarea", "error", err, "tarea_id", tarea.ID)
		return fmt.Errorf("failed to update tarea: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrTareaNotFound
	}
	return nil
}

// Delete implements store.TareaStore.Delete.
func (s *TareaStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tareas WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete tarea", "error", err, "tarea_id", id)
		return fmt.Errorf("failed to delete tarea: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrTareaNotFound
	}
	return nil
}

// DeleteByUserID implements store.TareaStore.DeleteByUserID.
func (s *TareaStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tareas WHERE user_id = $1`, userID)
	if err != nil {
		s.logger.Error("failed to delete tareas for user", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to delete tareas: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(rows), nil
}

// CountByUserID implements store.TareaStore.CountByUserID.
func (s *TareaStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tareas WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tareas: %w", err)
	}
	return count, nil
}
