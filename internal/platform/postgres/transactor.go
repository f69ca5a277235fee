package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/procrastinant/procrastinant-api/internal/store"
)

// Transactor implements store.Transactor by running the callback inside a
// single database transaction with transaction-bound stores.
type Transactor struct {
	db       *sql.DB
	usuarios *UsuarioStore
	tareas   *TareaStore
}

// NewTransactor creates a Transactor over the given connection pool.
func NewTransactor(db *sql.DB, logger *slog.Logger) *Transactor {
	return &Transactor{
		db:       db,
		usuarios: NewUsuarioStore(db, logger),
		tareas:   NewTareaStore(db, logger),
	}
}

// Ensure Transactor implements store.Transactor.
var _ store.Transactor = (*Transactor)(nil)

// Transact implements store.Transactor.Transact.
func (t *Transactor) Transact(
	ctx context.Context,
	fn func(usuarios store.UsuarioStore, tareas store.TareaStore) error,
) error {
	return store.RunInTransaction(ctx, t.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(t.usuarios.WithTx(tx), t.tareas.WithTx(tx))
	})
}
