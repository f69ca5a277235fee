package store

import "context"

// Transactor executes a function against transaction-scoped stores so a
// service can make multiple writes commit or roll back together without
// touching database/sql directly.
type Transactor interface {
	Transact(ctx context.Context, fn func(usuarios UsuarioStore, tareas TareaStore) error) error
}
