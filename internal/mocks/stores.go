// Package mocks provides in-memory fakes for the store interfaces, used by
// service and handler tests.
package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// FakeUsuarioStore is an in-memory store.UsuarioStore.
type FakeUsuarioStore struct {
	mu       sync.Mutex
	usuarios map[uuid.UUID]*domain.Usuario
}

// NewFakeUsuarioStore creates an empty FakeUsuarioStore.
func NewFakeUsuarioStore() *FakeUsuarioStore {
	return &FakeUsuarioStore{usuarios: make(map[uuid.UUID]*domain.Usuario)}
}

var _ store.UsuarioStore = (*FakeUsuarioStore)(nil)

func copyUsuario(u *domain.Usuario) *domain.Usuario {
	c := *u
	return &c
}

// Create implements store.UsuarioStore.Create.
func (s *FakeUsuarioStore) Create(ctx context.Context, usuario *domain.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.usuarios {
		if existing.Email == usuario.Email {
			return store.ErrEmailExists
		}
	}
	s.usuarios[usuario.ID] = copyUsuario(usuario)
	return nil
}

// GetByID implements store.UsuarioStore.GetByID.
func (s *FakeUsuarioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usuarios[id]
	if !ok {
		return nil, store.ErrUsuarioNotFound
	}
	return copyUsuario(u), nil
}

// GetByEmail implements store.UsuarioStore.GetByEmail.
func (s *FakeUsuarioStore) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := domain.NormalizeEmail(email)
	for _, u := range s.usuarios {
		if u.Email == normalized {
			return copyUsuario(u), nil
		}
	}
	return nil, store.ErrUsuarioNotFound
}

// Update implements store.UsuarioStore.Update.
func (s *FakeUsuarioStore) Update(ctx context.Context, usuario *domain.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usuarios[usuario.ID]; !ok {
		return store.ErrUsuarioNotFound
	}
	for id, existing := range s.usuarios {
		if id != usuario.ID && existing.Email == usuario.Email {
			return store.ErrEmailExists
		}
	}
	s.usuarios[usuario.ID] = copyUsuario(usuario)
	return nil
}

// Delete implements store.UsuarioStore.Delete.
func (s *FakeUsuarioStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usuarios[id]; !ok {
		return store.ErrUsuarioNotFound
	}
	delete(s.usuarios, id)
	return nil
}

// WithTx implements store.UsuarioStore.WithTx. The fake has no real
// transactions; it returns itself.
func (s *FakeUsuarioStore) WithTx(tx *sql.Tx) store.UsuarioStore { return s }

// FakeTareaStore is an in-memory store.TareaStore.
type FakeTareaStore struct {
	mu     sync.Mutex
	tareas map[uuid.UUID]*domain.Tarea

	// FailNextUpdate makes the next Update call return the given error,
	// for exercising error paths.
	FailNextUpdate error
}

// NewFakeTareaStore creates an empty FakeTareaStore.
func NewFakeTareaStore() *FakeTareaStore {
	return &FakeTareaStore{tareas: make(map[uuid.UUID]*domain.Tarea)}
}

var _ store.TareaStore = (*FakeTareaStore)(nil)

func copyTarea(t *domain.Tarea) *domain.Tarea {
	c := *t
	return &c
}

// Create implements store.TareaStore.Create.
func (s *FakeTareaStore) Create(ctx context.Context, tarea *domain.Tarea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tareas[tarea.ID] = copyTarea(tarea)
	return nil
}

// GetByID implements store.TareaStore.GetByID.
func (s *FakeTareaStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tarea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tareas[id]
	if !ok {
		return nil, store.ErrTareaNotFound
	}
	return copyTarea(t), nil
}

// ListByUserID implements store.TareaStore.ListByUserID.
func (s *FakeTareaStore) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Tarea, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Tarea, 0)
	for _, t := range s.tareas {
		if t.UserID != userID {
			continue
		}
		if opts.Listo != nil && t.Listo != *opts.Listo {
			continue
		}
		result = append(result, copyTarea(t))
	}

	desc := strings.EqualFold(opts.Order, "desc")
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if desc {
			a, b = b, a
		}
		switch opts.Sort {
		case "descripcion":
			return a.Descripcion < b.Descripcion
		case "listo":
			return !a.Listo && b.Listo
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})

	return result, len(result), nil
}

// Update implements store.TareaStore.Update.
func (s *FakeTareaStore) Update(ctx context.Context, tarea *domain.Tarea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextUpdate != nil {
		err := s.FailNextUpdate
		s.FailNextUpdate = nil
		return err
	}
	existing, ok := s.tareas[tarea.ID]
	if !ok {
		return store.ErrTareaNotFound
	}
	// Owner is immutable; mirror the SQL statement which never writes it.
	updated := copyTarea(tarea)
	updated.UserID = existing.UserID
	s.tareas[tarea.ID] = updated
	return nil
}

// Delete implements store.TareaStore.Delete.
func (s *FakeTareaStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tareas[id]; !ok {
		return store.ErrTareaNotFound
	}
	delete(s.tareas, id)
	return nil
}

// DeleteByUserID implements store.TareaStore.DeleteByUserID.
func (s *FakeTareaStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, t := range s.tareas {
		if t.UserID == userID {
			delete(s.tareas, id)
			deleted++
		}
	}
	return deleted, nil
}

// CountByUserID implements store.TareaStore.CountByUserID.
func (s *FakeTareaStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.tareas {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}

// WithTx implements store.TareaStore.WithTx.
func (s *FakeTareaStore) WithTx(tx *sql.Tx) store.TareaStore { return s }

// FakeTransactor runs the callback directly against the fakes; there is
// nothing to roll back in memory.
type FakeTransactor struct {
	Usuarios *FakeUsuarioStore
	Tareas   *FakeTareaStore
}

var _ store.Transactor = (*FakeTransactor)(nil)

// Transact implements store.Transactor.Transact.
func (f *FakeTransactor) Transact(
	ctx context.Context,
	fn func(usuarios store.UsuarioStore, tareas store.TareaStore) error,
) error {
	return fn(f.Usuarios, f.Tareas)
}
