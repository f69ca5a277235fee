package tarea

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/mocks"
	"github.com/procrastinant/procrastinant-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTarea(t *testing.T, tareas *mocks.FakeTareaStore, userID uuid.UUID, descripcion string, listo bool) *domain.Tarea {
	t.Helper()

	tarea, err := domain.NewTarea(userID, descripcion, listo)
	require.NoError(t, err)
	require.NoError(t, tareas.Create(context.Background(), tarea))
	return tarea
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, "  comprar pan  ", false)
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, "comprar pan", created.Descripcion)
	assert.False(t, created.Listo)

	_, err = svc.Create(context.Background(), owner, "   ", false)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListScopedToOwner(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	ctx := context.Background()

	mine := uuid.New()
	theirs := uuid.New()
	seedTarea(t, tareas, mine, "mía pendiente", false)
	seedTarea(t, tareas, mine, "mía lista", true)
	seedTarea(t, tareas, theirs, "ajena", false)

	result, total, err := svc.List(ctx, mine, store.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, tarea := range result {
		assert.Equal(t, mine, tarea.UserID)
	}

	listo := true
	result, total, err = svc.List(ctx, mine, store.ListOptions{Listo: &listo})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "mía lista", result[0].Descripcion)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	ctx := context.Background()
	owner := uuid.New()
	tarea := seedTarea(t, tareas, owner, "original", true)

	updated, err := svc.Update(ctx, owner, tarea.ID, "corregida")
	require.NoError(t, err)
	assert.Equal(t, "corregida", updated.Descripcion)
	assert.True(t, updated.Listo, "completion flag is untouched by description updates")
	assert.Equal(t, owner, updated.UserID)
}

func TestOwnershipEnforcement(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	ctx := context.Background()

	owner := uuid.New()
	intruder := uuid.New()
	tarea := seedTarea(t, tareas, owner, "privada", false)

	t.Run("update", func(t *testing.T) {
		_, err := svc.Update(ctx, intruder, tarea.ID, "secuestrada")
		assert.ErrorIs(t, err, ErrTareaNotOwned)
	})

	t.Run("toggle", func(t *testing.T) {
		_, err := svc.Toggle(ctx, intruder, tarea.ID, nil)
		assert.ErrorIs(t, err, ErrTareaNotOwned)
	})

	t.Run("delete", func(t *testing.T) {
		err := svc.Delete(ctx, intruder, tarea.ID)
		assert.ErrorIs(t, err, ErrTareaNotOwned)
	})

	t.Run("state is unchanged after denials", func(t *testing.T) {
		stored, err := tareas.GetByID(ctx, tarea.ID)
		require.NoError(t, err)
		assert.Equal(t, "privada", stored.Descripcion)
		assert.False(t, stored.Listo)
		assert.Equal(t, owner, stored.UserID)
	})

	t.Run("missing tarea reports not found, not forbidden", func(t *testing.T) {
		_, err := svc.Update(ctx, intruder, uuid.New(), "da igual")
		assert.ErrorIs(t, err, store.ErrTareaNotFound)
		assert.NotErrorIs(t, err, ErrTareaNotOwned)
	})
}

func TestToggle(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	ctx := context.Background()
	owner := uuid.New()
	tarea := seedTarea(t, tareas, owner, "alternante", false)

	t.Run("flip twice returns to the original state", func(t *testing.T) {
		once, err := svc.Toggle(ctx, owner, tarea.ID, nil)
		require.NoError(t, err)
		assert.True(t, once.Listo)

		twice, err := svc.Toggle(ctx, owner, tarea.ID, nil)
		require.NoError(t, err)
		assert.False(t, twice.Listo)
	})

	t.Run("explicit value wins over flipping", func(t *testing.T) {
		listo := false
		result, err := svc.Toggle(ctx, owner, tarea.ID, &listo)
		require.NoError(t, err)
		assert.False(t, result.Listo)

		result, err = svc.Toggle(ctx, owner, tarea.ID, &listo)
		require.NoError(t, err)
		assert.False(t, result.Listo, "explicit false is idempotent")
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tareas := mocks.NewFakeTareaStore()
	svc := NewService(tareas)
	ctx := context.Background()
	owner := uuid.New()
	tarea := seedTarea(t, tareas, owner, "efímera", false)

	require.NoError(t, svc.Delete(ctx, owner, tarea.ID))

	_, err := tareas.GetByID(ctx, tarea.ID)
	assert.ErrorIs(t, err, store.ErrTareaNotFound)

	err = svc.Delete(ctx, owner, tarea.ID)
	assert.ErrorIs(t, err, store.ErrTareaNotFound)
}
