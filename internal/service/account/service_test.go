package account

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/mocks"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.FakeUsuarioStore, *mocks.FakeTareaStore) {
	t.Helper()

	usuarios := mocks.NewFakeUsuarioStore()
	tareas := mocks.NewFakeTareaStore()
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)
	jwtService := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		time.Now,
	)

	svc := NewService(
		usuarios,
		&mocks.FakeTransactor{Usuarios: usuarios, Tareas: tareas},
		hasher,
		jwtService,
	)
	return svc, usuarios, tareas
}

func validInput() RegisterInput {
	return RegisterInput{
		Nombre:   "Juan",
		Apellido: "Pérez",
		Alias:    "juanp",
		Email:    "juan@example.com",
		Password: "Password123",
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc, usuarios, _ := newTestService(t)
	ctx := context.Background()

	usuario, token, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	require.NotNil(t, usuario)
	require.NotEmpty(t, token)

	assert.Equal(t, "juan@example.com", usuario.Email)
	assert.NotEqual(t, "Password123", usuario.HashedPassword,
		"stored credential must never equal the plaintext")

	stored, err := usuarios.GetByID(ctx, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, usuario.HashedPassword, stored.HashedPassword)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	in := validInput()
	in.Email = "  JUAN@Example.COM "

	usuario, _, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", usuario.Email)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.Email = "JUAN@EXAMPLE.COM"
	second.Alias = "otro"
	_, _, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	in := validInput()
	in.Password = "weak"

	_, _, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		usuario, token, err := svc.Login(ctx, "juan@example.com", "Password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, usuario.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("uppercase email still matches", func(t *testing.T) {
		usuario, _, err := svc.Login(ctx, "JUAN@EXAMPLE.COM", "Password123")
		require.NoError(t, err)
		assert.Equal(t, "juan@example.com", usuario.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "juan@example.com", "Password124")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the identical error", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nadie@example.com", "Password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	usuario, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	nombre := "Pedro"
	email := "PEDRO@Example.com"
	updated, err := svc.UpdateProfile(ctx, usuario.ID, UpdateProfileInput{
		Nombre: &nombre,
		Email:  &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", updated.Nombre)
	assert.Equal(t, "pedro@example.com", updated.Email)
	assert.Equal(t, "Pérez", updated.Apellido, "untouched fields keep their values")
}

func TestUpdateProfileEmailUniqueness(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.Email = "otra@example.com"
	other, _, err := svc.Register(ctx, second)
	require.NoError(t, err)

	email := first.Email
	_, err = svc.UpdateProfile(ctx, other.ID, UpdateProfileInput{Email: &email})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	usuario, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, usuario.ID, "Wrong123", "Nueva456X")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("reused password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, usuario.ID, "Password123", "Password123")
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("invalid new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, usuario.ID, "Password123", "corta")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, usuario.ID, "Password123", "Nueva456X"))

		_, _, err := svc.Login(ctx, usuario.Email, "Password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "old password must stop working")

		_, _, err = svc.Login(ctx, usuario.Email, "Nueva456X")
		assert.NoError(t, err)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	svc, usuarios, tareas := newTestService(t)
	ctx := context.Background()

	usuario, _, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tarea, err := domain.NewTarea(usuario.ID, "pendiente", false)
		require.NoError(t, err)
		require.NoError(t, tareas.Create(ctx, tarea))
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.DeleteAccount(ctx, usuario.ID, "Wrong123", DeleteConfirmation)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong confirmation phrase", func(t *testing.T) {
		_, err := svc.DeleteAccount(ctx, usuario.ID, "Password123", "eliminar")
		assert.ErrorIs(t, err, ErrConfirmationMismatch)
	})

	t.Run("cascade", func(t *testing.T) {
		deleted, err := svc.DeleteAccount(ctx, usuario.ID, "Password123", DeleteConfirmation)
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		count, err := tareas.CountByUserID(ctx, usuario.ID)
		require.NoError(t, err)
		assert.Zero(t, count, "no owned tareas may survive account deletion")

		_, err = usuarios.GetByID(ctx, usuario.ID)
		assert.ErrorIs(t, err, store.ErrUsuarioNotFound)
	})

	t.Run("repeat deletion reports not found", func(t *testing.T) {
		_, err := svc.DeleteAccount(ctx, usuario.ID, "Password123", DeleteConfirmation)
		assert.ErrorIs(t, err, store.ErrUsuarioNotFound)
	})
}

func TestProfileUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUsuarioNotFound)
}
