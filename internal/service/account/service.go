// Package account orchestrates the account lifecycle: registration, login,
// profile maintenance, password changes and account deletion. It owns no
// HTTP or SQL details; it composes the hasher, the token service and the
// store interfaces.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procrastinant/procrastinant-api/internal/domain"
	"github.com/procrastinant/procrastinant-api/internal/platform/logger"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// Service implements the account lifecycle operations.
type Service struct {
	usuarios   store.UsuarioStore
	transactor store.Transactor
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
}

// NewService creates an account Service with its collaborators.
func NewService(
	usuarios store.UsuarioStore,
	transactor store.Transactor,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
) *Service {
	return &Service{
		usuarios:   usuarios,
		transactor: transactor,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// RegisterInput carries the registration profile fields plus the plaintext
// password. The password lives only on the stack of Register; it is hashed
// before anything is persisted.
type RegisterInput struct {
	Nombre   string
	Apellido string
	Alias    string
	Email    string
	Password string
}

// Register creates a new account and issues its first token. Returns
// store.ErrEmailExists when the normalized email is already registered.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Usuario, string, error) {
	log := logger.FromContext(ctx)

	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, "", err
	}

	usuario, err := domain.NewUsuario(in.Nombre, in.Apellido, in.Alias, in.Email)
	if err != nil {
		return nil, "", err
	}

	hashed, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	usuario.HashedPassword = hashed

	// Email uniqueness is enforced by the store's unique index; relying on
	// it (instead of a prior lookup) keeps the check race-free.
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(ctx, usuario.ID)
	if err != nil {
		log.Error("failed to issue token after registration", "error", err, "user_id", usuario.ID)
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user registered", "user_id", usuario.ID)
	return usuario, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials with no distinguishing detail.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Usuario, string, error) {
	log := logger.FromContext(ctx)

	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUsuarioNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(ctx, usuario.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.jwtService.GenerateToken(ctx, usuario.ID)
	if err != nil {
		log.Error("failed to issue token after login", "error", err, "user_id", usuario.ID)
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return usuario, token, nil
}

// Profile loads the authenticated user's account.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*domain.Usuario, error) {
	return s.usuarios.GetByID(ctx, userID)
}

// UpdateProfileInput carries the optional profile updates. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Nombre   *string
	Apellido *string
	Alias    *string
	Email    *string
}

// UpdateProfile applies a partial update to the user's profile fields. An
// email change is re-checked for uniqueness by the store. The credential
// is not reachable from here.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	in UpdateProfileInput,
) (*domain.Usuario, error) {
	usuario, err := s.usuarios.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		usuario.Apellido = *in.Apellido
	}
	if in.Alias != nil {
		usuario.Alias = *in.Alias
	}
	if in.Email != nil {
		usuario.Email = domain.NormalizeEmail(*in.Email)
	}
	usuario.UpdatedAt = time.Now().UTC()

	if err := usuario.Validate(); err != nil {
		return nil, err
	}
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// ChangePassword re-verifies the current password, rejects reuse, and
// persists a fresh hash of the new one.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	usuario, err := s.usuarios.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(ctx, usuario.HashedPassword, current); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	if newPassword == current {
		return ErrSamePassword
	}
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	usuario.HashedPassword = hashed
	usuario.UpdatedAt = time.Now().UTC()

	return s.usuarios.Update(ctx, usuario)
}

// DeleteAccount permanently removes the user and every tarea they own,
// returning the number of tareas deleted. It requires the account password
// plus the exact confirmation phrase. The cascade runs inside a single
// transaction, so a crash can never leave orphaned tareas; re-running the
// operation for an already-deleted account reports not-found.
func (s *Service) DeleteAccount(
	ctx context.Context,
	userID uuid.UUID,
	password, confirmation string,
) (int, error) {
	log := logger.FromContext(ctx)

	usuario, err := s.usuarios.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.hasher.Compare(ctx, usuario.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return 0, ErrInvalidCredentials
		}
		return 0, fmt.Errorf("failed to verify password: %w", err)
	}

	if confirmation != DeleteConfirmation {
		return 0, ErrConfirmationMismatch
	}

	var deleted int
	err = s.transactor.Transact(ctx, func(usuarios store.UsuarioStore, tareas store.TareaStore) error {
		n, err := tareas.DeleteByUserID(ctx, userID)
		if err != nil {
			return err
		}
		deleted = n
		return usuarios.Delete(ctx, userID)
	})
	if err != nil {
		return 0, err
	}

	log.Info("account deleted", "user_id", userID, "tareas_deleted", deleted)
	return deleted, nil
}
