package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher defines the operations for one-way credential handling.
type PasswordHasher interface {
	// Hash derives a salted bcrypt hash from the plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns ErrPasswordMismatch when they do not match; any other error
	// means the stored hash is malformed or the context was canceled.
	Compare(ctx context.Context, hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt with a configurable
// cost factor. Hashing at cost c takes time proportional to 2^c, so all
// bcrypt work is funneled through a weighted semaphore: at most maxWorkers
// hashes run at once and the remaining request goroutines queue instead of
// saturating every CPU.
type BcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher creates a BcryptHasher. The cost must be within
// [bcrypt.MinCost, bcrypt.MaxCost] and maxWorkers must be at least 1.
func NewBcryptHasher(cost, maxWorkers int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: cost %d must be in [%d, %d]",
			ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if maxWorkers < 1 {
		return nil, fmt.Errorf("%w: hash worker count %d must be at least 1",
			ErrInvalidCost, maxWorkers)
	}
	return &BcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxWorkers)),
	}, nil
}

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash implements PasswordHasher.Hash. The returned string embeds the salt
// and cost factor in modular crypt format.
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire hash worker: %w", err)
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hashing failed: %w", err)
	}
	return string(hash), nil
}

// Compare implements PasswordHasher.Compare. bcrypt's comparison is
// constant-time over the derived key, so timing does not leak how close the
// guess was.
func (h *BcryptHasher) Compare(ctx context.Context, hashedPassword, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire hash worker: %w", err)
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("bcrypt comparison failed: %w", err)
	}
	return nil
}

// Ensure BcryptHasher implements PasswordHasher.
var _ PasswordHasher = (*BcryptHasher)(nil)
