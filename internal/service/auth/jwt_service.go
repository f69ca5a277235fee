package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenIssuer is the iss claim stamped on every token this service signs.
// Verification rejects tokens carrying any other issuer.
const TokenIssuer = "procrastinant-app"

// JWTService defines operations for issuing and verifying identity tokens.
// Tokens are stateless: nothing is persisted server-side and expiry is the
// only invalidation mechanism.
type JWTService interface {
	// GenerateToken creates a signed token bound to the given user ID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies a token string and extracts its claims.
	// Returns ErrExpiredToken when the token is past its expiry and
	// ErrInvalidToken for structural, signature or issuer problems.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an identity token.
type Claims struct {
	// UserID is the subject the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	Issuer    string    `json:"iss,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
