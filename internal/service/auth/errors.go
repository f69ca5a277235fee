package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed, carries a wrong
	// issuer, or its signature does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token was valid but has expired.
	// Kept distinct from ErrInvalidToken so the auth gate can answer with
	// specific messaging.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrEmptyPassword is returned when an empty password is given to the
	// hasher.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrInvalidCost is returned when the bcrypt cost factor is outside the
	// supported range.
	ErrInvalidCost = errors.New("bcrypt cost out of range")

	// ErrPasswordMismatch indicates the plaintext does not match the stored
	// hash. A mismatch is an expected outcome, not an internal failure.
	ErrPasswordMismatch = errors.New("password does not match")
)
