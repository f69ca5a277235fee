package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock for
// deterministic expiry tests. Test-only; production construction goes
// through NewJWTService.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
