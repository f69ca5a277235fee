package auth

import (
	"net/http"
	"strings"
)

// CookieName is the HTTP-only cookie that carries the identity token for
// browser clients.
const CookieName = "authToken"

const bearerPrefix = "Bearer "

// ExtractToken pulls the identity token from a request.
//
// Precedence is fixed: the Authorization header ("Bearer <token>") wins,
// and the authToken cookie is consulted only when the header is absent.
//
// The second return value is false when no token is present. Absence is a
// normal state (public endpoints, optional auth), not an error. A present
// Authorization header that is not in Bearer form also yields false.
func ExtractToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if strings.HasPrefix(authHeader, bearerPrefix) {
			token := strings.TrimSpace(authHeader[len(bearerPrefix):])
			if token != "" {
				return token, true
			}
		}
		return "", false
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
