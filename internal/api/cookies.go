package api

import (
	"net/http"
	"time"

	"github.com/procrastinant/procrastinant-api/internal/config"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
)

// CookieManager writes and clears the auth cookie. The cookie is always
// HttpOnly; Secure and SameSite=Strict are enabled in production, where the
// API is served over TLS. Lax keeps local cross-port development working.
type CookieManager struct {
	secure   bool
	sameSite http.SameSite
	maxAge   time.Duration
}

// NewCookieManager derives cookie policy from the runtime configuration.
func NewCookieManager(cfg *config.Config) *CookieManager {
	m := &CookieManager{
		secure:   false,
		sameSite: http.SameSiteLaxMode,
		maxAge:   time.Duration(cfg.Auth.TokenLifetimeMinutes) * time.Minute,
	}
	if cfg.Server.IsProduction() {
		m.secure = true
		m.sameSite = http.SameSiteStrictMode
	}
	return m
}

// SetAuthCookie attaches the token to the response as the auth cookie.
func (m *CookieManager) SetAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// ClearAuthCookie expires the auth cookie immediately.
func (m *CookieManager) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}
