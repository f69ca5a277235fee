package api

import (
	"net/http"
	"time"

	"github.com/procrastinant/procrastinant-api/internal/api/middleware"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
)

// HealthHandler serves the liveness probe. It sits behind the optional auth
// middleware: a valid token flips the authenticated flag, an invalid or
// absent one never turns the probe into a 401.
type HealthHandler struct {
	environment string
	startedAt   time.Time
}

// NewHealthHandler creates a HealthHandler for the given environment.
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		startedAt:   time.Now(),
	}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	_, authenticated := middleware.GetUserID(r)
	shared.RespondWithSuccess(w, r, http.StatusOK, "", HealthResponse{
		Status:        "ok",
		Uptime:        time.Since(h.startedAt).Round(time.Second).String(),
		Environment:   h.environment,
		Authenticated: authenticated,
	})
}
