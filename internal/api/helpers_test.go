package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/procrastinant/procrastinant-api/internal/api/middleware"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
	"github.com/procrastinant/procrastinant-api/internal/config"
	"github.com/procrastinant/procrastinant-api/internal/mocks"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/service/tarea"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires the handlers, middleware and in-memory stores into a router
// with the production route layout.
type testEnv struct {
	router   http.Handler
	usuarios *mocks.FakeUsuarioStore
	tareas   *mocks.FakeTareaStore
	accounts *account.Service
	jwt      auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Auth:   config.AuthConfig{TokenLifetimeMinutes: 60},
	}

	usuarios := mocks.NewFakeUsuarioStore()
	tareas := mocks.NewFakeTareaStore()
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)
	jwtService := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		time.Now,
	)

	accounts := account.NewService(
		usuarios,
		&mocks.FakeTransactor{Usuarios: usuarios, Tareas: tareas},
		hasher,
		jwtService,
	)
	tareaService := tarea.NewService(tareas)

	cookies := NewCookieManager(cfg)
	authHandler := NewAuthHandler(accounts, cookies)
	userHandler := NewUserHandler(accounts, cookies)
	tareaHandler := NewTareaHandler(tareaService)
	healthHandler := NewHealthHandler(cfg.Server.Environment)
	authMw := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.With(authMw.OptionalAuthenticate).Get("/health", healthHandler.Health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/user/verify", authHandler.Verify)

			r.Get("/user/profile", userHandler.GetProfile)
			r.Put("/user/profile", userHandler.UpdateProfile)
			r.Put("/user/password", userHandler.ChangePassword)
			r.Delete("/user/account", userHandler.DeleteAccount)

			r.Get("/tareas", tareaHandler.List)
			r.Post("/tareas", tareaHandler.Create)
			r.Put("/tareas/{id}", tareaHandler.Update)
			r.Patch("/tareas/{id}/toggle", tareaHandler.Toggle)
			r.Delete("/tareas/{id}", tareaHandler.Delete)
		})
	})

	return &testEnv{
		router:   r,
		usuarios: usuarios,
		tareas:   tareas,
		accounts: accounts,
		jwt:      jwtService,
	}
}

// do sends a JSON request through the router. A non-empty token is attached
// as a bearer header.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its token.
func (e *testEnv) register(t *testing.T, alias, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"nombre":   "Juan",
		"apellido": "Pérez",
		"alias":    alias,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := parseEnvelope(t, rec)
	data := dataObject(t, env)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func parseEnvelope(t *testing.T, rec *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var env shared.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func dataObject(t *testing.T, env shared.Envelope) map[string]interface{} {
	t.Helper()
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", env.Data)
	return data
}
