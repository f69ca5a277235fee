package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/procrastinant/procrastinant-api/internal/api"
	apimiddleware "github.com/procrastinant/procrastinant-api/internal/api/middleware"
)

// setupRouter builds the route tree: public auth endpoints, the optional-auth
// health probe, and the authenticated usuario/tareas surface under /api.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(app.config.Server.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // the auth cookie must survive cross-origin requests
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.accountService, app.cookies)
	userHandler := api.NewUserHandler(app.accountService, app.cookies)
	tareaHandler := api.NewTareaHandler(app.tareaService)
	healthHandler := api.NewHealthHandler(app.config.Server.Environment)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.With(authMiddleware.OptionalAuthenticate).Get("/health", healthHandler.Health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

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

	return r
}
