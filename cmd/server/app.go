package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/procrastinant/procrastinant-api/internal/api"
	"github.com/procrastinant/procrastinant-api/internal/config"
	"github.com/procrastinant/procrastinant-api/internal/platform/postgres"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
	"github.com/procrastinant/procrastinant-api/internal/service/auth"
	"github.com/procrastinant/procrastinant-api/internal/service/tarea"
)

// application holds the wired dependencies for the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	accountService *account.Service
	tareaService   *tarea.Service
	jwtService     auth.JWTService
	cookies        *api.CookieManager
}

// newApplication builds the full dependency graph from configuration and an
// open database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	usuarioStore := postgres.NewUsuarioStore(db, logger)
	tareaStore := postgres.NewTareaStore(db, logger)
	transactor := postgres.NewTransactor(db, logger)

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost, cfg.Auth.HashWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountService: account.NewService(usuarioStore, transactor, hasher, jwtService),
		tareaService:   tarea.NewService(tareaStore),
		jwtService:     jwtService,
		cookies:        api.NewCookieManager(cfg),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
