// Package main implements the entry point for the Procrastinant API server:
// a task-management backend where users register, authenticate and manage
// their personal tareas.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/procrastinant/procrastinant-api/internal/config"
	"github.com/procrastinant/procrastinant-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}

	if *migrateCmd != "" {
		err := runMigrations(db, *migrateCmd)
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database connection", "error", closeErr)
		}
		if err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		appLogger.Info("migration command completed", "command", *migrateCmd)
		return
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
