// Package main implements the entry point for the accounts API server,
// which manages bank customers and their accounts over HTTP backed by
// PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations (up|down|status) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("accounts server failed: %v", err)
	}
}

// run loads configuration, sets up logging and the database connection,
// and either runs migrations or starts the HTTP server.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database connection", "error", err)
		}
	}()

	if migrateCmd != "" {
		return runMigrations(db, cfg, migrateCmd, logger)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		return err
	}

	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
