package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/eazybank/accounts/internal/config"
	"github.com/pressly/goose/v3"
)

// runMigrations executes the requested goose migration command against the
// configured database and returns once it completes.
func runMigrations(db *sql.DB, cfg *config.Config, command string, logger *slog.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	dir := cfg.Database.MigrationsDir

	logger.Info("Executing migrations",
		"command", command,
		"dir", dir)

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("failed to report migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}

	logger.Info("Migrations completed", "command", command)
	return nil
}
