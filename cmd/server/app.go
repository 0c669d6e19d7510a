package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/eazybank/accounts/internal/config"
	"github.com/eazybank/accounts/internal/platform/postgres"
	"github.com/eazybank/accounts/internal/service"
	"github.com/eazybank/accounts/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	customerStore store.CustomerStore
	accountStore  store.AccountStore

	// Service interfaces
	accountsService service.AccountsService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.customerStore = postgres.NewPostgresCustomerStore(db, logger)
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)

	// The audit actor is fixed per deployment until an authentication
	// layer supplies a per-request identity.
	actor := cfg.Audit.Actor
	auditor := service.AuditorFunc(func() string { return actor })
	if actor == "" {
		auditor = service.SystemAuditor
	}

	var err error
	app.accountsService, err = service.NewAccountsService(
		app.customerStore,
		app.accountStore,
		service.NewAccountNumberGenerator(),
		auditor,
		store.NewSQLTxRunner(db),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize accounts service: %w", err)
	}
	logger.Info("Accounts service initialized", "audit_actor", auditor())

	return app, nil
}

// cleanup releases resources held by the application beyond the database
// connection, which the caller owns.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
