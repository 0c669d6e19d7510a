package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eazybank/accounts/internal/api"
	apiMiddleware "github.com/eazybank/accounts/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	accountsHandler := api.NewAccountsHandler(app.accountsService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/create", accountsHandler.CreateAccount)
		r.Get("/fetch", accountsHandler.FetchAccount)
		r.Put("/update", accountsHandler.UpdateAccount)
		r.Delete("/delete", accountsHandler.DeleteAccount)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
