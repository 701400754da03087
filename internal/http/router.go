package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"markdown-spellcheck/internal/batch"
	"markdown-spellcheck/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	BatchService   batch.Service
	HealthCheckers map[string]handlers.HealthChecker
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(CORS)

	checkBatchHandler := handlers.NewCheckBatchHandler(deps.BatchService)
	healthHandler := handlers.NewHealthHandler(deps.HealthCheckers)

	r.Method(http.MethodPost, "/check-batch", checkBatchHandler)
	r.Method(http.MethodGet, "/health", healthHandler)

	return r
}
