// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/librevault/discovery/internal/adapters/http/handlers"
	"github.com/librevault/discovery/internal/platform/metrics"
)

// NewRouter creates an HTTP handler with all tracker routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	announceHandler *handlers.AnnounceHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Prometheus scrape endpoint.
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Discovery API v1.
	r.Route("/v1", func(r chi.Router) {
		r.Post("/announce", announceHandler.Announce)
		r.Post("/deannounce", announceHandler.Deannounce)
	})

	return r
}
