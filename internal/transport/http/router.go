// Package httptransport assembles the public HTTP surface: the shared
// middleware chain, the vault routes, and the operational endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warden/internal/platform/middleware"
	"warden/internal/vault/handler"
	"warden/pkg/platform/httputil"
)

// HealthCheck reports the readiness of one backing dependency.
type HealthCheck func(ctx context.Context) error

// NewRouter wires the middleware chain and mounts all endpoints. The proof
// extractor runs for every route so the guard can verify invocation
// credentials regardless of which operation is called.
func NewRouter(vault handler.Service, logger *slog.Logger, bootstrapHash string, checks ...HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CallProof)

	handler.New(vault, logger, bootstrapHash).Register(r)

	r.Get("/healthz", handleHealth(checks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func handleHealth(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
