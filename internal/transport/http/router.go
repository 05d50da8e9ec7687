// Package httptransport assembles the public router: middleware chain,
// operational endpoints, and the per-module handlers.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	locationHandler "udyam/internal/location/handler"
	"udyam/internal/platform/metrics"
	"udyam/internal/platform/middleware"
	registrationHandler "udyam/internal/registration/handler"
	schemaHandler "udyam/internal/schema/handler"
	"udyam/pkg/platform/httputil"
	"udyam/pkg/requestcontext"
)

const requestTimeout = 30 * time.Second

// Deps carries everything the router mounts.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Registration registrationHandler.Service
	Schema       schemaHandler.Service
	Location     locationHandler.Lookup
}

// NewRouter wires the middleware chain and all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Metadata)
	r.Use(middleware.Device)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)
	if d.Metrics != nil {
		r.Use(middleware.Latency(d.Metrics))
	}

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	registrationHandler.New(d.Registration, d.Logger).Register(r)
	schemaHandler.New(d.Schema, d.Logger).Register(r)
	locationHandler.New(d.Location, d.Logger).Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": requestcontext.Now(r.Context()).UTC().Format(time.RFC3339),
	})
}
