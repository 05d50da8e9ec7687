// Package handler exposes the published form schema over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
	"udyam/pkg/platform/httputil"
	"udyam/pkg/requestcontext"
)

// Service defines the schema operations the handler needs.
type Service interface {
	Steps(ctx context.Context) ([]domain.StepSchema, error)
}

// Handler serves the normalized step schema to form-rendering clients.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the schema routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/registration/schema", h.handleGetSchema)
}

func (h *Handler) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	steps, err := h.service.Steps(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load schema",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to load schema"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, steps)
}
