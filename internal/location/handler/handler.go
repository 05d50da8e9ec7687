// Package handler exposes the PIN-code lookup endpoint.
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

// Lookup defines the location operation the handler needs.
type Lookup interface {
	Lookup(ctx context.Context, pincode string) (domain.Location, error)
}

type Handler struct {
	logger *slog.Logger
	lookup Lookup
}

func New(lookup Lookup, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, lookup: lookup}
}

// Register mounts the location routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/location/{pincode}", h.handleLookup)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pincode := chi.URLParam(r, "pincode")

	loc, err := h.lookup.Lookup(ctx, pincode)
	if err != nil {
		if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "location lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"pincode", pincode,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, loc)
}
