// Package handler exposes the step submission endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
	"udyam/pkg/platform/httputil"
	"udyam/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the registration operations the handler needs.
type Service interface {
	SubmitStep1(ctx context.Context, values domain.Values) (domain.RegistrationStep1, domain.ErrorMap, error)
	SubmitStep2(ctx context.Context, step1ID string, values domain.Values) (domain.RegistrationStep2, domain.ErrorMap, error)
}

// Handler serves the two-step registration wire contract.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the registration routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/registration/step1", h.handleStep1)
	r.Post("/registration/step2", h.handleStep2)
}

func (h *Handler) handleStep1(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var values domain.Values
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	reg, fieldErrs, err := h.service.SubmitStep1(ctx, values)
	if err != nil {
		h.writeServiceError(ctx, w, "step 1 submission failed", err)
		return
	}
	if len(fieldErrs) > 0 {
		httputil.WriteFieldErrors(w, fieldErrs)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":      "Step 1 registration successful",
		"registration": reg,
		"token":        reg.ID,
	})
}

func (h *Handler) handleStep2(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var values domain.Values
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	step1ID := values.String("registrationStep1Id")
	if step1ID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "registrationStep1Id is required"))
		return
	}
	delete(values, "registrationStep1Id")

	reg, fieldErrs, err := h.service.SubmitStep2(ctx, step1ID, values)
	if err != nil {
		h.writeServiceError(ctx, w, "step 2 submission failed", err)
		return
	}
	if len(fieldErrs) > 0 {
		httputil.WriteFieldErrors(w, fieldErrs)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":      "Step 2 registration successful",
		"registration": reg,
	})
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.LogAttrs(ctx, level, msg,
		slog.String("request_id", requestcontext.RequestID(ctx)),
		slog.String("error", err.Error()),
	)
	httputil.WriteError(w, err)
}
