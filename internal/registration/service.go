package registration

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"udyam/internal/domain"
	"udyam/internal/platform/metrics"
	"udyam/internal/schema"
	"udyam/internal/validation"
	dErrors "udyam/pkg/domain-errors"
	"udyam/pkg/requestcontext"
)

// Service validates and persists registration steps. Every submission runs
// format then validate then persist: raw input is reshaped by the category
// formatters first, so "1234 5678 9012" and "123456789012" are the same
// Aadhaar number by the time the rules and the unique index see them.
type Service struct {
	store   Store
	steps   []domain.StepSchema
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		steps:   schema.DefaultSteps(),
		logger:  logger,
		metrics: m,
	}
}

// SubmitStep1 validates the Aadhaar step and persists it. A non-empty error
// map means the input failed validation and nothing was stored; the error
// return covers persistence failures only.
func (s *Service) SubmitStep1(ctx context.Context, values domain.Values) (domain.RegistrationStep1, domain.ErrorMap, error) {
	step, ok := schema.StepByIndex(s.steps, 1)
	if !ok {
		return domain.RegistrationStep1{}, nil,
			dErrors.New(dErrors.CodeInvariantViolation, "step 1 schema missing")
	}

	formatted := formatValues(step, values)
	if errs := validation.ValidateStep(step, formatted); len(errs) > 0 {
		s.observeFailures(errs)
		return domain.RegistrationStep1{}, errs, nil
	}

	reg := domain.RegistrationStep1{
		ID:               uuid.NewString(),
		AadhaarNumber:    formatted.String("aadhaarNumber"),
		EntrepreneurName: strings.TrimSpace(formatted.String("entrepreneurName")),
		ConsentGiven:     formatted.Bool("consentGiven"),
		CreatedAt:        requestcontext.Now(ctx).UTC(),
	}
	if err := s.store.CreateStep1(ctx, reg); err != nil {
		return domain.RegistrationStep1{}, nil, err
	}

	if s.metrics != nil {
		s.metrics.RegistrationsStarted.Inc()
	}
	s.logger.InfoContext(ctx, "step 1 registration created",
		slog.String("registration_id", reg.ID),
		slog.String("aadhaar", validation.DisplayAadhaar(reg.AadhaarNumber)))
	return reg, nil, nil
}

// SubmitStep2 validates the PAN step against an existing step 1 record and
// persists it. The step1ID is the token handed out by SubmitStep1; an unknown
// token fails with ErrStep1NotFound before any validation runs.
func (s *Service) SubmitStep2(ctx context.Context, step1ID string, values domain.Values) (domain.RegistrationStep2, domain.ErrorMap, error) {
	if _, err := s.store.FindStep1(ctx, step1ID); err != nil {
		return domain.RegistrationStep2{}, nil, err
	}

	step, ok := schema.StepByIndex(s.steps, 2)
	if !ok {
		return domain.RegistrationStep2{}, nil,
			dErrors.New(dErrors.CodeInvariantViolation, "step 2 schema missing")
	}

	formatted := formatValues(step, values)
	if errs := validation.ValidateStep(step, formatted); len(errs) > 0 {
		s.observeFailures(errs)
		return domain.RegistrationStep2{}, errs, nil
	}

	reg := domain.RegistrationStep2{
		ID:        uuid.NewString(),
		Step1ID:   step1ID,
		PANNumber: formatted.String("panNumber"),
		Validated: true,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	}
	if err := s.store.CreateStep2(ctx, reg); err != nil {
		return domain.RegistrationStep2{}, nil, err
	}

	if s.metrics != nil {
		s.metrics.RegistrationsCompleted.Inc()
	}
	s.logger.InfoContext(ctx, "step 2 registration created",
		slog.String("registration_id", reg.ID),
		slog.String("step1_id", step1ID))
	return reg, nil, nil
}

// formatValues applies each field's category formatter to string values,
// leaving everything else (booleans, absent keys) untouched.
func formatValues(step domain.StepSchema, values domain.Values) domain.Values {
	out := make(domain.Values, len(values))
	for k, v := range values {
		out[k] = v
	}
	for _, field := range step.Fields {
		if raw, ok := out[field.Name].(string); ok {
			out[field.Name] = validation.Format(field.Category, raw)
		}
	}
	return out
}

func (s *Service) observeFailures(errs domain.ErrorMap) {
	if s.metrics != nil {
		s.metrics.ObserveValidationFailures(errs)
	}
}
