// Package registration implements the two-step registration workflow: the
// service that validates and persists each step, and the session state
// machine that gates advancement.
package registration

import (
	"context"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

// Store errors are domain errors so handlers map them to HTTP statuses
// without inspecting strings. Conflicts keep their specific, user-facing
// message rather than collapsing into a generic failure.
var (
	ErrAadhaarRegistered = dErrors.New(dErrors.CodeConflict, "Aadhaar number already registered")
	ErrPANRegistered     = dErrors.New(dErrors.CodeConflict, "PAN number already registered")
	ErrStep1NotFound     = dErrors.New(dErrors.CodeNotFound, "Step 1 registration not found")
)

// Store persists registration records. Interface-driven so the service runs
// against in-memory storage in development and Postgres in production.
type Store interface {
	// CreateStep1 fails with ErrAadhaarRegistered when the Aadhaar number
	// already has a record.
	CreateStep1(ctx context.Context, reg domain.RegistrationStep1) error
	// FindStep1 fails with ErrStep1NotFound for an unknown ID.
	FindStep1(ctx context.Context, id string) (domain.RegistrationStep1, error)
	// CreateStep2 fails with ErrStep1NotFound when the linked record is
	// missing and ErrPANRegistered on a duplicate PAN.
	CreateStep2(ctx context.Context, reg domain.RegistrationStep2) error
}
