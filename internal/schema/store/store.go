// Package store persists the published step schema. Stores are
// interface-driven so the server can run in-memory during development and on
// Redis when a cache is configured.
package store

import (
	"context"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

// ErrNoSchema is returned when nothing has been published yet.
var ErrNoSchema = dErrors.New(dErrors.CodeNotFound, "no schema published")

// Store holds the most recently published schema. Publish replaces the whole
// document; there is no partial update.
type Store interface {
	Publish(ctx context.Context, steps []domain.StepSchema) error
	Latest(ctx context.Context) ([]domain.StepSchema, error)
}
