package store

import (
	"context"
	"sync"

	"udyam/internal/domain"
)

// InMemoryStore keeps the published schema in process memory.
type InMemoryStore struct {
	mu    sync.RWMutex
	steps []domain.StepSchema
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Publish(_ context.Context, steps []domain.StepSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append([]domain.StepSchema{}, steps...)
	return nil
}

func (s *InMemoryStore) Latest(_ context.Context) ([]domain.StepSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.steps == nil {
		return nil, ErrNoSchema
	}
	return append([]domain.StepSchema{}, s.steps...), nil
}
