package registration

import (
	"context"
	"sync"

	"udyam/internal/domain"
)

// InMemoryStore keeps registrations in process memory. Clarity over
// performance; it backs development mode and the unit tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	step1     map[string]domain.RegistrationStep1
	step2     map[string]domain.RegistrationStep2
	byAadhaar map[string]string
	byPAN     map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		step1:     make(map[string]domain.RegistrationStep1),
		step2:     make(map[string]domain.RegistrationStep2),
		byAadhaar: make(map[string]string),
		byPAN:     make(map[string]string),
	}
}

func (s *InMemoryStore) CreateStep1(_ context.Context, reg domain.RegistrationStep1) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byAadhaar[reg.AadhaarNumber]; exists {
		return ErrAadhaarRegistered
	}
	s.step1[reg.ID] = reg
	s.byAadhaar[reg.AadhaarNumber] = reg.ID
	return nil
}

func (s *InMemoryStore) FindStep1(_ context.Context, id string) (domain.RegistrationStep1, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if reg, ok := s.step1[id]; ok {
		return reg, nil
	}
	return domain.RegistrationStep1{}, ErrStep1NotFound
}

func (s *InMemoryStore) CreateStep2(_ context.Context, reg domain.RegistrationStep2) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.step1[reg.Step1ID]; !ok {
		return ErrStep1NotFound
	}
	if _, exists := s.byPAN[reg.PANNumber]; exists {
		return ErrPANRegistered
	}
	s.step2[reg.ID] = reg
	s.byPAN[reg.PANNumber] = reg.ID
	return nil
}
