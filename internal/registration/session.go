package registration

import (
	"context"
	"sync"

	"udyam/internal/domain"
	"udyam/internal/schema"
	"udyam/internal/validation"
	dErrors "udyam/pkg/domain-errors"
)

// State is a session's position in the registration workflow.
type State int

const (
	StateStep1 State = iota + 1
	StateStep2
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateStep1:
		return "step1"
	case StateStep2:
		return "step2"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session is the step gate for one registrant. It holds per-step working
// values, advances only on a successful submit, and carries the step-1 token
// forward so step 2 can link to its record. Safe for concurrent use; only one
// submit may be in flight at a time.
type Session struct {
	svc   *Service
	steps []domain.StepSchema

	mu       sync.Mutex
	inFlight bool
	state    State
	values   map[int]domain.Values
	errors   domain.ErrorMap
	step1    *domain.RegistrationStep1
	step2    *domain.RegistrationStep2
}

func NewSession(svc *Service) *Session {
	return &Session{
		svc:   svc,
		steps: schema.DefaultSteps(),
		state: StateStep1,
		values: map[int]domain.Values{
			1: {},
			2: {},
		},
		errors: domain.ErrorMap{},
	}
}

// State returns the session's current position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the step-1 record ID once step 1 has been submitted, empty
// before that.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step1 == nil {
		return ""
	}
	return s.step1.ID
}

// Errors returns the error map from the most recent submit.
func (s *Session) Errors() domain.ErrorMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.ErrorMap, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// SetField records a value on the current step, running it through its
// category formatter. Names outside the current step's schema are kept
// verbatim; validation ignores them.
func (s *Session) SetField(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.stepIndexLocked()
	if index == 0 {
		return
	}
	if raw, ok := value.(string); ok {
		if step, found := schema.StepByIndex(s.steps, index); found {
			if field := step.Field(name); field != nil {
				value = validation.Format(field.Category, raw)
			}
		}
	}
	s.values[index][name] = value
}

// Values returns a copy of the working values for the given step.
func (s *Session) Values(step int) domain.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.Values, len(s.values[step]))
	for k, v := range s.values[step] {
		out[k] = v
	}
	return out
}

// Submit submits the current step. On validation failure the session stays
// put and the error map is returned; on success it advances. A second Submit
// while one is in flight fails with a conflict rather than double-writing.
func (s *Session) Submit(ctx context.Context) (domain.ErrorMap, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, dErrors.New(dErrors.CodeConflict, "a submission is already in progress")
	}
	if s.state == StateComplete {
		s.mu.Unlock()
		return nil, dErrors.New(dErrors.CodeConflict, "registration already complete")
	}
	if s.state == StateStep2 && s.step1 == nil {
		s.mu.Unlock()
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "step 2 reached without a step 1 record")
	}
	state := s.state
	index := s.stepIndexLocked()
	values := make(domain.Values, len(s.values[index]))
	for k, v := range s.values[index] {
		values[k] = v
	}
	var token string
	if s.step1 != nil {
		token = s.step1.ID
	}
	s.inFlight = true
	s.mu.Unlock()

	var (
		errs  domain.ErrorMap
		err   error
		step1 domain.RegistrationStep1
		step2 domain.RegistrationStep2
	)
	switch state {
	case StateStep1:
		if token != "" {
			// Already persisted; the user came back via Back. Re-validate
			// the (possibly edited) values but do not create a second record:
			// edits here live in the session only, the stored record keeps
			// the values from the original submit.
			if step, found := schema.StepByIndex(s.steps, 1); found {
				errs = validation.ValidateStep(step, formatValues(step, values))
			}
		} else {
			step1, errs, err = s.svc.SubmitStep1(ctx, values)
		}
	case StateStep2:
		step2, errs, err = s.svc.SubmitStep2(ctx, token, values)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		s.errors = errs
		return errs, nil
	}
	s.errors = domain.ErrorMap{}
	switch state {
	case StateStep1:
		if step1.ID != "" {
			s.step1 = &step1
		}
		s.state = StateStep2
	case StateStep2:
		s.step2 = &step2
		s.state = StateComplete
	}
	return nil, nil
}

// Back returns the session from step 2 to step 1. Working values and the
// step-1 token survive, so re-advancing does not re-enter data. Step-1 edits
// made after Back are display-only: the next Submit re-validates them but the
// persisted record is not rewritten. Going back from step 1 or after
// completion is a no-op.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateStep2 {
		s.state = StateStep1
		s.errors = domain.ErrorMap{}
	}
}

// Step1 returns the persisted step-1 record, nil before step 1 succeeds.
func (s *Session) Step1() *domain.RegistrationStep1 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step1 == nil {
		return nil
	}
	reg := *s.step1
	return &reg
}

// Step2 returns the persisted step-2 record, nil before completion.
func (s *Session) Step2() *domain.RegistrationStep2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step2 == nil {
		return nil
	}
	reg := *s.step2
	return &reg
}

func (s *Session) stepIndexLocked() int {
	switch s.state {
	case StateStep1:
		return 1
	case StateStep2:
		return 2
	default:
		return 0
	}
}
