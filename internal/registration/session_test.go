package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

func newTestSession() *Session {
	return NewSession(NewService(NewInMemoryStore(), discardLogger(), nil))
}

func fillStep1(s *Session) {
	s.SetField("aadhaarNumber", "1234 5678 9012")
	s.SetField("entrepreneurName", "Rahul Sharma")
	s.SetField("consentGiven", true)
}

func TestSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	require.Equal(t, StateStep1, s.State())

	fillStep1(s)
	errs, err := s.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StateStep2, s.State())
	assert.NotEmpty(t, s.Token())

	s.SetField("panNumber", "abcde1234f")
	errs, err = s.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StateComplete, s.State())

	step2 := s.Step2()
	require.NotNil(t, step2)
	assert.Equal(t, s.Token(), step2.Step1ID)
	assert.Equal(t, "ABCDE1234F", step2.PANNumber)
}

func TestSessionDoesNotAdvanceOnValidationFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	s.SetField("aadhaarNumber", "1234")
	s.SetField("entrepreneurName", "")
	s.SetField("consentGiven", false)

	errs, err := s.Submit(ctx)
	require.NoError(t, err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs, "aadhaarNumber")
	assert.Contains(t, errs, "entrepreneurName")
	assert.Contains(t, errs, "consentGiven")

	assert.Equal(t, StateStep1, s.State())
	assert.Empty(t, s.Token())
	assert.Equal(t, errs, s.Errors())
}

func TestSessionSetFieldFormats(t *testing.T) {
	s := newTestSession()
	s.SetField("aadhaarNumber", "12-34-56-78-90-12-99")
	assert.Equal(t, "123456789012", s.Values(1).String("aadhaarNumber"))
}

func TestSessionBackKeepsValuesAndToken(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	fillStep1(s)
	_, err := s.Submit(ctx)
	require.NoError(t, err)

	token := s.Token()
	require.NotEmpty(t, token)
	s.SetField("panNumber", "ABCDE1234F")

	s.Back()
	assert.Equal(t, StateStep1, s.State())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, "123456789012", s.Values(1).String("aadhaarNumber"))
	assert.Equal(t, "ABCDE1234F", s.Values(2).String("panNumber"))

	// Re-advancing does not create a second record for the same Aadhaar.
	errs, err := s.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StateStep2, s.State())
	assert.Equal(t, token, s.Token())

	errs, err = s.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StateComplete, s.State())
}

func TestSessionBackEditDoesNotRewriteStoredRecord(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	s := NewSession(NewService(st, discardLogger(), nil))
	fillStep1(s)
	_, err := s.Submit(ctx)
	require.NoError(t, err)
	token := s.Token()

	s.Back()
	s.SetField("entrepreneurName", "Priya Patel")
	errs, err := s.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StateStep2, s.State())

	// The session's working value changed, the persisted record did not.
	assert.Equal(t, "Priya Patel", s.Values(1).String("entrepreneurName"))
	stored, err := st.FindStep1(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", stored.EntrepreneurName)
}

func TestSessionSubmitAfterComplete(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	fillStep1(s)
	_, err := s.Submit(ctx)
	require.NoError(t, err)
	s.SetField("panNumber", "ABCDE1234F")
	_, err = s.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, StateComplete, s.State())

	_, err = s.Submit(ctx)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeConflict))
}

func TestSessionStep2WithoutStep1IsInvariantViolation(t *testing.T) {
	s := newTestSession()
	s.state = StateStep2 // corrupt the gate deliberately

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvariantViolation))
}

// blockingStore parks CreateStep1 until released so a second Submit can race
// the first.
type blockingStore struct {
	Store
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) CreateStep1(ctx context.Context, reg domain.RegistrationStep1) error {
	close(b.entered)
	<-b.release
	return b.Store.CreateStep1(ctx, reg)
}

func TestSessionRejectsConcurrentSubmit(t *testing.T) {
	ctx := context.Background()
	bs := &blockingStore{
		Store:   NewInMemoryStore(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewSession(NewService(bs, discardLogger(), nil))
	fillStep1(s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(ctx)
		done <- err
	}()

	<-bs.entered
	_, err := s.Submit(ctx)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeConflict))

	close(bs.release)
	require.NoError(t, <-done)
	assert.Equal(t, StateStep2, s.State())
}
