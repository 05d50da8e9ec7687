package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	_, err := s.Latest(ctx)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	published := []domain.StepSchema{{StepIndex: 1, Name: "aadhaar_verification"}}
	require.NoError(t, s.Publish(ctx, published))

	got, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, published, got)
}

func TestInMemoryStorePublishReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.Publish(ctx, []domain.StepSchema{{StepIndex: 1}, {StepIndex: 2}}))
	require.NoError(t, s.Publish(ctx, []domain.StepSchema{{StepIndex: 1}}))

	got, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestInMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.Publish(ctx, []domain.StepSchema{{StepIndex: 1}}))

	first, err := s.Latest(ctx)
	require.NoError(t, err)
	first[0].StepIndex = 99

	second, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second[0].StepIndex)
}
