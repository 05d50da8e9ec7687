//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(addr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewRedisStore(newRedisClient(t))

	_, err := s.Latest(ctx)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	pattern := "^[0-9]{12}$"
	published := []domain.StepSchema{{
		StepIndex: 1,
		Name:      "aadhaar_verification",
		Fields: []domain.FieldDescriptor{{
			Name:       "aadhaarNumber",
			Label:      "Aadhaar Number",
			Kind:       domain.KindText,
			Required:   true,
			RawPattern: &pattern,
			Category:   domain.CategoryAadhaar,
			Step:       1,
		}},
	}}
	require.NoError(t, s.Publish(ctx, published))

	got, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, published, got)
}
