package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"udyam/internal/domain"
)

const schemaKey = "udyam:schema:latest"

// RedisStore persists the published schema in Redis so multiple server
// instances serve the same document and it survives restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Publish(ctx context.Context, steps []domain.StepSchema) error {
	payload, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	// No TTL: the schema stays valid until the next extraction replaces it.
	if err := s.client.Set(ctx, schemaKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("publish schema: %w", err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context) ([]domain.StepSchema, error) {
	payload, err := s.client.Get(ctx, schemaKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSchema
		}
		return nil, fmt.Errorf("load schema: %w", err)
	}
	var steps []domain.StepSchema
	if err := json.Unmarshal(payload, &steps); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return steps, nil
}
