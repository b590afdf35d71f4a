package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/liquex/liquex/internal/pkg/database"
)

// keyVerificationCode is the Redis key template for pending codes
const keyVerificationCode = "request:verification:%s"

// RedisCodeStore holds pending verification codes in Redis with a TTL, so a
// multi-node deployment shares them
type RedisCodeStore struct {
	client *database.RedisClient
}

// NewRedisCodeStore creates a Redis-backed code store
func NewRedisCodeStore(client *database.RedisClient) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

// Put stores a code for a request id with the given time to live
func (s *RedisCodeStore) Put(ctx context.Context, requestID, code string, ttl time.Duration) error {
	key := fmt.Sprintf(keyVerificationCode, requestID)
	if err := s.client.Set(ctx, key, code, ttl); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return nil
}

// Get returns the pending code, or "" when none is stored or it expired
func (s *RedisCodeStore) Get(ctx context.Context, requestID string) (string, error) {
	key := fmt.Sprintf(keyVerificationCode, requestID)
	code, err := s.client.Get(ctx, key)
	if err != nil {
		// An expired or never-issued code is not an error
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get verification code: %w", err)
	}
	return code, nil
}

// Delete removes the pending code for a request id
func (s *RedisCodeStore) Delete(ctx context.Context, requestID string) error {
	key := fmt.Sprintf(keyVerificationCode, requestID)
	if err := s.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}
