package repository

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/pkg/redis"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository implements SessionRepository on Redis. Sessions
// expire via key TTL; logout deletes the key so a stolen JWT dies with it.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new RedisSessionRepository
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Create stores a session for a user with the given TTL
func (r *RedisSessionRepository) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

// Get returns the user ID for a session
func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	return userID, nil
}

// Delete revokes a session
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
