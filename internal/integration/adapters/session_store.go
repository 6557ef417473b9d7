package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// sessionKeyPrefix namespaces session keys in Redis.
const sessionKeyPrefix = "session:"

// redisSessionStore implements the adapter.SessionStore interface backed
// by Redis, so sessions survive process restarts and logout revokes
// immediately.
type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new Redis-backed session store.
func NewRedisSessionStore(client *redis.Client) adapter.SessionStore {
	return &redisSessionStore{
		client: client,
	}
}

// Save registers a session with a TTL.
func (s *redisSessionStore) Save(ctx context.Context, sessionID string, userType adapter.UserType, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, string(userType), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get returns the user type of a registered session.
func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (adapter.UserType, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domainerror.ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return adapter.UserType(value), nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
