package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
)

const (
	emailKeyPrefix   = "orderfront:session:email:"
	refreshKeyPrefix = "orderfront:session:refresh:"
	refreshSentinel  = "1"
)

// RedisStore keeps session keys in Redis so view sessions survive process
// restarts and can be shared between replicas. Expiry is delegated to key
// TTLs; no sweeping is needed.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

// SetEmail binds the email under the session TTL.
func (s *RedisStore) SetEmail(ctx context.Context, id, email string) error {
	return s.client.Set(ctx, emailKeyPrefix+id, email, s.ttl).Err()
}

// Email returns the bound email, refreshing the TTL on hit.
func (s *RedisStore) Email(ctx context.Context, id string) (string, error) {
	email, err := s.client.GetEx(ctx, emailKeyPrefix+id, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", domainErrors.ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// MarkRefresh sets the one-shot refresh sentinel.
func (s *RedisStore) MarkRefresh(ctx context.Context, id string) error {
	return s.client.Set(ctx, refreshKeyPrefix+id, refreshSentinel, s.ttl).Err()
}

// ConsumeRefresh reads and deletes the sentinel atomically.
func (s *RedisStore) ConsumeRefresh(ctx context.Context, id string) (bool, error) {
	value, err := s.client.GetDel(ctx, refreshKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == refreshSentinel, nil
}

// Clear forgets everything bound to the session.
func (s *RedisStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, emailKeyPrefix+id, refreshKeyPrefix+id).Err()
}
