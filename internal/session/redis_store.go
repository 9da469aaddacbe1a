package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore is a Redis-backed session store. Expiry is enforced by the key
// TTL, so an expired token is simply absent on lookup.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(token string) string {
	return keyPrefix + token
}

// Create stores the session under its token with a TTL derived from ExpiresAt.
func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.Token == "" {
		return fmt.Errorf("session: missing token")
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	return r.client.Set(ctx, key(s.Token), data, ttl).Err()
}

// Get resolves a token. A missing or expired key yields (nil, nil).
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &s, nil
}

// Delete destroys a session. Unlike the read cache, errors are reported: the
// caller must know whether logout actually happened.
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, key(token)).Err()
}
