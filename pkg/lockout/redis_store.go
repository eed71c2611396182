package lockout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces lockout records in a shared Redis instance.
const DefaultKeyPrefix = "authkit:lockout:"

// RedisStore implements Store on top of Redis. Record TTLs are enforced by
// Redis key expiry, so lockout windows hold across process restarts and are
// shared by every instance pointing at the same server.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisOption configures the RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the Redis key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a lockout store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		keyPrefix: DefaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get retrieves the record for a key.
func (s *RedisStore) Get(ctx context.Context, key string) (Record, bool, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, errors.Join(ErrStoreUnavailable, err)
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		// Treat corrupt payloads as absent so the tracker can overwrite them.
		_ = s.client.Del(ctx, s.keyPrefix+key).Err()
		return Record{}, false, nil
	}

	return rec, true, nil
}

// Put stores a record with the given TTL.
func (s *RedisStore) Put(ctx context.Context, key string, rec Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.keyPrefix+key, payload, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record for a key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
