package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session values in redis so several CLI hosts can share
// one login.
type RedisStore struct {
	rc     *redis.Client
	prefix string
}

// NewRedisStore creates a store from connection options.
func NewRedisStore(c *Redis) *RedisStore {
	rc := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Username: c.Username,
		Password: c.Password,
		DB:       c.DB,
	})
	return NewRedisStoreWithClient(rc, c.Prefix)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(rc *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rc: rc, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	result, err := s.rc.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return result, nil
}

// Set writes all values with a single MSET.
func (s *RedisStore) Set(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	pairs := make([]any, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, s.key(k), v)
	}
	if err := s.rc.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("failed to set keys: %w", err)
	}
	return nil
}

// Delete removes all keys with a single DEL.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.rc.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.rc.Close()
}
