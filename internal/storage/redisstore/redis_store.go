package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// New keeps every session key in Redis. A non-positive ttl keeps keys forever.
func New(client *redis.Client, ttl time.Duration) storage.Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {

	fullKey := storage.Key(sessionID, key)

	data, err := r.client.Get(ctx, fullKey).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get key %s from redis: %w", fullKey, err)

	}

	return data, nil
}

func (r *redisStore) Set(ctx context.Context, sessionID, key string, value []byte) error {

	fullKey := storage.Key(sessionID, key)

	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}

	if err := r.client.Set(ctx, fullKey, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", fullKey, err)
	}

	return nil

}

func (r *redisStore) Delete(ctx context.Context, sessionID, key string) error {

	fullKey := storage.Key(sessionID, key)

	if err := r.client.Del(ctx, fullKey).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", fullKey, err)
	}

	return nil

}

func (r *redisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close is a no-op; the client is shared with the rate limiter and event broker.
func (r *redisStore) Close() error {
	return nil
}
