package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "quickbird:session:" // quickbird:session:{key}
	sessionTTL       = 7 * 24 * time.Hour   // matches the 7-day cookie expiry of the web client
)

// RedisStorage persists session state in Redis, for setups where several
// tools on one machine share a login.
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStorage creates a store backed by the given Redis client.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *RedisStorage) key(key string) string {
	return sessionKeyPrefix + key
}

func (r *RedisStorage) Get(key string) (string, error) {
	data, err := r.client.Get(r.ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisStorage) Set(key, value string) error {
	if err := r.client.Set(r.ctx, r.key(key), value, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStorage) Delete(key string) error {
	n, err := r.client.Del(r.ctx, r.key(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
