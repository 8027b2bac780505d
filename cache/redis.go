package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed cache. Expiry is handled by Redis key TTLs.
type RedisCache struct {
	client *redis.Client
	config Config
}

// NewRedis creates a Redis cache using the provided client. The client is
// owned by the caller; Close does not close it, so a client may be shared
// with other components such as the rate limiter.
func NewRedis(client *redis.Client, config Config) *RedisCache {
	return &RedisCache{
		client: client,
		config: applyDefaults(config),
	}
}

// Get retrieves a value from Redis.
func (rc *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rc.client.Get(ctx, rc.makeKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return value, true, nil
}

// Set stores a value in Redis with the configured TTL.
func (rc *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := rc.client.Set(ctx, rc.makeKey(key), value, rc.config.TTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Close is a no-op; the Redis client belongs to the caller.
func (rc *RedisCache) Close() error {
	return nil
}

// makeKey prepends the configured prefix.
func (rc *RedisCache) makeKey(key string) string {
	return rc.config.Prefix + key
}
