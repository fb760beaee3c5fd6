package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ResultCache implements ports.ResultCache using Redis.
type ResultCache struct {
	client *goredis.Client
	prefix string
}

// NewResultCache creates a Redis-backed action result cache.
func NewResultCache(client *goredis.Client) *ResultCache {
	return &ResultCache{
		client: client,
		prefix: "dispatch:result:",
	}
}

// Set stores a handler result under the action id with TTL.
func (c *ResultCache) Set(ctx context.Context, actionID string, result []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+actionID, result, ttl).Err(); err != nil {
		return fmt.Errorf("redis result set: %w", err)
	}
	return nil
}

// Get retrieves a cached result by action id.
// Returns nil, nil if the key does not exist or has expired.
func (c *ResultCache) Get(ctx context.Context, actionID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+actionID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis result get: %w", err)
	}
	return val, nil
}
