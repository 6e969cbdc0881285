package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache is a Redis tier for raw file bytes, shared across catalog
// sessions and across process restarts. A nil *ContentCache is valid and
// caches nothing, so callers never need to branch on whether the tier is
// configured. Cache failures are logged and degrade to origin reads.
type ContentCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewContentCache connects to Redis and verifies the connection.
func NewContentCache(redisURL string, ttl time.Duration) (*ContentCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &ContentCache{client: client, prefix: "content:", ttl: ttl}, nil
}

// NewContentCacheWithClient builds a cache from an existing Redis client.
func NewContentCacheWithClient(client *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{client: client, prefix: "content:", ttl: ttl}
}

func (c *ContentCache) key(path string) string {
	return c.prefix + path
}

// Lookup returns the cached bytes for path, if present.
func (c *ContentCache) Lookup(ctx context.Context, path string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("content cache: get %s: %v", path, err)
		return nil, false
	}
	return data, true
}

// Store caches the bytes for path with the configured TTL.
func (c *ContentCache) Store(ctx context.Context, path string, data []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, c.key(path), data, c.ttl).Err(); err != nil {
		log.Printf("content cache: set %s: %v", path, err)
	}
}

// Ping checks if Redis is reachable.
func (c *ContentCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *ContentCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
