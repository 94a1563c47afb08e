package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkpress/blog-api/internal/core/domain"
)

const defaultPostTTL = 5 * time.Minute

// PostCache keeps JSON-encoded posts in Redis.
// Key format: post:<id>
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a PostCache wrapping the given Redis client. A
// non-positive ttl falls back to defaultPostTTL.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = defaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// Get returns the cached post and whether it was present.
func (c *PostCache) Get(ctx context.Context, id string) (*domain.Post, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("post cache get: %w", err)
	}

	var p domain.Post
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("post cache decode: %w", err)
	}
	return &p, true, nil
}

func (c *PostCache) Set(ctx context.Context, p *domain.Post) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("post cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(p.ID), raw, c.ttl).Err()
}

func (c *PostCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *PostCache) key(id string) string {
	return "post:" + id
}
