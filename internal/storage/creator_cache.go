package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creator-tips/internal/models"
)

const topCreatorsKeyPrefix = "creators:top:"

// CreatorCache caches the top-creators leaderboard in Redis. The
// leaderboard is read on every frame load but only changes when a tip
// lands, so a short TTL plus write-time invalidation keeps it cheap.
type CreatorCache struct {
	redis *RedisCache
	ttl   time.Duration
}

// NewCreatorCache creates a creator cache with the given TTL.
func NewCreatorCache(redisCache *RedisCache, ttl time.Duration) *CreatorCache {
	return &CreatorCache{redis: redisCache, ttl: ttl}
}

// GetTop returns the cached leaderboard for a limit, or (nil, false) on a
// cache miss.
func (c *CreatorCache) GetTop(ctx context.Context, limit int) ([]*models.Creator, bool, error) {
	data, err := c.redis.Get(ctx, c.key(limit))
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read top creators cache: %w", err)
	}

	var creators []*models.Creator
	if err := json.Unmarshal([]byte(data), &creators); err != nil {
		return nil, false, fmt.Errorf("failed to decode top creators cache: %w", err)
	}

	return creators, true, nil
}

// SetTop stores the leaderboard for a limit.
func (c *CreatorCache) SetTop(ctx context.Context, limit int, creators []*models.Creator) error {
	data, err := json.Marshal(creators)
	if err != nil {
		return fmt.Errorf("failed to encode top creators: %w", err)
	}

	return c.redis.Set(ctx, c.key(limit), data, c.ttl)
}

// Invalidate drops every cached leaderboard. Called after any write that
// changes creator totals.
func (c *CreatorCache) Invalidate(ctx context.Context) error {
	keys, err := c.redis.Keys(ctx, topCreatorsKeyPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to list top creators cache keys: %w", err)
	}

	return c.redis.Del(ctx, keys...)
}

func (c *CreatorCache) key(limit int) string {
	return fmt.Sprintf("%s%d", topCreatorsKeyPrefix, limit)
}
