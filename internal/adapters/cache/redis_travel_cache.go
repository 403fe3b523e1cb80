package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tour-planner-service/internal/domain"
)

// RedisTravelCache shares travel estimates across processes.
// A zero TTL disables expiry.
type RedisTravelCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisTravelCache(client *redis.Client, ttl time.Duration) *RedisTravelCache {
	return &RedisTravelCache{redis: client, ttl: ttl}
}

func (c *RedisTravelCache) Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (int, bool, error) {
	minutes, err := c.redis.Get(ctx, pairKey(from, to, mode)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis get travel estimate: %w", err)
	}

	return minutes, true, nil
}

func (c *RedisTravelCache) Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, minutes int) error {
	if err := c.redis.Set(ctx, pairKey(from, to, mode), minutes, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set travel estimate: %w", err)
	}

	return nil
}
