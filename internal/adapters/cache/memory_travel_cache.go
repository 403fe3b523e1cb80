package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tour-planner-service/internal/domain"
)

const (
	defaultMemoryCacheSize = 4096
	defaultMemoryCacheTTL  = 24 * time.Hour
)

// MemoryTravelCache is a process-wide expirable LRU of travel estimates.
// It is the default cache when no Redis address is configured.
type MemoryTravelCache struct {
	lru *expirable.LRU[string, int]
}

func NewMemoryTravelCache(size int, ttl time.Duration) *MemoryTravelCache {
	if size <= 0 {
		size = defaultMemoryCacheSize
	}
	if ttl <= 0 {
		ttl = defaultMemoryCacheTTL
	}

	return &MemoryTravelCache{
		lru: expirable.NewLRU[string, int](size, nil, ttl),
	}
}

func (c *MemoryTravelCache) Get(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (int, bool, error) {
	minutes, ok := c.lru.Get(pairKey(from, to, mode))
	return minutes, ok, nil
}

func (c *MemoryTravelCache) Put(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode, minutes int) error {
	c.lru.Add(pairKey(from, to, mode), minutes)
	return nil
}
