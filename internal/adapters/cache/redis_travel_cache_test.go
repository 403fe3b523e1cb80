package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tour-planner-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisTravelCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTravelCache(client, time.Hour)
}

func TestRedisTravelCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 48.8606, Lng: 2.3376}
	to := domain.Coordinates{Lat: 48.8584, Lng: 2.2945}

	if _, ok, err := c.Get(ctx, from, to, domain.ModeWalking); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, from, to, domain.ModeWalking, 38); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	minutes, ok, err := c.Get(ctx, from, to, domain.ModeWalking)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || minutes != 38 {
		t.Fatalf("got %d ok=%v, want 38", minutes, ok)
	}
}

func TestRedisTravelCacheKeyedByMode(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 1, Lng: 2}
	to := domain.Coordinates{Lat: 3, Lng: 4}

	if err := c.Put(ctx, from, to, domain.ModeWalking, 50); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if _, ok, err := c.Get(ctx, from, to, domain.ModeDriving); err != nil || ok {
		t.Fatalf("driving lookup hit the walking entry: ok=%v err=%v", ok, err)
	}
}

func TestMemoryTravelCacheRoundTrip(t *testing.T) {
	c := NewMemoryTravelCache(0, 0)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 1, Lng: 2}
	to := domain.Coordinates{Lat: 3, Lng: 4}

	if _, ok, _ := c.Get(ctx, from, to, domain.ModeTransit); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Put(ctx, from, to, domain.ModeTransit, 12); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	minutes, ok, _ := c.Get(ctx, from, to, domain.ModeTransit)
	if !ok || minutes != 12 {
		t.Fatalf("got %d ok=%v, want 12", minutes, ok)
	}
}
