package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, Config{Prefix: "test:", TTL: time.Minute}), mr
}

func TestRedisCacheGetSet(t *testing.T) {
	rc, _ := setupTestRedis(t)
	ctx := context.Background()

	key := Key([]string{"youtube"}, "Track (Official Video)")

	value, ok, err := rc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() = %q, want miss for unknown key", value)
	}

	if err := rc.Set(ctx, key, "Track"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err = rc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() should hit after Set()")
	}
	if value != "Track" {
		t.Errorf("Get() = %q, want %q", value, "Track")
	}
}

func TestRedisCachePrefix(t *testing.T) {
	rc, mr := setupTestRedis(t)
	ctx := context.Background()

	if err := rc.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if !mr.Exists("test:key") {
		t.Error("stored key should carry the configured prefix")
	}
}

func TestRedisCacheExpiry(t *testing.T) {
	rc, mr := setupTestRedis(t)
	ctx := context.Background()

	if err := rc.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, _ := rc.Get(ctx, "key"); ok {
		t.Error("Get() should miss after the TTL has passed")
	}
}

func TestRedisCacheCloseKeepsClient(t *testing.T) {
	rc, _ := setupTestRedis(t)
	ctx := context.Background()

	if err := rc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// the shared client stays usable after Close
	if err := rc.Set(ctx, "key", "value"); err != nil {
		t.Errorf("Set() after Close() error = %v", err)
	}
}
