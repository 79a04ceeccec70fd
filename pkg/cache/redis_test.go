package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("NewRedisCache() error = %v, want %v", err, ErrNetwork)
	}
}

// TestRedisCache runs against a live server named by BARFLY_TEST_REDIS.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("BARFLY_TEST_REDIS")
	if addr == "" {
		t.Skip("BARFLY_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "barfly-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer c.Close()
	t.Cleanup(func() { _ = c.Clear(ctx) })

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get(empty) = (%v, %v), want miss", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = (%q, %v, %v), want hit", data, hit, err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get() after Clear should miss")
	}
}

func TestRedisKeyPrefix(t *testing.T) {
	c := &RedisCache{prefix: DefaultRedisPrefix}
	if got := c.key("artifact:abc"); got != "barfly:artifact:abc" {
		t.Errorf("key() = %q", got)
	}
}
