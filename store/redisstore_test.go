// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redis/go-redis/v9"
)

// setupRedisStore connects to the Redis given by REDIS_ADDR and skips
// the test when none is configured, so the suite stays self-contained.
func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis store tests")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to reach redis at %s: %v", addr, err)
	}

	if err := rdb.Del(ctx, "wheel:stock:shop-redis-test").Err(); err != nil {
		t.Fatalf("Failed to clean test key: %v", err)
	}
	t.Cleanup(func() {
		rdb.Del(context.Background(), "wheel:stock:shop-redis-test")
		rdb.Close()
	})

	return NewRedisStore(rdb)
}

func TestRedisStoreDecrementIfPositive(t *testing.T) {
	st := setupRedisStore(t)
	ctx := context.Background()

	if err := st.SetStock(ctx, "shop-redis-test", 2, 2); err != nil {
		t.Fatalf("SetStock() error = %v", err)
	}

	remaining, err := st.DecrementIfPositive(ctx, "shop-redis-test", 2)
	if err != nil {
		t.Fatalf("DecrementIfPositive() error = %v", err)
	}
	if remaining != 1 {
		t.Errorf("DecrementIfPositive() = %d, want 1", remaining)
	}

	remaining, err = st.DecrementIfPositive(ctx, "shop-redis-test", 2)
	if err != nil {
		t.Fatalf("DecrementIfPositive() error = %v", err)
	}
	if remaining != 0 {
		t.Errorf("DecrementIfPositive() = %d, want 0", remaining)
	}

	_, err = st.DecrementIfPositive(ctx, "shop-redis-test", 2)
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("DecrementIfPositive() on empty counter error = %v, want ErrOutOfStock", err)
	}

	// Absent field behaves like an exhausted one
	_, err = st.DecrementIfPositive(ctx, "shop-redis-test", 99)
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("DecrementIfPositive() on absent field error = %v, want ErrOutOfStock", err)
	}
}

func TestRedisStoreNoOversell(t *testing.T) {
	st := setupRedisStore(t)
	ctx := context.Background()

	const seeded = 5
	const claimers = 50

	if err := st.SetStock(ctx, "shop-redis-test", 3, seeded); err != nil {
		t.Fatalf("SetStock() error = %v", err)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := st.DecrementIfPositive(ctx, "shop-redis-test", 3)
			if err == nil {
				successCount.Add(1)
			} else if !errors.Is(err, ErrOutOfStock) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != seeded {
		t.Errorf("Expected exactly %d successful claims, got %d", seeded, successCount.Load())
	}

	remaining, err := st.Remaining(ctx, "shop-redis-test", 3)
	if err != nil {
		t.Fatalf("Remaining() error = %v", err)
	}
	if remaining != 0 {
		t.Errorf("Remaining() after oversell test = %d, want 0", remaining)
	}
}

func TestRedisStoreListAvailable(t *testing.T) {
	st := setupRedisStore(t)
	ctx := context.Background()

	if err := st.SetStock(ctx, "shop-redis-test", 1, 3); err != nil {
		t.Fatalf("SetStock() error = %v", err)
	}
	if err := st.SetStock(ctx, "shop-redis-test", 2, 0); err != nil {
		t.Fatalf("SetStock() error = %v", err)
	}
	if err := st.SetStock(ctx, "shop-redis-test", 5, 1); err != nil {
		t.Fatalf("SetStock() error = %v", err)
	}

	segments, err := st.ListAvailable(ctx, "shop-redis-test")
	if err != nil {
		t.Fatalf("ListAvailable() error = %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("ListAvailable() returned %d segments, want 2", len(segments))
	}
	if segments[0].ID != 1 || segments[1].ID != 5 {
		t.Errorf("ListAvailable() order = %+v, want ids 1 then 5", segments)
	}
}
