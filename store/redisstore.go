// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/wheel-stock/models"
)

const stockKeyPrefix = "wheel:stock:"

// decrementScript is the guarded decrement. Running the check and the
// HINCRBY inside one Lua script keeps the operation atomic on the Redis
// side; -1 signals an exhausted (or absent) counter.
var decrementScript = redis.NewScript(`
local v = tonumber(redis.call('hget', KEYS[1], ARGV[1]))
if v and v > 0 then
    return redis.call('hincrby', KEYS[1], ARGV[1], -1)
end
return -1
`)

// RedisStore implements StockStore on a Redis hash per shop
// (wheel:stock:<shopID>, field = segment id). Intended for deployments
// where claim traffic outgrows the SQL backend.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) key(shopID string) string {
	return stockKeyPrefix + shopID
}

func (s *RedisStore) Remaining(ctx context.Context, shopID string, segmentID int) (int, error) {
	val, err := s.rdb.HGet(ctx, s.key(shopID), strconv.Itoa(segmentID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis hget: %w", err)
	}
	remaining, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt stock value %q: %w", val, err)
	}
	return remaining, nil
}

func (s *RedisStore) ListAvailable(ctx context.Context, shopID string) ([]models.SegmentStock, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(shopID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}

	segments := []models.SegmentStock{}
	for field, val := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("corrupt segment field %q: %w", field, err)
		}
		remaining, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("corrupt stock value %q: %w", val, err)
		}
		if remaining > 0 {
			segments = append(segments, models.SegmentStock{ID: id, Remaining: remaining})
		}
	}

	// Hash iteration order is unspecified; keep reads deterministic.
	sort.Slice(segments, func(i, j int) bool { return segments[i].ID < segments[j].ID })
	return segments, nil
}

func (s *RedisStore) DecrementIfPositive(ctx context.Context, shopID string, segmentID int) (int, error) {
	result, err := decrementScript.Run(ctx, s.rdb, []string{s.key(shopID)}, strconv.Itoa(segmentID)).Result()
	if err != nil {
		return 0, fmt.Errorf("run decrement script: %w", err)
	}

	remaining, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type from decrement script: %T", result)
	}
	if remaining < 0 {
		return 0, ErrOutOfStock
	}
	return int(remaining), nil
}

func (s *RedisStore) SetStock(ctx context.Context, shopID string, segmentID, remaining int) error {
	if err := s.rdb.HSet(ctx, s.key(shopID), strconv.Itoa(segmentID), remaining).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}
