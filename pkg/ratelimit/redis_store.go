package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for an atomic fixed-window check. Unlike a plain INCR-based
// limiter it never advances the counter past the limit, so rejected
// requests leave the window untouched.
// KEYS[1] = counter key
// ARGV[1] = window TTL in seconds
// ARGV[2] = max requests per window
// Returns: [allowed(0|1), count, ttl_remaining]
const checkAndRecordScript = `
local max = tonumber(ARGV[2])
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
if count >= max then
    return {0, count, redis.call('TTL', KEYS[1])}
end
count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {1, count, redis.call('TTL', KEYS[1])}
`

// RedisStore is the shared-counter backend for multi-instance deployments.
// Window expiry is delegated to key TTLs, which doubles as the eviction
// sweep the in-memory store needs a goroutine for.
type RedisStore struct {
	client    *goredis.Client
	cfg       Config
	keyPrefix string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *goredis.Client, cfg Config) *RedisStore {
	return &RedisStore{
		client:    client,
		cfg:       cfg,
		keyPrefix: "rl:contact:",
	}
}

// CheckAndRecord implements Store. The Lua script runs atomically on the
// Redis side, satisfying the per-key serialization requirement across
// processes.
func (rs *RedisStore) CheckAndRecord(ctx context.Context, key string) (Result, error) {
	ttlSeconds := int(rs.cfg.Window.Seconds())

	raw, err := rs.client.Eval(ctx, checkAndRecordScript, []string{rs.keyPrefix + key}, ttlSeconds, rs.cfg.Max).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit eval failed: %w", err)
	}

	arr, ok := raw.([]interface{})
	if !ok || len(arr) < 3 {
		return Result{}, fmt.Errorf("unexpected redis result format")
	}

	allowed, _ := arr[0].(int64)
	count, _ := arr[1].(int64)
	ttl, _ := arr[2].(int64)
	if ttl < 0 {
		ttl = int64(ttlSeconds)
	}

	remaining := rs.cfg.Max - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   allowed == 1,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}
