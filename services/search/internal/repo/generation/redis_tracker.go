package generation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "search:generation:"
	keyTTL    = 30 * time.Minute
)

// advanceScript stores ARGV[1] when it is at least the recorded generation and
// returns 1, otherwise leaves the key alone and returns 0.
var advanceScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '-1')
local gen = tonumber(ARGV[1])
if gen < current then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[2])
return 1
`)

// RedisTracker records the newest search generation per caller.
type RedisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTracker(client *redis.Client) *RedisTracker {
	return &RedisTracker{client: client, ttl: keyTTL}
}

func key(caller string) string {
	return keyPrefix + caller
}

func (t *RedisTracker) Advance(ctx context.Context, caller string, gen int64) (bool, error) {
	res, err := advanceScript.Run(ctx, t.client, []string{key(caller)}, gen, int(t.ttl.Seconds())).Int()
	if err != nil {
		return false, fmt.Errorf("failed to advance search generation: %w", err)
	}
	return res == 1, nil
}

func (t *RedisTracker) IsCurrent(ctx context.Context, caller string, gen int64) (bool, error) {
	val, err := t.client.Get(ctx, key(caller)).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read search generation: %w", err)
	}

	current, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt search generation %q: %w", val, err)
	}
	return gen >= current, nil
}
