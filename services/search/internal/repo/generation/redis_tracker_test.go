package generation

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisTracker_NewerGenerationSupersedes(t *testing.T) {
	client := newTestClient(t)
	tracker := NewRedisTracker(client)
	ctx := context.Background()
	caller := "test-" + uuid.New().String()
	t.Cleanup(func() { client.Del(ctx, key(caller)) })

	ok, err := tracker.Advance(ctx, caller, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tracker.Advance(ctx, caller, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	current, err := tracker.IsCurrent(ctx, caller, 1)
	require.NoError(t, err)
	assert.False(t, current)

	ok, err = tracker.Advance(ctx, caller, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err = tracker.IsCurrent(ctx, caller, 2)
	require.NoError(t, err)
	assert.True(t, current)

	ttl, err := client.TTL(ctx, key(caller)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisTracker_UnknownCallerIsCurrent(t *testing.T) {
	tracker := NewRedisTracker(newTestClient(t))

	current, err := tracker.IsCurrent(context.Background(), "test-"+uuid.New().String(), 7)
	require.NoError(t, err)
	assert.True(t, current)
}
