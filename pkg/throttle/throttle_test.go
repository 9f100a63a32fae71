package throttle

import (
	"context"
	"testing"
	"time"

	"realty-backend/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiterCooldown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	l := NewRedisLimiter(client, 30*time.Second)
	key := OTPKey("9876543210", "login")

	ok, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// other purpose has its own window
	ok, err = l.Allow(ctx, OTPKey("9876543210", "contact"))
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(31 * time.Second)
	ok, err = l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiterError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisLimiter(client, time.Second).Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewWithoutAddrIsNoop(t *testing.T) {
	l, closeFn, err := New(context.Background(), utils.RedisConfig{}, 30*time.Second)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, l)
	assert.NoError(t, closeFn())

	ok, err := l.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewConnectsToRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	l, closeFn, err := New(context.Background(), utils.RedisConfig{Addr: mr.Addr()}, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	assert.IsType(t, &RedisLimiter{}, l)
}
