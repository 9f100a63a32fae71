// Package throttle limits how often an OTP can be re-sent to the same phone.
package throttle

import (
	"context"
	"fmt"
	"time"

	"realty-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow reports whether key may proceed, and starts its cooldown if so.
	Allow(ctx context.Context, key string) (bool, error)
}

func OTPKey(mobile, purpose string) string {
	return fmt.Sprintf("otp:cooldown:%s:%s", mobile, purpose)
}

// Noop never throttles. Used when Redis is not configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, error) {
	return true, nil
}

type RedisLimiter struct {
	client   redis.UniversalClient
	cooldown time.Duration
}

func NewRedisLimiter(client redis.UniversalClient, cooldown time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, cooldown: cooldown}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, 1, l.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("throttle %s: %w", key, err)
	}
	return ok, nil
}

// Connect opens and pings a Redis client.
func Connect(ctx context.Context, cfg utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// New returns a Redis backed limiter when an address is configured, otherwise
// Noop. The returned close func is always safe to call.
func New(ctx context.Context, cfg utils.RedisConfig, cooldown time.Duration) (Limiter, func() error, error) {
	if cfg.Addr == "" || cooldown <= 0 {
		return Noop{}, func() error { return nil }, nil
	}
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisLimiter(client, cooldown), client.Close, nil
}
