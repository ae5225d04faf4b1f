// Package cooldown serializes narration calls behind a single global
// cooldown window: at most one accepted call per window, across all
// concurrent requests.
package cooldown

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter grants or rejects a narration slot. Acquire must be atomic: two
// concurrent calls inside one window may never both succeed.
type Limiter interface {
	// Acquire claims the slot. When the slot is held, ok is false and
	// retryAfter holds the remaining wait.
	Acquire(ctx context.Context) (ok bool, retryAfter time.Duration, err error)
}

type memoryLimiter struct {
	window time.Duration

	mu       sync.Mutex
	lastCall time.Time
}

// NewMemoryLimiter returns an in-process limiter for single-replica
// deployments.
func NewMemoryLimiter(window time.Duration) Limiter {
	return &memoryLimiter{window: window}
}

func (l *memoryLimiter) Acquire(_ context.Context) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if elapsed := now.Sub(l.lastCall); elapsed < l.window {
		return false, l.window - elapsed, nil
	}
	l.lastCall = now
	return true, 0, nil
}

const redisKey = "kundli:ai_cooldown"

type redisLimiter struct {
	client *redis.Client
	window time.Duration
}

// NewRedisLimiter returns a limiter that claims the slot with SET NX PX,
// serializing the cooldown across replicas.
func NewRedisLimiter(client *redis.Client, window time.Duration) Limiter {
	return &redisLimiter{client: client, window: window}
}

func (l *redisLimiter) Acquire(ctx context.Context) (bool, time.Duration, error) {
	ok, err := l.client.SetNX(ctx, redisKey, time.Now().Unix(), l.window).Result()
	if err != nil {
		return false, 0, err
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		// Slot is held but the remaining wait is unknown; report the
		// full window rather than letting the caller through.
		slog.WarnContext(ctx, "cooldown ttl lookup failed", "error", err)
		return false, l.window, nil
	}
	return false, ttl, nil
}
