// Package ratelimit caps how many reports a client may submit per window.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Count      int64
	RetryAfter time.Duration
}

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Disabled allows everything.
type Disabled struct{}

// Allow always allows.
func (Disabled) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}

// RedisLimiter keeps one INCR counter per key with a TTL equal to the window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter builds a Redis backed limiter.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

// Allow increments the key's counter, starting the window on the first hit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := l.prefix + ":" + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, err
		}
	}
	if count <= l.limit {
		return Decision{Allowed: true, Count: count}, nil
	}
	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, err
	}
	return Decision{Allowed: false, Count: count, RetryAfter: ttl}, nil
}

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter is the in-process fallback when Redis is not configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int64
	window  time.Duration
	now     func() time.Time
	windows map[string]*window
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(limit int, win time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   int64(limit),
		window:  win,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow counts a hit for key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &window{resetAt: now.Add(l.window)}
		l.windows[key] = w
	}
	w.count++
	if w.count <= l.limit {
		return Decision{Allowed: true, Count: w.count}, nil
	}
	return Decision{Allowed: false, Count: w.count, RetryAfter: w.resetAt.Sub(now)}, nil
}

// sweep drops expired windows. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// tracked returns how many keys currently hold a window.
func (l *MemoryLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
