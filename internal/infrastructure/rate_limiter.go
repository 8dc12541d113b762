package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// WindowCounter counts hits per key within a fixed window. Implementations
// back the per-subject create-post throttle.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisWindowCounter shares the window across replicas through Redis.
type RedisWindowCounter struct {
	client *redis.Client
}

func NewRedisWindowCounter(client *redis.Client) *RedisWindowCounter {
	return &RedisWindowCounter{client: client}
}

func (c *RedisWindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// First hit opens the window.
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// MemoryWindowCounter is the single-process fallback used when no Redis
// address is configured.
type MemoryWindowCounter struct {
	mutex   sync.Mutex
	counts  map[string]int64
	resetAt map[string]time.Time
}

func NewMemoryWindowCounter() *MemoryWindowCounter {
	return &MemoryWindowCounter{
		counts:  make(map[string]int64),
		resetAt: make(map[string]time.Time),
	}
}

func (c *MemoryWindowCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	if reset, ok := c.resetAt[key]; !ok || now.After(reset) {
		c.counts[key] = 0
		c.resetAt[key] = now.Add(window)
	}

	c.counts[key]++
	return c.counts[key], nil
}

// RateLimiter answers whether a caller identified by key may proceed.
type RateLimiter struct {
	counter WindowCounter
	window  time.Duration
	limit   int
}

func NewRateLimiter(counter WindowCounter, window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		window:  window,
		limit:   limit,
	}
}

// Allow reports whether the caller is under the limit. Counter failures
// fail open.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := rl.counter.Incr(ctx, "ratelimit:"+key, rl.window)
	if err != nil {
		return true
	}
	return count <= int64(rl.limit)
}
