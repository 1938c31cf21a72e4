package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// attemptLimiter tracks recent login failures per client key so credential
// guessing gets throttled without any external store.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{failures: make(map[string][]time.Time)}
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.pruneLocked(key, now, window)) >= limit
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(limiter.pruneLocked(key, now, window), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	threshold := now.Add(-window)
	kept := make([]time.Time, 0, len(limiter.failures[key]))
	for _, failedAt := range limiter.failures[key] {
		if failedAt.After(threshold) {
			kept = append(kept, failedAt)
		}
	}

	if len(kept) == 0 {
		delete(limiter.failures, key)
		return kept
	}
	limiter.failures[key] = kept
	return kept
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}
