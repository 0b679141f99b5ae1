// Package ratelimiter provides a fixed-window rate limiter keyed by caller.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter answers whether a caller may perform one more operation.
type Limiter interface {
	Allow(key string) bool
}

type window struct {
	count int
	start time.Time
}

// RateLimiter allows up to limit operations per key per interval. Counters
// reset when their window expires; stale keys are dropped on the way.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

// NewRateLimiter creates a limiter allowing limit operations per interval
// for each distinct key.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether the key may perform one more operation, counting it
// when allowed. A denied call is not counted against the window.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.sweep(now)
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops windows that expired, bounding memory under churning keys.
// Caller holds the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, key)
		}
	}
}
