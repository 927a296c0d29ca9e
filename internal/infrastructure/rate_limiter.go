package infrastructure

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window per-key limiter, used to throttle reset
// email requests per address so the notifier cannot be used to flood an
// inbox.
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
	}

	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.window)

	valid := rl.requests[key][:0]
	for _, reqTime := range rl.requests[key] {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, requests := range rl.requests {
			stale := true
			for _, reqTime := range requests {
				if reqTime.After(cutoff) {
					stale = false
					break
				}
			}
			if stale {
				delete(rl.requests, key)
			}
		}
		rl.mutex.Unlock()
	}
}
