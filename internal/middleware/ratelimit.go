package middleware

import (
	"context"
	"sync"
	"time"
)

const (
	maxEntries      = 10000
	cleanupInterval = time.Minute
)

// Limiter counts hits per key inside a sliding window.
// Allow reports whether the hit fits under limit and when the window frees up.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, resetAt time.Time)
}

type rateLimitEntry struct {
	timestamps []time.Time
	lastAccess time.Time
	window     time.Duration
}

// MemoryRateLimiter is the per-process fallback used when Redis is not configured.
type MemoryRateLimiter struct {
	mu          sync.Mutex
	store       map[string]*rateLimitEntry
	lastCleanup time.Time
	now         func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		store:       make(map[string]*rateLimitEntry),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *MemoryRateLimiter) cleanup(now time.Time) {
	if now.Sub(rl.lastCleanup) < cleanupInterval {
		return
	}
	rl.lastCleanup = now

	for key, entry := range rl.store {
		if now.Sub(entry.lastAccess) > entry.window {
			delete(rl.store, key)
		}
	}

	if len(rl.store) > maxEntries {
		oldest := make([]string, 0, len(rl.store)/5)
		for key := range rl.store {
			oldest = append(oldest, key)
			if len(oldest) >= len(rl.store)/5 {
				break
			}
		}
		for _, key := range oldest {
			delete(rl.store, key)
		}
	}
}

func (rl *MemoryRateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.cleanup(now)

	windowStart := now.Add(-window)

	entry, exists := rl.store[key]
	if !exists {
		entry = &rateLimitEntry{timestamps: make([]time.Time, 0, limit)}
		rl.store[key] = entry
	}
	entry.lastAccess = now
	entry.window = window

	filtered := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(windowStart) {
			filtered = append(filtered, ts)
		}
	}
	entry.timestamps = filtered

	if len(entry.timestamps) >= limit {
		return false, entry.timestamps[0].Add(window)
	}

	entry.timestamps = append(entry.timestamps, now)
	return true, now.Add(window)
}
