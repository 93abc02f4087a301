package server

import (
	"sync"
	"time"
)

// rateLimitEntry tracks query rate for a single source IP within a 1-second
// sliding window, adapted from the mDNS source-IP rate limiter.
type rateLimitEntry struct {
	windowStart    time.Time
	cooldownExpiry time.Time
	lastSeen       time.Time
	queryCount     int
}

// RateLimiter bounds how many requests per second a single source address
// may issue before it is dropped with a 429 for a cooldown period.
type RateLimiter struct {
	threshold  int
	cooldown   time.Duration
	maxEntries int

	mu      sync.Mutex
	sources map[string]*rateLimitEntry
}

// NewRateLimiter builds a limiter allowing threshold requests/second per
// source, imposing cooldown once exceeded, tracking at most maxEntries
// distinct sources before evicting the least-recently-seen.
func NewRateLimiter(threshold int, cooldown time.Duration, maxEntries int) *RateLimiter {
	return &RateLimiter{
		threshold:  threshold,
		cooldown:   cooldown,
		maxEntries: maxEntries,
		sources:    make(map[string]*rateLimitEntry),
	}
}

// Allow reports whether a request from source should proceed.
func (rl *RateLimiter) Allow(source string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.sources[source]
	if !exists {
		rl.sources[source] = &rateLimitEntry{windowStart: now, lastSeen: now, queryCount: 1}
		if len(rl.sources) > rl.maxEntries {
			rl.evictLocked()
		}
		return true
	}

	if !entry.cooldownExpiry.IsZero() && now.Before(entry.cooldownExpiry) {
		entry.lastSeen = now
		return false
	}
	if !entry.cooldownExpiry.IsZero() && now.After(entry.cooldownExpiry) {
		entry.cooldownExpiry = time.Time{}
		entry.queryCount = 1
		entry.windowStart = now
		entry.lastSeen = now
		return true
	}
	if now.Sub(entry.windowStart) > time.Second {
		entry.queryCount = 1
		entry.windowStart = now
	} else {
		entry.queryCount++
	}
	entry.lastSeen = now

	if entry.queryCount > rl.threshold {
		entry.cooldownExpiry = now.Add(rl.cooldown)
		return false
	}
	return true
}

// evictLocked drops the oldest-seen tenth of tracked sources. Caller holds rl.mu.
func (rl *RateLimiter) evictLocked() {
	n := rl.maxEntries / 10
	if n == 0 {
		n = 1
	}
	type aged struct {
		source   string
		lastSeen time.Time
	}
	all := make([]aged, 0, len(rl.sources))
	for src, e := range rl.sources {
		all = append(all, aged{src, e.lastSeen})
	}
	for i := 0; i < n && i < len(all); i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].lastSeen.Before(all[oldest].lastSeen) {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
	}
	for i := 0; i < n && i < len(all); i++ {
		delete(rl.sources, all[i].source)
	}
}

// Cleanup drops sources not seen in the last minute; callers run it periodically.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	for src, e := range rl.sources {
		if now.Sub(e.lastSeen) > time.Minute {
			delete(rl.sources, src)
		}
	}
}
