// Package ratelimit provides per-client token bucket rate limiting for the
// scoring API.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is one client's token bucket. Tokens refill continuously at
// refillRate per second up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) take(now time.Time) (allowed bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	secondsToFull := (b.capacity - b.tokens) / b.refillRate
	return allowed, int(b.tokens), now.Add(time.Duration(secondsToFull * float64(time.Second)))
}

// Info reports a client's limit state after a check.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter tracks one token bucket per client id. Idle buckets are evicted
// by a background sweep so the map does not grow with every IP ever seen.
type Limiter struct {
	cfg Config

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	stop chan struct{}
	once sync.Once
}

// NewLimiter creates a Limiter and starts its cleanup sweep.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:        cfg,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}
	if cfg.Enabled {
		go l.sweep()
	}
	return l
}

// Allow records one request for clientID and reports whether it is within
// the limit.
func (l *Limiter) Allow(clientID string) Info {
	if !l.cfg.Enabled {
		return Info{Allowed: true}
	}

	now := time.Now()

	l.mu.Lock()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{
			capacity:   float64(l.cfg.Burst),
			refillRate: float64(l.cfg.RequestsPerMinute) / 60,
			tokens:     float64(l.cfg.Burst),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}
	l.lastAccess[clientID] = now
	l.mu.Unlock()

	allowed, remaining, resetAt := b.take(now)
	return Info{
		Allowed:   allowed,
		Limit:     l.cfg.RequestsPerMinute,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

// Stop ends the cleanup sweep.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-l.cfg.CleanupInterval)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
