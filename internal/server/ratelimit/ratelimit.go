// Package ratelimit provides per-client request rate limiting using the
// token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults sized for an analysis endpoint: scoring is cheap but
// O(textLength × taxonomySize), so unbounded clients could still hog CPU.
const (
	DefaultCapacity   = 30
	DefaultRefillRate = 10.0 // tokens per second
)

// Info reports the limiter state for response headers
type Info struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// bucket is a token bucket for one client.
// Tokens refill at a steady rate up to the burst capacity.
type bucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

// refill adds tokens for the time elapsed since the last refill
func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// reset estimates when the bucket is full again
func (b *bucket) reset(now time.Time) time.Time {
	missing := float64(b.capacity) - b.tokens
	if missing <= 0 || b.refillRate <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
}

// Limiter tracks a token bucket per client identifier
type Limiter struct {
	capacity   int
	refillRate float64

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter creates a limiter with the given burst capacity and refill rate
// in tokens per second. Non-positive values fall back to the defaults.
func NewLimiter(capacity int, refillRate float64) *Limiter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if refillRate <= 0 {
		refillRate = DefaultRefillRate
	}
	return &Limiter{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*bucket),
	}
}

// Allow consumes one token for clientID if available.
// Returns whether the request is allowed plus the current limiter state.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{
			capacity:   l.capacity,
			refillRate: l.refillRate,
			tokens:     float64(l.capacity),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}

	b.refill(now)

	allowed := false
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	return allowed, Info{
		Limit:     l.capacity,
		Remaining: int(b.tokens),
		Reset:     b.reset(now),
	}
}
