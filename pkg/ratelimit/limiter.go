package ratelimit

import (
	"log/slog"
	"sync"
	"time"
)

// Default limits match the free-tier quota of the analysis providers the
// engine ships with: 15 requests per 60 seconds.
const (
	DefaultMaxRequests = 15
	DefaultTimeWindow  = 60 * time.Second
)

// Limiter is a blocking token-bucket rate limiter with continuous refill.
//
// Tokens are tracked fractionally: elapsed/window x capacity tokens
// accrue per refill, capped at capacity. The bucket starts full, so a
// fresh limiter allows an immediate burst of capacity calls.
type Limiter struct {
	capacity   float64       // Maximum tokens in the bucket
	window     time.Duration // Time for a full refill
	tokens     float64       // Current available tokens (fractional)
	lastRefill time.Time     // Last time tokens were refilled

	// now and sleep are injectable for deterministic tests.
	now   func() time.Time
	sleep func(time.Duration)

	mu sync.Mutex
}

// New creates a limiter allowing maxRequests calls per window. Values
// of zero or less fall back to the defaults.
func New(maxRequests int, window time.Duration) *Limiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultTimeWindow
	}

	l := &Limiter{
		capacity: float64(maxRequests),
		window:   window,
		tokens:   float64(maxRequests), // Start with a full bucket
		now:      time.Now,
		sleep:    time.Sleep,
	}
	l.lastRefill = l.now()

	slog.Debug("rate limiter initialized",
		"max_requests", maxRequests,
		"window", window,
	)
	return l
}

// NewWithClock creates a limiter with injected time primitives. Tests use
// this to verify blocking behavior without real sleeps.
func NewWithClock(maxRequests int, window time.Duration, now func() time.Time, sleep func(time.Duration)) *Limiter {
	l := New(maxRequests, window)
	l.now = now
	l.sleep = sleep
	l.lastRefill = now()
	return l
}

// Acquire consumes one token, blocking until one is available.
//
// The wait, when needed, is exactly (1 - tokens) x (window / capacity):
// the time for the deficit to refill. After the sleep the token count is
// set to one and then deducted, leaving the bucket empty.
func (l *Limiter) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()

	if l.tokens < 1 {
		wait := time.Duration((1 - l.tokens) * float64(l.window) / l.capacity)
		slog.Warn("rate limit reached, waiting", "wait", wait)
		l.sleep(wait)
		l.tokens = 1
		l.lastRefill = l.now()
	}

	l.tokens--
	slog.Debug("rate limit token acquired", "tokens_remaining", l.tokens)
}

// Remaining returns the current token count after a refill. Intended for
// logging and tests.
func (l *Limiter) Remaining() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	return l.tokens
}

// refillLocked accrues tokens proportionally to elapsed time since the
// last refill, capped at capacity. Caller must hold the lock.
func (l *Limiter) refillLocked() {
	now := l.now()
	elapsed := now.Sub(l.lastRefill)
	if elapsed <= 0 {
		return
	}

	l.tokens += elapsed.Seconds() / l.window.Seconds() * l.capacity
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}
	l.lastRefill = now
}
