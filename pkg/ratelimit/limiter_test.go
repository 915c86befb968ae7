package ratelimit

import (
	"testing"
	"time"
)

// fakeClock provides deterministic time for limiter tests. Sleeping
// advances the clock and records the requested duration.
type fakeClock struct {
	current time.Time
	slept   []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.current = c.current.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func (c *fakeClock) totalSlept() time.Duration {
	var total time.Duration
	for _, d := range c.slept {
		total += d
	}
	return total
}

func TestLimiter_BurstWithinCapacity(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(15, 60*time.Second, clock.now, clock.sleep)

	// A fresh bucket allows an immediate burst of capacity calls.
	for i := 0; i < 15; i++ {
		limiter.Acquire()
	}

	if len(clock.slept) != 0 {
		t.Errorf("Expected no blocking within capacity, slept %v", clock.slept)
	}
}

func TestLimiter_BlocksBeyondCapacity(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(15, 60*time.Second, clock.now, clock.sleep)

	// capacity+1 calls in immediate succession: the last one must block
	// for at least window/capacity.
	for i := 0; i < 16; i++ {
		limiter.Acquire()
	}

	minWait := 60 * time.Second / 15
	if clock.totalSlept() < minWait {
		t.Errorf("Expected at least %v of blocking, got %v", minWait, clock.totalSlept())
	}
}

func TestLimiter_ExactWaitForOneToken(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(15, 60*time.Second, clock.now, clock.sleep)

	// Drain the bucket.
	for i := 0; i < 15; i++ {
		limiter.Acquire()
	}

	// With zero tokens the wait is (1 - 0) x (window/capacity) = 4s.
	limiter.Acquire()
	if len(clock.slept) != 1 {
		t.Fatalf("Expected exactly one sleep, got %d", len(clock.slept))
	}
	if clock.slept[0] != 4*time.Second {
		t.Errorf("Expected 4s wait, got %v", clock.slept[0])
	}
}

func TestLimiter_PartialRefillShortensWait(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(15, 60*time.Second, clock.now, clock.sleep)

	for i := 0; i < 15; i++ {
		limiter.Acquire()
	}

	// Half a token accrues in 2s at 15 tokens/60s; the deficit wait is
	// (1 - 0.5) x 4s = 2s.
	clock.advance(2 * time.Second)
	limiter.Acquire()

	if len(clock.slept) != 1 {
		t.Fatalf("Expected exactly one sleep, got %d", len(clock.slept))
	}
	if clock.slept[0] != 2*time.Second {
		t.Errorf("Expected 2s wait, got %v", clock.slept[0])
	}
}

func TestLimiter_RefillCappedAtCapacity(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(15, 60*time.Second, clock.now, clock.sleep)

	// Idle far longer than a full window: tokens cap at capacity.
	clock.advance(10 * time.Minute)
	if remaining := limiter.Remaining(); remaining != 15 {
		t.Errorf("Expected tokens capped at 15, got %v", remaining)
	}
}

func TestLimiter_DefaultsApplied(t *testing.T) {
	limiter := New(0, 0)

	if limiter.capacity != DefaultMaxRequests {
		t.Errorf("Expected default capacity %d, got %v", DefaultMaxRequests, limiter.capacity)
	}
	if limiter.window != DefaultTimeWindow {
		t.Errorf("Expected default window %v, got %v", DefaultTimeWindow, limiter.window)
	}
}
