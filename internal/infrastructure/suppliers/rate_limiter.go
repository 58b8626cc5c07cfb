package suppliers

import (
	"context"
	"sync"
	"time"
)

// defaultPollInterval bounds the sleep-and-recheck loop in Acquire.
const defaultPollInterval = 50 * time.Millisecond

// RateLimiter enforces a provider's request quota with two fixed-window token
// counters, one per minute and one per hour. Each counter refills to full when
// its window elapses, measured from the last refill time. Fixed windows permit
// up to a 2x burst across a window boundary. That is intentional: supplier
// quotas are themselves approximate, and the fixed-window allowance is part of
// the limiter's contract.
//
// A RateLimiter is safe for concurrent use; token state is the only shared
// mutable resource and is guarded by a single mutex held just for the
// decrement, never across a network call.
type RateLimiter struct {
	mu sync.Mutex

	perMinute int
	perHour   int

	minuteTokens int
	hourTokens   int
	minuteReset  time.Time
	hourReset    time.Time

	pollInterval time.Duration
	now          func() time.Time
}

// NewRateLimiter creates a limiter with the given per-minute and per-hour
// budgets. Non-positive budgets fall back to permissive defaults.
func NewRateLimiter(perMinute, perHour int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if perHour <= 0 {
		perHour = 1000
	}
	now := time.Now()
	return &RateLimiter{
		perMinute:    perMinute,
		perHour:      perHour,
		minuteTokens: perMinute,
		hourTokens:   perHour,
		minuteReset:  now,
		hourReset:    now,
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
}

// Acquire blocks until both windows have at least one token, then decrements
// both atomically. Blocking is a bounded sleep-and-recheck, cancelled promptly
// when ctx is done.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	for {
		if l.TryAcquire() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.pollInterval):
		}
	}
}

// TryAcquire attempts to take one token from both windows without blocking.
func (l *RateLimiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.minuteReset) >= time.Minute {
		l.minuteTokens = l.perMinute
		l.minuteReset = now
	}
	if now.Sub(l.hourReset) >= time.Hour {
		l.hourTokens = l.perHour
		l.hourReset = now
	}

	if l.minuteTokens <= 0 || l.hourTokens <= 0 {
		return false
	}
	l.minuteTokens--
	l.hourTokens--
	return true
}

// Remaining reports the tokens left in the current minute and hour windows.
func (l *RateLimiter) Remaining() (minute, hour int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minuteTokens, l.hourTokens
}
