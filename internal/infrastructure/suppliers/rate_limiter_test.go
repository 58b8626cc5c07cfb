package suppliers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_MinuteBudget(t *testing.T) {
	l := NewRateLimiter(3, 100)

	for i := 0; i < 3; i++ {
		assert.True(t, l.TryAcquire(), "request %d within budget", i+1)
	}
	assert.False(t, l.TryAcquire(), "budget exhausted")

	minute, hour := l.Remaining()
	assert.Equal(t, 0, minute)
	assert.Equal(t, 97, hour)
}

func TestRateLimiter_HourBudgetBindsFirst(t *testing.T) {
	l := NewRateLimiter(100, 2)

	assert.True(t, l.TryAcquire())
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire(), "hour budget exhausted before minute budget")
}

func TestRateLimiter_MinuteWindowRefills(t *testing.T) {
	start := time.Now()
	current := start

	l := NewRateLimiter(2, 100)
	l.now = func() time.Time { return current }

	assert.True(t, l.TryAcquire())
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire())

	// Just short of the window boundary: still exhausted.
	current = start.Add(time.Minute - time.Millisecond)
	assert.False(t, l.TryAcquire())

	// Window elapsed: the counter refills to full.
	current = start.Add(time.Minute)
	assert.True(t, l.TryAcquire())
	assert.True(t, l.TryAcquire())
	assert.False(t, l.TryAcquire())
}

func TestRateLimiter_BoundaryBurstIsPermitted(t *testing.T) {
	start := time.Now()
	current := start

	l := NewRateLimiter(5, 100)
	l.now = func() time.Time { return current }

	// Drain the full budget at the end of one window, then the full budget at
	// the start of the next: 2x the per-minute rate across the boundary is the
	// documented fixed-window allowance.
	for i := 0; i < 5; i++ {
		require.True(t, l.TryAcquire())
	}
	current = start.Add(time.Minute + time.Millisecond)
	for i := 0; i < 5; i++ {
		assert.True(t, l.TryAcquire(), "burst request %d after boundary", i+1)
	}
	assert.False(t, l.TryAcquire())
}

func TestRateLimiter_HourWindowOutlivesMinuteRefills(t *testing.T) {
	start := time.Now()
	current := start

	l := NewRateLimiter(10, 3)
	l.now = func() time.Time { return current }

	require.True(t, l.TryAcquire())
	require.True(t, l.TryAcquire())
	require.True(t, l.TryAcquire())

	// A minute refill does not touch the exhausted hour counter.
	current = start.Add(2 * time.Minute)
	assert.False(t, l.TryAcquire())

	current = start.Add(time.Hour)
	assert.True(t, l.TryAcquire())
}

func TestRateLimiter_AcquireBlocksUntilRefill(t *testing.T) {
	start := time.Now()

	var mu sync.Mutex
	current := start

	l := NewRateLimiter(1, 100)
	l.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	l.pollInterval = time.Millisecond

	require.True(t, l.TryAcquire())

	// Refill happens while Acquire is polling.
	go func() {
		time.Sleep(5 * time.Millisecond)
		mu.Lock()
		current = start.Add(time.Minute)
		mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, l.Acquire(ctx))
}

func TestRateLimiter_AcquireHonoursContext(t *testing.T) {
	l := NewRateLimiter(1, 100)
	l.pollInterval = time.Millisecond
	require.True(t, l.TryAcquire())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRateLimiter_PermissiveDefaults(t *testing.T) {
	l := NewRateLimiter(0, -5)
	minute, hour := l.Remaining()
	assert.Equal(t, 60, minute)
	assert.Equal(t, 1000, hour)
}
