package suppliers

import (
	"context"
	"time"

	"github.com/dropship/backend/internal/domain/supplier"
)

// RetryPolicy is the data-driven configuration for the retry executor. It is
// independent of any specific connector so policies can be unit-tested and
// tuned per provider.
type RetryPolicy struct {
	// MaxAttempts is the total attempt ceiling, including the first call
	MaxAttempts int
	// BackoffBase is the delay unit; the wait before retry n is
	// BackoffBase * 2^(n-1), i.e. base, 2*base, 4*base, ...
	BackoffBase time.Duration
	// Retryable classifies errors; only errors it accepts are retried.
	// Nil means supplier.IsTransient.
	Retryable func(error) bool

	// sleep performs the backoff wait, replaceable in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the contract default: 3 attempts, exponential
// backoff starting at one second, retrying only transient provider errors.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: time.Second,
		Retryable:   supplier.IsTransient,
	}
}

// Retry executes op with bounded retries and exponential backoff. Errors the
// policy classifies as non-retryable propagate immediately; after the attempt
// ceiling the last error is returned, never swallowed. The backoff wait checks
// ctx so an abandoned caller stops further attempts promptly.
func Retry(ctx context.Context, policy RetryPolicy, op func(ctx context.Context) error) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	retryable := policy.Retryable
	if retryable == nil {
		retryable = supplier.IsTransient
	}
	base := policy.BackoffBase
	if base <= 0 {
		base = time.Second
	}
	wait := policy.sleep
	if wait == nil {
		wait = sleepContext
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := wait(ctx, base<<(attempt-1)); err != nil {
				return err
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// sleepContext waits for d or until the context is done, whichever is first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
