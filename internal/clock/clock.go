// Package clock holds context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Retry calls fn up to attempts times, waiting delay between failed calls. It stops early
// when retryable reports false for an error or the context is canceled, and returns the
// last error.
func Retry(ctx context.Context, attempts int, delay time.Duration, retryable func(error) bool, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < max(attempts, 1); attempt++ {
		if attempt > 0 {
			if sleepErr := Sleep(ctx, delay); sleepErr != nil {
				return err
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
	}
	return err
}
