package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted is wrapped into the error returned by Do once every
// attempt has failed.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryConfig holds the parameters for the retry strategy.
// A zero BaseDelay retries immediately.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *Logger
}

// Do executes fn until it succeeds or MaxAttempts is reached, doubling the
// delay between attempts.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	var lastErr error
	delay := r.BaseDelay

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			if r.Logger != nil {
				r.Logger.Debug("[retry] %s failed (attempt %d/%d): %v",
					operationName, attempt, r.MaxAttempts, lastErr)
			}
			if delay > 0 {
				time.Sleep(delay)
				delay *= 2
			}
		}
	}

	if lastErr == nil {
		return fmt.Errorf("%s: %w: no attempts allowed", operationName, ErrRetriesExhausted)
	}
	return fmt.Errorf("%s failed after %d attempts: %w: %w",
		operationName, r.MaxAttempts, ErrRetriesExhausted, lastErr)
}
