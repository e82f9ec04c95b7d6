package marketdata

import (
	"fmt"
	"math"
	"time"
)

// retryConfig configures exponential-backoff retries for provider calls.
type retryConfig struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	multiplier float64
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxRetries: 3,
		baseDelay:  time.Second,
		maxDelay:   30 * time.Second,
		multiplier: 2.0,
	}
}

// withRetry executes fn with exponential backoff until it succeeds or the
// retry budget is exhausted.
func withRetry(cfg retryConfig, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(cfg.baseDelay) * math.Pow(cfg.multiplier, float64(attempt-1)))
			if delay > cfg.maxDelay {
				delay = cfg.maxDelay
			}
			time.Sleep(delay)
		}
		if err := fn(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
