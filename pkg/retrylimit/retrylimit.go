// Package retrylimit provides exponential-backoff retries with an adaptive
// rate limiter. The bot uses it for gateway connects and other calls that
// may hit transient failures or rate limits.
package retrylimit

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter adjusts its rate on request outcomes: up on success, down
// on failure. Safe for concurrent use.
type AdaptiveLimiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	minLimit rate.Limit
	maxLimit rate.Limit
	stepUp   rate.Limit
	stepDown float64
}

// NewAdaptiveLimiter creates a limiter starting at initial requests per
// second, bounded by [min, max]. stepUp is added on success; stepDown is the
// multiplier applied on failure (e.g. 0.5 to halve).
func NewAdaptiveLimiter(initial, min, max, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < min {
		initial = min
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, 1),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or ctx is done.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// Success nudges the rate up.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adjust(a.limiter.Limit() + a.stepUp)
}

// Failure cuts the rate down.
func (a *AdaptiveLimiter) Failure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adjust(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return float64(a.limiter.Limit())
}

func (a *AdaptiveLimiter) adjust(newLimit rate.Limit) {
	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	}
	if newLimit < a.minLimit {
		newLimit = a.minLimit
	}
	a.limiter.SetLimit(newLimit)
}

// FatalError wraps errors that should stop retries immediately.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

// WithRetryMax runs fn up to maxAttempts times with exponential backoff and
// jitter, waiting on lim (which may be nil) before each attempt. It stops on
// success, FatalError, context cancellation, or attempt exhaustion.
func WithRetryMax(ctx context.Context, fn func() error, lim *AdaptiveLimiter, maxAttempts int) error {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	delay := 500 * time.Millisecond
	const maxDelay = 10 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		lastErr = fn()
		if lastErr == nil {
			if lim != nil {
				lim.Success()
			}
			return nil
		}
		if fatal, ok := lastErr.(*FatalError); ok {
			return fatal.Err
		}
		if lim != nil {
			lim.Failure()
		}

		if attempt == maxAttempts {
			break
		}
		log.Printf("[WARN] Attempt %d failed: %v. Retrying in %v", attempt, lastErr, delay)

		sleep := delay + time.Duration(rand.Int63n(int64(delay/4)+1))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return fmt.Errorf("max attempts (%d) exceeded: %w", maxAttempts, lastErr)
}
