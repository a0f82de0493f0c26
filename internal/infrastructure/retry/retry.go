// Package retry implements bounded exponential backoff for outbound
// provider calls. The provider adapter decides retryability through the
// RetryIf predicate (wired to the domain error taxonomy), so this package
// stays free of provider-specific knowledge.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the backoff parameters for one call site.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of random extra delay so
	// concurrent date searches do not retry in lockstep.
	JitterFactor float64

	// RetryIf decides whether an error is worth retrying. A nil predicate
	// retries everything.
	RetryIf func(error) bool
}

// ProviderConfig is the backoff used for flight-provider API calls. Three
// attempts cover the transient 429/5xx responses the Amadeus test
// environment produces without stretching a per-date search budget.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given attempt count.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given first delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// DoWithResult runs fn until it succeeds, its error is ruled non-retryable,
// the attempts are exhausted, or the context ends. The last result and
// error are returned.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(jittered(delay, cfg)):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// Do is DoWithResult for functions with no return value.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// jittered applies the jitter fraction and the max-delay cap.
func jittered(delay time.Duration, cfg Config) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*cfg.JitterFactor)
	if sleep > cfg.MaxDelay {
		sleep = cfg.MaxDelay
	}
	return sleep
}
