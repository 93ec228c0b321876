package retry

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/callkit/core/outcome"
	"github.com/dmitrymomot/callkit/pkg/logger"
)

// Do wraps an error-returning operation with bounded retries and
// exponential backoff. On success the value is returned immediately. On
// error: if the error is not retryable, or this was the last attempt, the
// original error is returned unchanged. Otherwise OnRetry is invoked and
// the loop suspends for the computed delay before the next attempt.
//
// Delays honor ctx: cancellation during a delay returns ctx.Err().
//
// Example:
//
//	user, err := retry.Do(ctx, func(ctx context.Context) (User, error) {
//	    return client.FetchUser(ctx, id)
//	}, retry.NetworkConfig())
func Do[T any](ctx context.Context, fn func(context.Context) (T, error), cfg Config) (T, error) {
	cfg = cfg.merge()

	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if !cfg.IsRetryable(err) || attempt == cfg.MaxAttempts {
			return zero, err
		}

		delay := cfg.delayFor(attempt)
		notifyRetry(cfg, attempt, err, delay)

		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

// DoOutcome wraps an outcome-returning operation with the same backoff
// algorithm, using the outcome's tag to decide what counts as failure:
//
//   - Success returns immediately.
//   - Failure (domain causes) is never retried: it is an expected final
//     answer and is returned as-is after one call.
//   - Exception is retried only if at least one of its errors satisfies
//     IsRetryable; the first error is passed to OnRetry.
//
// After exhausting attempts the last outcome is surfaced unchanged.
func DoOutcome[T any](ctx context.Context, fn func(context.Context) outcome.Outcome[T], cfg Config) outcome.Outcome[T] {
	cfg = cfg.merge()

	var last outcome.Outcome[T]

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		o := fn(ctx)
		if !o.IsException() {
			// Success short-circuits; a domain failure is final.
			return o
		}
		last = o

		if !anyRetryable(cfg, o.Exceptions()) || attempt == cfg.MaxAttempts {
			return o
		}

		delay := cfg.delayFor(attempt)
		notifyRetry(cfg, attempt, o.Exceptions()[0], delay)

		if err := sleep(ctx, delay); err != nil {
			return outcome.Except[T](outcome.NewException("ContextError", err.Error(), nil))
		}
	}

	return last
}

// delayFor computes the delay after the given (1-based) failed attempt:
// min(InitialDelay * BackoffMultiplier^(attempt-1), MaxDelay), optionally
// randomized uniformly in [0, delay] under full jitter.
func (c Config) delayFor(attempt int) time.Duration {
	delay := time.Duration(float64(c.InitialDelay) * math.Pow(c.BackoffMultiplier, float64(attempt-1)))
	if delay > c.MaxDelay || delay <= 0 {
		delay = c.MaxDelay
	}
	if c.Jitter && delay > 0 {
		delay = time.Duration(rand.Int64N(int64(delay) + 1))
	}
	return delay
}

// notifyRetry invokes the OnRetry callback with panic isolation: a
// misbehaving callback is logged and must never abort the retry loop.
func notifyRetry(cfg Config, attempt int, err error, delay time.Duration) {
	if cfg.OnRetry == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("retry callback panicked",
				logger.Attempt(attempt),
				slog.Any("panic", r))
		}
	}()
	cfg.OnRetry(attempt, err, delay)
}

func anyRetryable(cfg Config, errs []outcome.Exception) bool {
	for _, exc := range errs {
		if cfg.IsRetryable(exc) {
			return true
		}
	}
	return false
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
