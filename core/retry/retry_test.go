package retry_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/callkit/core/outcome"
	"github.com/dmitrymomot/callkit/core/retry"
)

// fastConfig keeps test runtimes negligible while exercising the real loop.
func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:       3,
		InitialDelay:      time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          10 * time.Millisecond,
		IsRetryable:       retry.AllErrors,
	}
}

func TestDo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the first success without retrying", func(t *testing.T) {
		t.Parallel()

		calls := 0
		value, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
			calls++
			return 42, nil
		}, fastConfig())

		require.NoError(t, err)
		assert.Equal(t, 42, value)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		value, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "done", nil
		}, fastConfig())

		require.NoError(t, err)
		assert.Equal(t, "done", value)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and surfaces the last error unchanged", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		calls := 0
		_, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
			calls++
			return 0, boom
		}, fastConfig())

		assert.Equal(t, boom, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error returns after one call", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig()
		cfg.IsRetryable = retry.Never

		calls := 0
		_, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("fatal")
		}, cfg)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("delays follow the exponential schedule without jitter", func(t *testing.T) {
		t.Parallel()

		cfg := retry.Config{
			MaxAttempts:       3,
			InitialDelay:      100 * time.Millisecond,
			BackoffMultiplier: 2,
			MaxDelay:          time.Second,
			Jitter:            false,
			IsRetryable:       retry.AllErrors,
		}

		var delays []time.Duration
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			delays = append(delays, delay)
		}
		// Cancel during the first sleep so the test does not actually wait.
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := retry.Do(cctx, func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		}, cfg)

		assert.ErrorIs(t, err, context.Canceled)
		require.Len(t, delays, 1)
		assert.Equal(t, 100*time.Millisecond, delays[0])
	})

	t.Run("computed delay never exceeds the cap", func(t *testing.T) {
		t.Parallel()

		cfg := retry.Config{
			MaxAttempts:       5,
			InitialDelay:      time.Millisecond,
			BackoffMultiplier: 10,
			MaxDelay:          4 * time.Millisecond,
			Jitter:            false,
			IsRetryable:       retry.AllErrors,
		}

		var delays []time.Duration
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			delays = append(delays, delay)
		}

		_, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		}, cfg)

		require.Error(t, err)
		require.Len(t, delays, 4)
		assert.Equal(t, time.Millisecond, delays[0])
		for _, d := range delays[1:] {
			assert.Equal(t, 4*time.Millisecond, d)
		}
	})

	t.Run("jittered delay stays within the exponential bound", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig()
		cfg.Jitter = true
		cfg.InitialDelay = 5 * time.Millisecond

		var delays []time.Duration
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			delays = append(delays, delay)
		}

		_, _ = retry.Do(ctx, func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		}, cfg)

		require.Len(t, delays, 2)
		assert.LessOrEqual(t, delays[0], 5*time.Millisecond)
		assert.GreaterOrEqual(t, delays[0], time.Duration(0))
		assert.LessOrEqual(t, delays[1], 10*time.Millisecond)
	})

	t.Run("callback panic never aborts the loop", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig()
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			panic("observer blew up")
		}

		calls := 0
		value, err := retry.Do(ctx, func(ctx context.Context) (int, error) {
			calls++
			if calls < 2 {
				return 0, errors.New("transient")
			}
			return 7, nil
		}, cfg)

		require.NoError(t, err)
		assert.Equal(t, 7, value)
		assert.Equal(t, 2, calls)
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		var attempts []int
		cfg := retry.Config{
			InitialDelay: time.Millisecond,
			OnRetry: func(attempt int, err error, delay time.Duration) {
				attempts = append(attempts, attempt)
			},
		}

		_, err := retry.Do(cctx, func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		}, cfg)

		// Default policy retries all errors; the canceled context stops the
		// first delay.
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []int{1}, attempts)
	})
}

func TestDoOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success returns immediately", func(t *testing.T) {
		t.Parallel()

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			return outcome.Success(1)
		}, fastConfig())

		assert.True(t, o.IsSuccess())
		assert.Equal(t, 1, calls)
	})

	t.Run("domain failure is never retried", func(t *testing.T) {
		t.Parallel()

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			return outcome.Failure[int](outcome.NotFound("user", 1))
		}, fastConfig())

		assert.True(t, o.IsFailure())
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable exception is retried until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			if calls < 3 {
				return outcome.Except[int](outcome.Network("connection refused"))
			}
			return outcome.Success(9)
		}, fastConfig())

		require.True(t, o.IsSuccess())
		assert.Equal(t, 9, o.Value())
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable exception returns after one call", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig()
		cfg.IsRetryable = retry.NetworkErrors

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			return outcome.Except[int](outcome.Internal("corrupt state"))
		}, cfg)

		assert.True(t, o.IsException())
		assert.Equal(t, 1, calls)
	})

	t.Run("any retryable exception in the list triggers a retry", func(t *testing.T) {
		t.Parallel()

		cfg := fastConfig()
		cfg.IsRetryable = retry.NetworkErrors

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			if calls == 1 {
				return outcome.Except[int](
					outcome.Internal("corrupt state"),
					outcome.Network("connection reset"),
				)
			}
			return outcome.Success(1)
		}, cfg)

		assert.True(t, o.IsSuccess())
		assert.Equal(t, 2, calls)
	})

	t.Run("exhausted attempts surface the last outcome unchanged", func(t *testing.T) {
		t.Parallel()

		calls := 0
		o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			return outcome.Except[int](outcome.Timeout("query", time.Second))
		}, fastConfig())

		require.True(t, o.IsException())
		assert.Equal(t, "TimeoutError", o.Exceptions()[0].Name)
		assert.Equal(t, 3, calls)
	})

	t.Run("context cancellation during a delay yields a ContextError", func(t *testing.T) {
		t.Parallel()

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		cfg := fastConfig()
		cfg.InitialDelay = 100 * time.Millisecond

		o := retry.DoOutcome(cctx, func(ctx context.Context) outcome.Outcome[int] {
			return outcome.Except[int](outcome.Network("connection refused"))
		}, cfg)

		require.True(t, o.IsException())
		assert.Equal(t, "ContextError", o.Exceptions()[0].Name)
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	t.Run("network errors match transient phrasing", func(t *testing.T) {
		t.Parallel()

		assert.True(t, retry.NetworkErrors(errors.New("dial tcp: connection refused")))
		assert.True(t, retry.NetworkErrors(outcome.Network("reset by peer")))
		assert.False(t, retry.NetworkErrors(errors.New("invalid input")))
		assert.False(t, retry.NetworkErrors(nil))
	})

	t.Run("server errors match 5xx status text", func(t *testing.T) {
		t.Parallel()

		assert.True(t, retry.ServerErrors(errors.New("HTTP 503 Service Unavailable")))
		assert.False(t, retry.ServerErrors(errors.New("HTTP 404 Not Found")))
	})

	t.Run("rate limiting matches 429 and phrasing", func(t *testing.T) {
		t.Parallel()

		assert.True(t, retry.RateLimited(errors.New("HTTP 429")))
		assert.True(t, retry.RateLimited(errors.New("rate limit exceeded")))
		assert.False(t, retry.RateLimited(errors.New("boom")))
	})

	t.Run("timeouts match deadline phrasing", func(t *testing.T) {
		t.Parallel()

		assert.True(t, retry.Timeouts(context.DeadlineExceeded))
		assert.True(t, retry.Timeouts(errors.New("operation timed out")))
		assert.False(t, retry.Timeouts(errors.New("boom")))
	})

	t.Run("any combines predicates", func(t *testing.T) {
		t.Parallel()

		p := retry.Any(retry.NetworkErrors, retry.Timeouts)
		assert.True(t, p(errors.New("connection refused")))
		assert.True(t, p(errors.New("timeout")))
		assert.False(t, p(errors.New("boom")))
	})
}

func TestWithLogging(t *testing.T) {
	t.Parallel()

	t.Run("chains rather than replaces the existing callback", func(t *testing.T) {
		t.Parallel()

		prevCalls := 0
		cfg := fastConfig()
		cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
			prevCalls++
		}
		cfg = retry.WithLogging(cfg, slog.New(slog.DiscardHandler))

		calls := 0
		_, _ = retry.Do(context.Background(), func(ctx context.Context) (int, error) {
			calls++
			if calls < 2 {
				return 0, errors.New("transient")
			}
			return 1, nil
		}, cfg)

		assert.Equal(t, 1, prevCalls)
	})
}

func TestPresets(t *testing.T) {
	t.Parallel()

	t.Run("presets carry their attempt counts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 2, retry.QuickConfig().MaxAttempts)
		assert.Equal(t, 3, retry.StandardConfig().MaxAttempts)
		assert.Equal(t, 5, retry.AggressiveConfig().MaxAttempts)
		assert.Equal(t, 4, retry.NetworkConfig().MaxAttempts)
		assert.Equal(t, 5, retry.IdempotentConfig().MaxAttempts)
	})

	t.Run("network preset rejects non-transient errors", func(t *testing.T) {
		t.Parallel()

		cfg := retry.NetworkConfig()
		assert.True(t, cfg.IsRetryable(errors.New("connection refused")))
		assert.False(t, cfg.IsRetryable(errors.New("validation failed")))
	})
}
