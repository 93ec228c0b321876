package retry

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/callkit/pkg/logger"
)

// Config is a pure value object describing a retry policy. Zero fields are
// merged against DefaultConfig at call time, so a partially filled Config
// is always usable. Designed for environment-based configuration using
// popular env parsing libraries (see core/config).
type Config struct {
	// MaxAttempts is the total number of calls, including the first one.
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`

	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"100ms"`

	// BackoffMultiplier grows the delay exponentially per attempt.
	BackoffMultiplier float64 `env:"RETRY_BACKOFF_MULTIPLIER" envDefault:"2"`

	// MaxDelay caps the computed delay before jitter is applied.
	MaxDelay time.Duration `env:"RETRY_MAX_DELAY" envDefault:"30s"`

	// Jitter randomizes the realized delay uniformly in [0, delay] (full
	// jitter). The realized delay can be much smaller than the capped
	// exponential value.
	Jitter bool `env:"RETRY_JITTER" envDefault:"true"`

	// IsRetryable decides whether an error is worth another attempt.
	// Defaults to AllErrors.
	IsRetryable func(error) bool `env:"-"`

	// OnRetry is invoked before each delay with the attempt number that
	// just failed, the error, and the upcoming delay. A panic inside the
	// callback is swallowed and logged; it never aborts the retry loop.
	OnRetry func(attempt int, err error, delay time.Duration) `env:"-"`
}

// DefaultConfig returns the standard policy: 3 attempts, 100ms initial
// delay doubling up to 30s, full jitter, all errors retryable.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       3,
		InitialDelay:      100 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          30 * time.Second,
		Jitter:            true,
		IsRetryable:       AllErrors,
	}
}

// merge fills zero fields from the defaults. Jitter is a plain bool and
// cannot distinguish "unset" from "disabled", so it is taken as given.
func (c Config) merge() Config {
	def := DefaultConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = def.InitialDelay
	}
	if c.BackoffMultiplier <= 0 {
		c.BackoffMultiplier = def.BackoffMultiplier
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = def.MaxDelay
	}
	if c.IsRetryable == nil {
		c.IsRetryable = def.IsRetryable
	}
	return c
}

// WithLogging returns a copy of the config whose OnRetry first logs a
// formatted message and then delegates to any OnRetry already present.
// This chains rather than replaces the existing callback.
//
// Example:
//
//	cfg := retry.WithLogging(retry.NetworkConfig(), slog.Default())
func WithLogging(cfg Config, log *slog.Logger) Config {
	if log == nil {
		log = slog.Default()
	}

	prev := cfg.OnRetry
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		log.Warn("retrying after failure",
			logger.Attempt(attempt),
			logger.Delay(delay),
			logger.Error(err))
		if prev != nil {
			prev(attempt, err, delay)
		}
	}
	return cfg
}
