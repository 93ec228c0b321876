package retry

import "time"

// Named presets bundling attempt counts, delays, and predicates for common
// scenarios. Each returns a fresh Config value so callers can adjust fields
// without affecting other call sites.

// QuickConfig suits low-latency paths: 2 attempts with a short delay.
func QuickConfig() Config {
	return Config{
		MaxAttempts:       2,
		InitialDelay:      50 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          200 * time.Millisecond,
		Jitter:            true,
		IsRetryable:       AllErrors,
	}
}

// StandardConfig is DefaultConfig under its preset name.
func StandardConfig() Config {
	return DefaultConfig()
}

// AggressiveConfig keeps trying longer: 5 attempts up to a minute of delay.
func AggressiveConfig() Config {
	return Config{
		MaxAttempts:       5,
		InitialDelay:      200 * time.Millisecond,
		BackoffMultiplier: 2.5,
		MaxDelay:          time.Minute,
		Jitter:            true,
		IsRetryable:       AllErrors,
	}
}

// NetworkConfig retries only transient network, server, rate-limit, and
// timeout failures.
func NetworkConfig() Config {
	return Config{
		MaxAttempts:       4,
		InitialDelay:      250 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          10 * time.Second,
		Jitter:            true,
		IsRetryable:       Any(NetworkErrors, ServerErrors, RateLimited, Timeouts),
	}
}

// IdempotentConfig suits operations that are safe to repeat blindly:
// generous attempts, every error retryable.
func IdempotentConfig() Config {
	return Config{
		MaxAttempts:       5,
		InitialDelay:      100 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          30 * time.Second,
		Jitter:            true,
		IsRetryable:       AllErrors,
	}
}
