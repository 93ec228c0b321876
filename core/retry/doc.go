// Package retry decorates operations with bounded retries, exponential
// backoff, full jitter, and pluggable retryability predicates.
//
// Two entry points share one algorithm and differ in what counts as
// failure. Do wraps a plain error-returning operation:
//
//	user, err := retry.Do(ctx, func(ctx context.Context) (User, error) {
//	    return client.FetchUser(ctx, id)
//	}, retry.NetworkConfig())
//
// DoOutcome wraps an outcome-returning operation and respects the two-tier
// failure taxonomy: domain failures are final and never retried; only
// exceptions that a predicate classifies as transient trigger another
// attempt:
//
//	o := retry.DoOutcome(ctx, func(ctx context.Context) outcome.Outcome[Report] {
//	    return buildReport(ctx, q)
//	}, retry.StandardConfig())
//
// # Backoff and jitter
//
// The delay after failed attempt n is
// min(InitialDelay * BackoffMultiplier^(n-1), MaxDelay). With Jitter
// enabled the realized delay is drawn uniformly from [0, delay] (full
// jitter, not additive), so simultaneous callers spread out instead of
// retrying in lockstep.
//
// # Guarantees
//
//   - The wrapped operation's final error or outcome is surfaced unchanged;
//     retry never synthesizes a success.
//   - A non-retryable error returns immediately with no further delay.
//   - OnRetry callback panics are swallowed and logged; observers cannot
//     abort the loop.
//   - Delays honor context cancellation.
//
// There is no built-in overall deadline: compose one with context.WithTimeout
// when the total time matters.
package retry
