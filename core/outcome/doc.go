// Package outcome provides a three-way tagged union for modeling operation
// results with a two-tier failure taxonomy and append-only trace metadata.
//
// An Outcome is exactly one of:
//
//   - Success: the operation produced a value
//   - Failure: the operation hit one or more expected, domain-legible causes
//     (not found, validation, conflict) that are safe to show users
//   - Exception: the operation hit one or more unexpected system errors
//     (database, network, timeout) that should be logged, not shown
//
// The distinction is the point: callers render causes to end users and route
// exceptions to observability. Every outcome carries metadata with a
// creation timestamp, a best-effort callsite, and a trace of prior pipeline
// steps.
//
// # Construction
//
//	ok := outcome.Success(user)
//	missing := outcome.Failure[User](outcome.NotFound("user", id))
//	broken := outcome.Except[User](outcome.Database("select", err))
//
// # Composition
//
// Pipe is the composition backbone: it applies a function to a success value
// and short-circuits failures and exceptions without invoking the function.
// An optional description records a trace step for post-hoc reconstruction:
//
//	o := outcome.Pipe(loadAccount(id), debit, "debit account")
//	o = outcome.Pipe(o, writeLedger, "write ledger entry")
//
// Match forces exhaustive handling of all three tags:
//
//	resp := outcome.Match(o, outcome.Handlers[Ledger, Response]{
//	    OnSuccess:   renderLedger,
//	    OnFailure:   renderCauses,
//	    OnException: renderInternalError,
//	})
//
// # Boundary conversion
//
// FromResult and ToResult bridge to the plain result package. Both are
// documented as lossy where they are: a plain result cannot distinguish
// domain from system failures, and collapsing a multi-cause failure keeps
// only the first cause.
package outcome
