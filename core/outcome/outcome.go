package outcome

import (
	"time"
)

// state identifies which of the three tags an Outcome carries.
type state uint8

const (
	stateSuccess state = iota + 1
	stateFailure
	stateException
)

// Cause is an expected, domain-level failure reason that is safe to expose
// to end users (not found, validation, conflict). A Cause is never mutated
// after creation.
type Cause struct {
	Name      string         `json:"name"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Error implements the error interface so causes can cross boundaries that
// only speak error.
func (c Cause) Error() string {
	return c.Name + ": " + c.Message
}

// NewCause creates a timestamped domain failure cause.
//
// Example:
//
//	cause := outcome.NewCause("QuotaExceeded", "monthly quota exhausted", map[string]any{
//	    "limit": 1000,
//	})
func NewCause(name, message string, data map[string]any) Cause {
	return Cause{
		Name:      name,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Exception is an unexpected, system-level failure (database, network,
// timeout). Exceptions should be logged, not shown verbatim to end users.
// An Exception is never mutated after creation.
type Exception struct {
	Name      string         `json:"name"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Error implements the error interface.
func (e Exception) Error() string {
	return e.Name + ": " + e.Message
}

// NewException creates a timestamped system failure.
func NewException(name, message string, data map[string]any) Exception {
	return Exception{
		Name:      name,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Step records one transformation in an outcome's pipeline history.
// Summary holds the Describe() line of the outcome as it was before the
// step ran, enabling post-hoc causal reconstruction.
type Step struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
}

// Metadata carries the bookkeeping attached to every outcome.
// Trace only grows, one entry per Pipe/WithTrace step.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Callsite  string    `json:"callsite,omitempty"`
	Trace     []Step    `json:"trace,omitempty"`
}

// Outcome is a three-way tagged union describing a computation's
// disposition: Success carrying a value, Failure carrying one or more
// domain causes, or Exception carrying one or more system errors.
// An Outcome is exactly one tag at all times and is immutable once
// constructed.
type Outcome[T any] struct {
	state  state
	value  T
	causes []Cause
	errs   []Exception
	meta   Metadata
}

// Success creates a successful outcome. An optional Metadata value
// overrides the auto-stamped timestamp/callsite (the trace is preserved
// as given).
//
// Example:
//
//	o := outcome.Success(user)
func Success[T any](value T, meta ...Metadata) Outcome[T] {
	m := newMetadata()
	if len(meta) > 0 {
		m = meta[0]
	}
	return Outcome[T]{
		state: stateSuccess,
		value: value,
		meta:  m,
	}
}

// Failure creates a domain-failure outcome from one or more causes.
// A single cause is normalized to a one-element sequence.
//
// Example:
//
//	o := outcome.Failure[User](outcome.NotFound("user", id))
func Failure[T any](causes ...Cause) Outcome[T] {
	return Outcome[T]{
		state:  stateFailure,
		causes: causes,
		meta:   newMetadata(),
	}
}

// Except creates a system-failure outcome from one or more exceptions.
//
// Example:
//
//	o := outcome.Except[User](outcome.Database("insert", err))
func Except[T any](errs ...Exception) Outcome[T] {
	return Outcome[T]{
		state: stateException,
		errs:  errs,
		meta:  newMetadata(),
	}
}

// CombineCauses builds a multi-cause failure outcome from a slice.
func CombineCauses[T any](causes []Cause) Outcome[T] {
	return Failure[T](causes...)
}

// CombineExceptions builds a multi-error exception outcome from a slice.
func CombineExceptions[T any](errs []Exception) Outcome[T] {
	return Except[T](errs...)
}

// IsSuccess reports whether the outcome carries a success value.
func (o Outcome[T]) IsSuccess() bool {
	return o.state == stateSuccess
}

// IsFailure reports whether the outcome carries domain causes.
func (o Outcome[T]) IsFailure() bool {
	return o.state == stateFailure
}

// IsException reports whether the outcome carries system errors.
func (o Outcome[T]) IsException() bool {
	return o.state == stateException
}

// Value returns the success value. For non-success outcomes it returns the
// zero value of T; check IsSuccess first.
func (o Outcome[T]) Value() T {
	return o.value
}

// Causes returns the ordered domain causes of a failure outcome.
func (o Outcome[T]) Causes() []Cause {
	return o.causes
}

// Exceptions returns the ordered system errors of an exception outcome.
func (o Outcome[T]) Exceptions() []Exception {
	return o.errs
}

// Metadata returns the outcome's bookkeeping metadata.
func (o Outcome[T]) Metadata() Metadata {
	return o.meta
}

// Handlers holds the three tag handlers for Match. All three are required;
// together they cover every possible outcome state.
type Handlers[T, U any] struct {
	OnSuccess   func(value T) U
	OnFailure   func(causes []Cause) U
	OnException func(errs []Exception) U
}

// Match dispatches on the outcome's tag and returns the matching handler's
// value. Match panics if any handler is nil: exhaustiveness is part of the
// contract, and a missing handler is a programmer error.
//
// Example:
//
//	msg := outcome.Match(o, outcome.Handlers[User, string]{
//	    OnSuccess:   func(u User) string { return u.Name },
//	    OnFailure:   func(cs []outcome.Cause) string { return cs[0].Message },
//	    OnException: func(es []outcome.Exception) string { return "internal error" },
//	})
func Match[T, U any](o Outcome[T], h Handlers[T, U]) U {
	if h.OnSuccess == nil || h.OnFailure == nil || h.OnException == nil {
		panic("outcome: Match requires OnSuccess, OnFailure, and OnException handlers")
	}
	switch o.state {
	case stateFailure:
		return h.OnFailure(o.causes)
	case stateException:
		return h.OnException(o.errs)
	default:
		return h.OnSuccess(o.value)
	}
}

// Pipe chains outcome-returning transformations. If o is a success, fn is
// applied to its value; the input's trace carries forward into the produced
// outcome, and when a description is given one trace Step recording the
// pre-fn outcome is appended. If o is a failure or exception, its
// causes/errors and metadata propagate unchanged and fn is never invoked
// (short-circuit).
//
// Example:
//
//	o := outcome.Pipe(findUser(id), chargeUser, "charge subscription")
func Pipe[T, U any](o Outcome[T], fn func(T) Outcome[U], description ...string) Outcome[U] {
	if o.state != stateSuccess {
		return carry[T, U](o)
	}

	out := fn(o.value)
	trace := o.meta.Trace
	if len(description) > 0 && description[0] != "" {
		trace = appendStep(trace, Step{
			Timestamp:   time.Now(),
			Description: description[0],
			Summary:     Describe(o),
		})
	}
	if len(trace) > 0 {
		merged := make([]Step, 0, len(trace)+len(out.meta.Trace))
		merged = append(merged, trace...)
		merged = append(merged, out.meta.Trace...)
		out.meta.Trace = merged
	}
	return out
}

// WithTrace appends one trace step describing the outcome's current state
// without altering its tag or payload.
func WithTrace[T any](o Outcome[T], description string) Outcome[T] {
	o.meta.Trace = appendStep(o.meta.Trace, Step{
		Timestamp:   time.Now(),
		Description: description,
		Summary:     Describe(o),
	})
	return o
}

// carry repackages a non-success outcome under a new value type, keeping
// causes, errors, and metadata intact.
func carry[T, U any](o Outcome[T]) Outcome[U] {
	return Outcome[U]{
		state:  o.state,
		causes: o.causes,
		errs:   o.errs,
		meta:   o.meta,
	}
}

// appendStep copies on append so outcomes sharing a trace slice never
// observe each other's steps.
func appendStep(trace []Step, step Step) []Step {
	next := make([]Step, len(trace), len(trace)+1)
	copy(next, trace)
	return append(next, step)
}

func newMetadata() Metadata {
	return Metadata{
		Timestamp: time.Now(),
		Callsite:  callsite(),
	}
}
