package procedure

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/callkit/core/outcome"
	"github.com/dmitrymomot/callkit/core/result"
	"github.com/dmitrymomot/callkit/core/schema"
	"github.com/dmitrymomot/callkit/pkg/logger"
)

// Kind distinguishes queries from mutations. Both kinds share identical
// execution semantics; the kind exists for logging, registries, and
// host-side routing.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Names of the exceptions synthesized by the pipeline stages. Callers
// inspect Exception.Name to distinguish stage-synthesized failures from
// failures the handler itself returned.
const (
	ValidationErrorName   = "ValidationError"
	BeforeInvokeErrorName = "BeforeInvokeError"
	HandlerErrorName      = "HandlerError"
)

// Result is the disposition of one procedure invocation: a success value or
// an Exception describing what failed.
type Result[R any] = result.Result[R, outcome.Exception]

// Handler executes the procedure's business logic. It receives the standard
// context first, then the request-scoped application context, then the
// parsed arguments; context availability never depends on argument
// validation. A handler signals domain failure by returning a Failure
// result; a panic is recovered and surfaced as a HandlerError exception.
type Handler[C, A, R any] func(ctx context.Context, reqCtx C, args A) Result[R]

// BeforeHook runs before the handler with the parsed arguments. Returning
// an error (or panicking) aborts the invocation: remaining before hooks and
// the handler are skipped and a BeforeInvokeError is returned.
type BeforeHook[C, A any] func(ctx context.Context, reqCtx C, args A) error

// AfterHook runs after the handler regardless of its result. It is purely
// observational: errors and panics are logged and never alter the result.
type AfterHook[C, A, R any] func(ctx context.Context, reqCtx C, args A, res Result[R])

// SuccessHook runs when the handler returned a success. Observational.
type SuccessHook[C, A, R any] func(ctx context.Context, reqCtx C, args A, value R)

// ErrorHook runs when the invocation failed at any stage. args holds the
// parsed arguments when parsing succeeded, or the raw input for validation
// failures. Observational.
type ErrorHook[C any] func(ctx context.Context, reqCtx C, args any, exc outcome.Exception)

// Procedure is a named, schema-validated, hook-instrumented callable unit
// of work. Hook slices are shared mutable state attached to the procedure
// for its whole lifetime (procedures are typically module-level values);
// registration order defines execution order and there is no removal API.
// Concurrent invocations snapshot the hook lists and keep all other state
// local, so they cannot corrupt each other's results.
type Procedure[C, A, R any] struct {
	name    string
	kind    Kind
	schema  schema.Schema
	handler Handler[C, A, R]
	logger  *slog.Logger

	mu           sync.RWMutex
	beforeHooks  []BeforeHook[C, A]
	afterHooks   []AfterHook[C, A, R]
	successHooks []SuccessHook[C, A, R]
	errorHooks   []ErrorHook[C]
}

// Option configures a Procedure at construction time.
type Option[C, A, R any] func(*Procedure[C, A, R])

// WithLogger sets the logger used for hook failure reporting.
// If not set, slog.Default() is used.
func WithLogger[C, A, R any](log *slog.Logger) Option[C, A, R] {
	return func(p *Procedure[C, A, R]) {
		p.logger = log
	}
}

// NewQuery creates a read procedure. Panics if the schema or handler is
// nil; both are construction-time constants and a nil value is a programmer
// error.
//
// Example:
//
//	getUser := procedure.NewQuery("getUser",
//	    schema.Object(schema.Fields{"id": schema.String().Required()}),
//	    func(ctx context.Context, app *App, args map[string]any) procedure.Result[User] {
//	        return app.Users.Find(ctx, args["id"].(string))
//	    },
//	)
func NewQuery[C, A, R any](name string, s schema.Schema, h Handler[C, A, R], opts ...Option[C, A, R]) *Procedure[C, A, R] {
	return newProcedure(name, KindQuery, s, h, opts)
}

// NewMutation creates a write procedure. Execution semantics are identical
// to NewQuery; the kind differs for logging and host-side routing.
func NewMutation[C, A, R any](name string, s schema.Schema, h Handler[C, A, R], opts ...Option[C, A, R]) *Procedure[C, A, R] {
	return newProcedure(name, KindMutation, s, h, opts)
}

func newProcedure[C, A, R any](name string, kind Kind, s schema.Schema, h Handler[C, A, R], opts []Option[C, A, R]) *Procedure[C, A, R] {
	if s == nil {
		panic("procedure: nil schema for " + name)
	}
	if h == nil {
		panic("procedure: nil handler for " + name)
	}

	p := &Procedure[C, A, R]{
		name:    name,
		kind:    kind,
		schema:  s,
		handler: h,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the procedure's name.
func (p *Procedure[C, A, R]) Name() string {
	return p.name
}

// Kind returns whether the procedure is a query or a mutation.
func (p *Procedure[C, A, R]) Kind() Kind {
	return p.kind
}

// BeforeInvoke appends a hook that runs before the handler, in registration
// order. Returns the procedure for chaining.
func (p *Procedure[C, A, R]) BeforeInvoke(h BeforeHook[C, A]) *Procedure[C, A, R] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.beforeHooks = append(p.beforeHooks, h)
	return p
}

// AfterInvoke appends a hook that always runs after the handler, in
// registration order. Returns the procedure for chaining.
func (p *Procedure[C, A, R]) AfterInvoke(h AfterHook[C, A, R]) *Procedure[C, A, R] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.afterHooks = append(p.afterHooks, h)
	return p
}

// OnSuccess appends a hook that runs when the handler succeeded.
// Returns the procedure for chaining.
func (p *Procedure[C, A, R]) OnSuccess(h SuccessHook[C, A, R]) *Procedure[C, A, R] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.successHooks = append(p.successHooks, h)
	return p
}

// OnError appends a hook that runs when the invocation failed at any stage.
// Returns the procedure for chaining.
func (p *Procedure[C, A, R]) OnError(h ErrorHook[C]) *Procedure[C, A, R] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorHooks = append(p.errorHooks, h)
	return p
}

// Execute runs one invocation through the full pipeline:
//
//  1. Parse input against the schema. On failure: ValidationError, onError
//     hooks run with the raw input, before hooks are skipped.
//  2. Before hooks in registration order. An error or panic aborts with
//     BeforeInvokeError; remaining before hooks and the handler are skipped,
//     onError hooks run.
//  3. Handler. A panic becomes a HandlerError failure.
//  4. After hooks always run, in order; their errors never alter the result.
//  5. Success results run onSuccess hooks; failures run onError hooks.
//
// Execute never panics past this boundary and always returns a well-formed
// Result.
func (p *Procedure[C, A, R]) Execute(ctx context.Context, reqCtx C, input any) Result[R] {
	invocationID := uuid.New().String()

	p.mu.RLock()
	before := slices.Clone(p.beforeHooks)
	after := slices.Clone(p.afterHooks)
	onSuccess := slices.Clone(p.successHooks)
	onError := slices.Clone(p.errorHooks)
	p.mu.RUnlock()

	// Stage 1: parse.
	args, exc, ok := p.parseInput(input)
	if !ok {
		p.runErrorHooks(ctx, reqCtx, input, exc, onError, invocationID)
		return result.Failure[R, outcome.Exception](exc)
	}

	// Stage 2: before hooks. The first error aborts before the handler.
	for _, hook := range before {
		if err := p.safeBefore(hook, ctx, reqCtx, args); err != nil {
			exc := outcome.NewException(BeforeInvokeErrorName, err.Error(), nil)
			p.runErrorHooks(ctx, reqCtx, args, exc, onError, invocationID)
			return result.Failure[R, outcome.Exception](exc)
		}
	}

	// Stage 3: handler.
	res := p.safeHandle(ctx, reqCtx, args)

	// Stage 4: after hooks always run, even when the handler failed.
	for _, hook := range after {
		p.safeAfter(hook, ctx, reqCtx, args, res, invocationID)
	}

	// Stage 5: dispatch to success/error hooks by disposition.
	if res.IsSuccess() {
		for _, hook := range onSuccess {
			p.safeSuccess(hook, ctx, reqCtx, args, res.Value(), invocationID)
		}
		return res
	}
	p.runErrorHooks(ctx, reqCtx, args, res.Err(), onError, invocationID)
	return res
}

// parseInput validates raw input and asserts the canonical value to the
// declared args type. Both rejections surface as ValidationError.
func (p *Procedure[C, A, R]) parseInput(input any) (A, outcome.Exception, bool) {
	var zero A

	parsed := schema.ParseArgs(p.schema, input)
	if parsed.IsFailure() {
		argsErr := parsed.Err()
		return zero, outcome.NewException(ValidationErrorName, argsErr.Error(), map[string]any{
			"issues": argsErr.Issues,
		}), false
	}

	args, ok := parsed.Value().(A)
	if !ok {
		return zero, outcome.NewException(ValidationErrorName,
			fmt.Sprintf("parsed arguments have type %T, want %T", parsed.Value(), zero), nil), false
	}
	return args, outcome.Exception{}, true
}

// safeBefore runs a before hook, converting a panic into an error so it
// aborts this invocation without escaping the pipeline.
func (p *Procedure[C, A, R]) safeBefore(hook BeforeHook[C, A], ctx context.Context, reqCtx C, args A) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("before-invoke hook panicked: %v", r)
		}
	}()
	return hook(ctx, reqCtx, args)
}

// safeHandle runs the handler with panic recovery. A panic becomes a
// HandlerError failure that flows through the remaining stages like any
// other failed result.
func (p *Procedure[C, A, R]) safeHandle(ctx context.Context, reqCtx C, args A) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Failure[R, outcome.Exception](
				outcome.NewException(HandlerErrorName, fmt.Sprintf("handler panicked: %v", r), nil))
		}
	}()
	return p.handler(ctx, reqCtx, args)
}

func (p *Procedure[C, A, R]) safeAfter(hook AfterHook[C, A, R], ctx context.Context, reqCtx C, args A, res Result[R], invocationID string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WarnContext(ctx, "after-invoke hook panicked",
				logger.Procedure(p.name),
				logger.Hook("after_invoke"),
				logger.InvocationID(invocationID),
				slog.Any("panic", r))
		}
	}()
	hook(ctx, reqCtx, args, res)
}

func (p *Procedure[C, A, R]) safeSuccess(hook SuccessHook[C, A, R], ctx context.Context, reqCtx C, args A, value R, invocationID string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WarnContext(ctx, "on-success hook panicked",
				logger.Procedure(p.name),
				logger.Hook("on_success"),
				logger.InvocationID(invocationID),
				slog.Any("panic", r))
		}
	}()
	hook(ctx, reqCtx, args, value)
}

// runErrorHooks invokes every onError hook with panic isolation: error
// hooks are observational and must not abort delivery to the remaining
// hooks or alter the returned result.
func (p *Procedure[C, A, R]) runErrorHooks(ctx context.Context, reqCtx C, args any, exc outcome.Exception, hooks []ErrorHook[C], invocationID string) {
	for _, hook := range hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.logger.WarnContext(ctx, "on-error hook panicked",
						logger.Procedure(p.name),
						logger.Hook("on_error"),
						logger.InvocationID(invocationID),
						slog.Any("panic", r))
				}
			}()
			hook(ctx, reqCtx, args, exc)
		}()
	}
}
