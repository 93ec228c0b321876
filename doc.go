// Package callkit is an in-process procedure-definition and call-dispatch
// toolkit: declare request-scoped context and named procedures (queries and
// mutations), and get back callable values that validate input, run ordered
// lifecycle hooks, and return structured outcomes instead of panicking.
//
// The library has no wire protocol, persistence, or authentication of its
// own; it is the execution and error-modeling layer that host applications
// mount behind whatever transport they use.
//
// # Package Organization
//
// Core packages provide the execution pipeline and its value types:
//
//	github.com/dmitrymomot/callkit/core/result    - Two-way Success/Failure tagged union
//	github.com/dmitrymomot/callkit/core/outcome   - Three-way union with Cause/Exception taxonomy and tracing
//	github.com/dmitrymomot/callkit/core/schema    - Safe-parse argument validation with declarative object schemas
//	github.com/dmitrymomot/callkit/core/procedure - Procedure runtime with before/after/success/error hooks
//	github.com/dmitrymomot/callkit/core/retry     - Bounded retries with exponential backoff and full jitter
//	github.com/dmitrymomot/callkit/core/registry  - Name-to-procedure indirection with symmetric aliasing
//	github.com/dmitrymomot/callkit/core/stream    - In-memory cache-invalidation pub/sub with bounded history
//	github.com/dmitrymomot/callkit/core/config    - Type-safe environment variable loading with caching
//
// Utility packages:
//
//	github.com/dmitrymomot/callkit/pkg/logger     - slog attribute helpers with consistent keys
//
// # Data Flow
//
// A caller invokes a procedure; the schema validates the input; the runtime
// runs before hooks, the handler (optionally wrapped with retry), after
// hooks, and success/error hooks; a Result or Outcome flows back to the
// caller. The registry and stream are orthogonal collaborators consumed by
// host code around procedures.
//
// # Example
//
//	type App struct{ Users UserService }
//
//	var getUser = procedure.NewQuery("getUser",
//	    schema.Object(schema.Fields{
//	        "id": schema.String().Required(),
//	    }),
//	    func(ctx context.Context, app *App, args map[string]any) procedure.Result[User] {
//	        return app.Users.Find(ctx, args["id"].(string))
//	    },
//	).OnError(func(ctx context.Context, app *App, args any, exc outcome.Exception) {
//	    slog.Error("getUser failed", "error", exc)
//	})
//
//	res := getUser.Execute(ctx, app, map[string]any{"id": "123"})
//
// For detailed documentation use go doc on the individual packages.
package callkit
