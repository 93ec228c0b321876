// Package procedure provides the execution pipeline for named,
// schema-validated units of work (queries and mutations) with ordered
// lifecycle hooks.
//
// A procedure wraps a handler function with argument parsing, request
// context injection, and four hook points. Every invocation runs the same
// strictly sequential state machine and always returns a structured Result
// instead of panicking:
//
//	parse → beforeInvoke* → handler → afterInvoke* → onSuccess*/onError*
//
// # Defining procedures
//
//	type App struct{ Users UserService }
//
//	getUser := procedure.NewQuery("getUser",
//	    schema.Object(schema.Fields{
//	        "id": schema.String().Required(),
//	    }),
//	    func(ctx context.Context, app *App, args map[string]any) procedure.Result[User] {
//	        return app.Users.Find(ctx, args["id"].(string))
//	    },
//	)
//
// Handlers receive (ctx, request context, parsed args) in that order;
// context availability never depends on argument validation. There is no
// ambient context singleton; everything is threaded explicitly.
//
// # Lifecycle hooks
//
// Hook registration is chainable and may happen at any time, including
// between invocations. Registration order defines execution order:
//
//	getUser.
//	    BeforeInvoke(authorize).
//	    AfterInvoke(audit).
//	    OnError(alert)
//
// Before hooks can abort the invocation by returning an error. After,
// success, and error hooks are observational: their errors and panics are
// logged and never change the result. After hooks always run, even when the
// handler failed.
//
// # Failure taxonomy
//
// The pipeline synthesizes exceptions named ValidationError (input
// rejected; before hooks and handler skipped), BeforeInvokeError (a before
// hook aborted; handler skipped), and HandlerError (the handler panicked).
// Failures a handler returns deliberately keep whatever name the handler
// gave them. Inspect Exception.Name, not just the failure tag, before
// showing a message to an end user.
//
// # Concurrency
//
// The hook slices are the only shared mutable state; they are guarded by a
// mutex and snapshotted per invocation. All other invocation state is
// local, so concurrent Execute calls never interleave destructively.
package procedure
