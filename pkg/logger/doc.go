// Package logger provides slog attribute helpers with consistent keys for
// the callkit packages: procedure names, hook stages, retry attempts, cache
// keys, and error attributes.
//
// All helpers that accept possibly-empty values return an empty slog.Attr
// for the zero case, so call sites never need nil checks:
//
//	log.Warn("after-invoke hook failed",
//	    logger.Procedure("getUser"),
//	    logger.Hook("after_invoke"),
//	    logger.Error(err),
//	)
//
// The helpers exist to keep attribute keys uniform across packages; they add
// no behavior beyond the slog constructors they wrap.
package logger
