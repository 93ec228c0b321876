package result

// Result represents the disposition of a computation: either a success
// carrying a value of type T, or a failure carrying an error of type E.
// A Result is exactly one of the two at all times and is immutable once
// constructed.
//
// E is a free type parameter rather than the error interface so callers can
// carry structured failure values (domain causes, validation reports) without
// flattening them into strings.
type Result[T, E any] struct {
	value   T
	err     E
	success bool
}

// Success creates a successful result carrying the given value.
//
// Example:
//
//	res := result.Success[string, error]("hello")
//	res.IsSuccess() // true
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:   value,
		success: true,
	}
}

// Failure creates a failed result carrying the given error value.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
	}
}

// IsSuccess reports whether the result is a success.
func (r Result[T, E]) IsSuccess() bool {
	return r.success
}

// IsFailure reports whether the result is a failure.
func (r Result[T, E]) IsFailure() bool {
	return !r.success
}

// Value returns the success value. For a failure it returns the zero value
// of T; check IsSuccess first.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure value. For a success it returns the zero value
// of E; check IsFailure first.
func (r Result[T, E]) Err() E {
	return r.err
}

// OrElse returns the success value, or the provided default for a failure.
func (r Result[T, E]) OrElse(defaultValue T) T {
	if r.success {
		return r.value
	}
	return defaultValue
}

// Match dispatches on the result's tag and returns the handler's value.
// Both handlers are required; together they cover every possible state.
//
// Example:
//
//	msg := result.Match(res,
//	    func(v string) string { return "got " + v },
//	    func(err error) string { return "failed: " + err.Error() },
//	)
func Match[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if r.success {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Map transforms a successful result's value using fn.
// A failure passes through unchanged.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.IsFailure() {
		return Failure[U, E](r.err)
	}
	return Success[U, E](fn(r.value))
}

// FlatMap chains result-returning operations. A failure passes through
// unchanged and fn is never invoked.
func FlatMap[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.IsFailure() {
		return Failure[U, E](r.err)
	}
	return fn(r.value)
}
