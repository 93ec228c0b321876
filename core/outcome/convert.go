package outcome

import (
	"errors"

	"github.com/dmitrymomot/callkit/core/result"
)

// FromResult lifts a plain two-way result into the three-way outcome
// algebra. The error side always becomes an Exception, never a Failure: a
// plain result carries no domain/system distinction, so the conversion
// conservatively treats every error as technical. If the error already is
// an outcome Exception or Cause its name, message, and data are preserved;
// any other error is wrapped as a generic "Error" exception.
func FromResult[T any](r result.Result[T, error]) Outcome[T] {
	if r.IsSuccess() {
		return Success(r.Value())
	}

	err := r.Err()

	var exc Exception
	if errors.As(err, &exc) {
		return Except[T](exc)
	}

	var cause Cause
	if errors.As(err, &cause) {
		return Except[T](NewException(cause.Name, cause.Message, cause.Data))
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Except[T](NewException("Error", msg, nil))
}

// ToResult collapses an outcome into a plain two-way result. A Failure's
// cause list is reduced to a single exception synthesized from the first
// cause's name, message, and data. Causes beyond the first are lost, so
// the conversion is lossy.
func ToResult[T any](o Outcome[T]) result.Result[T, error] {
	switch o.state {
	case stateSuccess:
		return result.Success[T, error](o.value)
	case stateFailure:
		if len(o.causes) == 0 {
			return result.Failure[T, error](Internal("failure outcome without causes"))
		}
		first := o.causes[0]
		return result.Failure[T, error](NewException(first.Name, first.Message, first.Data))
	default:
		if len(o.errs) == 0 {
			return result.Failure[T, error](Internal("exception outcome without errors"))
		}
		return result.Failure[T, error](o.errs[0])
	}
}
