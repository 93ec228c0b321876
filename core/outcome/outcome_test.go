package outcome_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/callkit/core/outcome"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("success stamps metadata", func(t *testing.T) {
		t.Parallel()

		o := outcome.Success("value")

		assert.True(t, o.IsSuccess())
		assert.Equal(t, "value", o.Value())
		assert.False(t, o.Metadata().Timestamp.IsZero())
		assert.Contains(t, o.Metadata().Callsite, "outcome_test.go")
	})

	t.Run("single cause normalizes to one-element sequence", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[string](outcome.NotFound("user", "123"))

		require.True(t, o.IsFailure())
		require.Len(t, o.Causes(), 1)
		assert.Equal(t, "NotFound", o.Causes()[0].Name)
	})

	t.Run("multiple exceptions keep order", func(t *testing.T) {
		t.Parallel()

		o := outcome.Except[string](
			outcome.Network("connection refused"),
			outcome.Internal(""),
		)

		require.True(t, o.IsException())
		require.Len(t, o.Exceptions(), 2)
		assert.Equal(t, "NetworkError", o.Exceptions()[0].Name)
		assert.Equal(t, "InternalError", o.Exceptions()[1].Name)
	})

	t.Run("combine constructors build from slices", func(t *testing.T) {
		t.Parallel()

		causes := []outcome.Cause{
			outcome.Validation("name required", nil),
			outcome.Conflict("user", "email taken"),
		}
		o := outcome.CombineCauses[string](causes)

		require.True(t, o.IsFailure())
		assert.Len(t, o.Causes(), 2)

		errs := []outcome.Exception{outcome.Internal("a"), outcome.Internal("b")}
		oe := outcome.CombineExceptions[string](errs)

		require.True(t, oe.IsException())
		assert.Len(t, oe.Exceptions(), 2)
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	handlers := outcome.Handlers[int, string]{
		OnSuccess:   func(v int) string { return "success" },
		OnFailure:   func(cs []outcome.Cause) string { return cs[0].Name },
		OnException: func(es []outcome.Exception) string { return es[0].Name },
	}

	t.Run("dispatches by tag", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "success", outcome.Match(outcome.Success(1), handlers))
		assert.Equal(t, "NotFound", outcome.Match(outcome.Failure[int](outcome.NotFound("x", 1)), handlers))
		assert.Equal(t, "InternalError", outcome.Match(outcome.Except[int](outcome.Internal("")), handlers))
	})

	t.Run("panics on missing handler", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			outcome.Match(outcome.Success(1), outcome.Handlers[int, string]{
				OnSuccess: func(v int) string { return "" },
			})
		})
	})
}

func TestPipe(t *testing.T) {
	t.Parallel()

	t.Run("applies fn to a success value", func(t *testing.T) {
		t.Parallel()

		o := outcome.Pipe(outcome.Success(2), func(v int) outcome.Outcome[int] {
			return outcome.Success(v * 10)
		})

		require.True(t, o.IsSuccess())
		assert.Equal(t, 20, o.Value())
	})

	t.Run("never invokes fn for failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		in := outcome.Failure[int](outcome.NotFound("user", 1))
		o := outcome.Pipe(in, func(v int) outcome.Outcome[int] {
			calls++
			return outcome.Success(v)
		}, "load user")

		assert.Zero(t, calls)
		assert.True(t, o.IsFailure())
		assert.Equal(t, in.Causes(), o.Causes())
		assert.Equal(t, in.Metadata().Timestamp, o.Metadata().Timestamp)
	})

	t.Run("never invokes fn for exceptions", func(t *testing.T) {
		t.Parallel()

		calls := 0
		in := outcome.Except[int](outcome.Database("select", nil))
		o := outcome.Pipe(in, func(v int) outcome.Outcome[string] {
			calls++
			return outcome.Success("x")
		})

		assert.Zero(t, calls)
		assert.True(t, o.IsException())
		assert.Equal(t, in.Exceptions(), o.Exceptions())
	})

	t.Run("description appends one trace step per transformation", func(t *testing.T) {
		t.Parallel()

		o := outcome.Success(1)
		o = outcome.Pipe(o, func(v int) outcome.Outcome[int] { return outcome.Success(v + 1) }, "step one")
		o = outcome.Pipe(o, func(v int) outcome.Outcome[int] { return outcome.Success(v + 1) }, "step two")

		trace := o.Metadata().Trace
		require.Len(t, trace, 2)
		assert.Equal(t, "step one", trace[0].Description)
		assert.Equal(t, "step two", trace[1].Description)
		assert.Contains(t, trace[1].Summary, "Success")
	})

	t.Run("without description no step is recorded", func(t *testing.T) {
		t.Parallel()

		o := outcome.Pipe(outcome.Success(1), func(v int) outcome.Outcome[int] {
			return outcome.Success(v)
		})
		assert.Empty(t, o.Metadata().Trace)
	})
}

func TestWithTrace(t *testing.T) {
	t.Parallel()

	t.Run("appends step without altering tag or value", func(t *testing.T) {
		t.Parallel()

		o := outcome.WithTrace(outcome.Success(42), "checkpoint")

		assert.True(t, o.IsSuccess())
		assert.Equal(t, 42, o.Value())
		require.Len(t, o.Metadata().Trace, 1)
		assert.Equal(t, "checkpoint", o.Metadata().Trace[0].Description)
	})

	t.Run("does not mutate the original outcome", func(t *testing.T) {
		t.Parallel()

		original := outcome.Success(1)
		traced := outcome.WithTrace(original, "one")
		_ = outcome.WithTrace(traced, "two")

		assert.Empty(t, original.Metadata().Trace)
		assert.Len(t, traced.Metadata().Trace, 1)
	})
}

func TestCannedConstructors(t *testing.T) {
	t.Parallel()

	t.Run("timeout embeds operation and duration", func(t *testing.T) {
		t.Parallel()

		exc := outcome.Timeout("fetch users", 1500*time.Millisecond)

		assert.Equal(t, "TimeoutError", exc.Name)
		assert.Contains(t, exc.Message, "fetch users")
		assert.Contains(t, exc.Message, "1.5s")
		assert.Equal(t, "fetch users", exc.Data["operation"])
		assert.Equal(t, int64(1500), exc.Data["timeout_ms"])
	})

	t.Run("causes and exceptions implement error", func(t *testing.T) {
		t.Parallel()

		var err error = outcome.NotFound("user", "42")
		assert.Equal(t, "NotFound: user not found", err.Error())

		err = outcome.Database("insert", nil)
		assert.Equal(t, "DatabaseError: database operation failed: insert", err.Error())
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("success renders JSON", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `Success: {"Name":"Alice"}`, outcome.Describe(outcome.Success(struct{ Name string }{"Alice"})))
	})

	t.Run("failure lists every cause", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[int](
			outcome.NotFound("user", 1),
			outcome.Forbidden(""),
		)
		assert.Equal(t, "Failure: NotFound: user not found, Forbidden: permission denied", outcome.Describe(o))
	})

	t.Run("exception renders name and message", func(t *testing.T) {
		t.Parallel()

		o := outcome.Except[int](outcome.Network("connection reset"))
		assert.Equal(t, "Exception: NetworkError: connection reset", outcome.Describe(o))
	})
}
