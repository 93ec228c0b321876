package outcome_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/callkit/core/outcome"
	"github.com/dmitrymomot/callkit/core/result"
)

func TestFromResult(t *testing.T) {
	t.Parallel()

	t.Run("success lifts the value", func(t *testing.T) {
		t.Parallel()

		o := outcome.FromResult(result.Success[int, error](42))

		require.True(t, o.IsSuccess())
		assert.Equal(t, 42, o.Value())
	})

	t.Run("plain error becomes a generic exception", func(t *testing.T) {
		t.Parallel()

		o := outcome.FromResult(result.Failure[int, error](errors.New("boom")))

		require.True(t, o.IsException())
		require.Len(t, o.Exceptions(), 1)
		assert.Equal(t, "Error", o.Exceptions()[0].Name)
		assert.Equal(t, "boom", o.Exceptions()[0].Message)
	})

	t.Run("exception error keeps its identity", func(t *testing.T) {
		t.Parallel()

		exc := outcome.Database("insert", errors.New("deadlock"))
		o := outcome.FromResult(result.Failure[int, error](exc))

		require.True(t, o.IsException())
		assert.Equal(t, exc, o.Exceptions()[0])
	})

	t.Run("cause error converts to an exception, never a failure", func(t *testing.T) {
		t.Parallel()

		cause := outcome.NotFound("user", "42")
		o := outcome.FromResult(result.Failure[int, error](cause))

		require.True(t, o.IsException())
		assert.False(t, o.IsFailure())
		assert.Equal(t, "NotFound", o.Exceptions()[0].Name)
		assert.Equal(t, cause.Message, o.Exceptions()[0].Message)
	})
}

func TestToResult(t *testing.T) {
	t.Parallel()

	t.Run("success collapses to a success result", func(t *testing.T) {
		t.Parallel()

		res := outcome.ToResult(outcome.Success("v"))

		require.True(t, res.IsSuccess())
		assert.Equal(t, "v", res.Value())
	})

	t.Run("failure collapses to the first cause only", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[string](
			outcome.Validation("name required", nil),
			outcome.Validation("email required", nil),
		)
		res := outcome.ToResult(o)

		require.True(t, res.IsFailure())
		var exc outcome.Exception
		require.ErrorAs(t, res.Err(), &exc)
		assert.Equal(t, "ValidationError", exc.Name)
		assert.Equal(t, "name required", exc.Message)
	})

	t.Run("exception carries through the first error", func(t *testing.T) {
		t.Parallel()

		exc := outcome.Network("connection refused")
		res := outcome.ToResult(outcome.Except[string](exc, outcome.Internal("")))

		require.True(t, res.IsFailure())
		assert.Equal(t, error(exc), res.Err())
	})

	t.Run("round trip loses the domain tag", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[int](outcome.NotFound("user", 1))
		back := outcome.FromResult(outcome.ToResult(o))

		assert.True(t, back.IsException())
	})
}
