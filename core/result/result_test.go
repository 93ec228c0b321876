package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/callkit/core/result"
)

func TestResultTags(t *testing.T) {
	t.Parallel()

	t.Run("success carries exactly the success tag", func(t *testing.T) {
		t.Parallel()

		res := result.Success[int, error](42)

		assert.True(t, res.IsSuccess())
		assert.False(t, res.IsFailure())
		assert.Equal(t, 42, res.Value())
		assert.Nil(t, res.Err())
	})

	t.Run("failure carries exactly the failure tag", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		res := result.Failure[int, error](boom)

		assert.True(t, res.IsFailure())
		assert.False(t, res.IsSuccess())
		assert.Equal(t, boom, res.Err())
		assert.Zero(t, res.Value())
	})

	t.Run("zero value is a failure", func(t *testing.T) {
		t.Parallel()

		var res result.Result[int, error]
		assert.True(t, res.IsFailure())
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("dispatches success to the success handler", func(t *testing.T) {
		t.Parallel()

		out := result.Match(result.Success[int, error](7),
			func(v int) string { return "ok" },
			func(err error) string { return "fail" },
		)
		assert.Equal(t, "ok", out)
	})

	t.Run("dispatches failure to the failure handler", func(t *testing.T) {
		t.Parallel()

		out := result.Match(result.Failure[int, error](errors.New("nope")),
			func(v int) string { return "ok" },
			func(err error) string { return err.Error() },
		)
		assert.Equal(t, "nope", out)
	})
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	t.Run("map transforms success values", func(t *testing.T) {
		t.Parallel()

		res := result.Map(result.Success[int, error](21), func(v int) int { return v * 2 })
		require.True(t, res.IsSuccess())
		assert.Equal(t, 42, res.Value())
	})

	t.Run("map passes failures through and never calls fn", func(t *testing.T) {
		t.Parallel()

		calls := 0
		res := result.Map(result.Failure[int, error](errors.New("boom")), func(v int) int {
			calls++
			return v
		})

		assert.True(t, res.IsFailure())
		assert.Zero(t, calls)
	})

	t.Run("flatmap chains result-returning operations", func(t *testing.T) {
		t.Parallel()

		res := result.FlatMap(result.Success[int, error](10), func(v int) result.Result[string, error] {
			return result.Success[string, error]("ten")
		})
		require.True(t, res.IsSuccess())
		assert.Equal(t, "ten", res.Value())
	})

	t.Run("flatmap short-circuits failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		res := result.FlatMap(result.Failure[int, error](errors.New("boom")), func(v int) result.Result[string, error] {
			calls++
			return result.Success[string, error]("unreachable")
		})

		assert.True(t, res.IsFailure())
		assert.Zero(t, calls)
	})

	t.Run("orelse returns default on failure", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5, result.Failure[int, error](errors.New("x")).OrElse(5))
		assert.Equal(t, 9, result.Success[int, error](9).OrElse(5))
	})
}
