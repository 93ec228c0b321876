package schema

import (
	"fmt"

	"github.com/dmitrymomot/callkit/core/result"
)

// Issue describes one validation problem found while parsing input.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Schema is the safe-parse contract: it accepts unknown input (including
// nil) and returns either the canonical parsed value or the structured
// issues that rejected it. Implementations must not panic on any input.
//
// The canonical value is the schema's transformed output: defaults filled,
// numeric types normalized, undeclared keys dropped.
type Schema interface {
	SafeParse(input any) (any, []Issue)
}

// ParseArgs validates untyped input against a schema and returns a Result.
// On acceptance the result carries the schema's canonical value. On
// rejection it carries an *ArgsError aggregating every issue. ParseArgs
// never panics: a misbehaving schema implementation is caught and converted
// to a failure.
//
// Example:
//
//	s := schema.Object(schema.Fields{
//	    "name": schema.String().Required(),
//	})
//	res := schema.ParseArgs(s, map[string]any{"name": "Alice"})
//	res.IsSuccess() // true
func ParseArgs(s Schema, input any) (res result.Result[any, *ArgsError]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Failure[any, *ArgsError](&ArgsError{
				Issues: []Issue{{Message: fmt.Sprintf("schema panicked: %v", r)}},
			})
		}
	}()

	value, issues := s.SafeParse(input)
	if len(issues) > 0 {
		return result.Failure[any, *ArgsError](&ArgsError{Issues: issues})
	}
	return result.Success[any, *ArgsError](value)
}
