// Package schema validates untyped procedure input against declared rules,
// producing either a canonical parsed value or a structured validation
// failure. It is the parsing stage of the procedure execution pipeline.
//
// The contract is safe-parse: any input, including nil, yields a judgment
// rather than a panic. ParseArgs wraps the judgment in a Result whose
// failure side is an *ArgsError named "ValidatedArgsError" with a
// human-readable concatenation of every issue:
//
//	s := schema.Object(schema.Fields{
//	    "name":  schema.String().Required().Min(1),
//	    "limit": schema.Int().Default(20).Min(1).Max(100),
//	})
//
//	res := schema.ParseArgs(s, map[string]any{"name": "Alice"})
//	// res.Value() == map[string]any{"name": "Alice", "limit": 20}
//
//	res = schema.ParseArgs(s, nil)
//	// res.IsFailure() == true, res.Err().Name() == "ValidatedArgsError"
//
// The canonical output fills defaults, normalizes numbers per field kind
// (integral float64 input coerces to int for Int fields, matching JSON
// decoding), and drops undeclared keys.
//
// Any type implementing the Schema interface participates: the procedure
// runtime depends only on SafeParse, so applications can plug in their own
// schema systems.
package schema
