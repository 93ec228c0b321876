package schema

import (
	"fmt"
	"regexp"
	"sort"
)

// fieldKind identifies the primitive type a field accepts.
type fieldKind uint8

const (
	kindAny fieldKind = iota
	kindString
	kindInt
	kindFloat
	kindBool
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInt:
		return "integer"
	case kindFloat:
		return "number"
	case kindBool:
		return "boolean"
	default:
		return "any"
	}
}

// Fields declares an object schema's fields by name.
type Fields map[string]*Field

// Field is a declarative rule set for one object field. Build it with the
// typed constructors and chain rule methods:
//
//	schema.String().Required().Min(3).Pattern(`^[a-z]+$`)
//	schema.Int().Default(10).Min(1).Max(100)
//
// A Field is configured once at schema construction and read-only
// afterwards.
type Field struct {
	kind       fieldKind
	required   bool
	hasDefault bool
	def        any
	hasMin     bool
	min        float64
	hasMax     bool
	max        float64
	oneOf      []any
	pattern    *regexp.Regexp
}

// String declares a string field.
func String() *Field { return &Field{kind: kindString} }

// Int declares an integer field. Float input with an integral value is
// coerced (JSON numbers decode as float64).
func Int() *Field { return &Field{kind: kindInt} }

// Float declares a numeric field. Integer input is widened to float64.
func Float() *Field { return &Field{kind: kindFloat} }

// Bool declares a boolean field.
func Bool() *Field { return &Field{kind: kindBool} }

// Any declares a field that accepts any value as-is.
func Any() *Field { return &Field{kind: kindAny} }

// Required marks the field as mandatory. A field with a default is never
// missing, so Required and Default together behave like Default alone.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

// Default sets the value used when the field is absent from the input.
func (f *Field) Default(v any) *Field {
	f.hasDefault = true
	f.def = v
	return f
}

// Min constrains the minimum: string length for string fields, numeric
// value for int/float fields.
func (f *Field) Min(n float64) *Field {
	f.hasMin = true
	f.min = n
	return f
}

// Max constrains the maximum: string length for string fields, numeric
// value for int/float fields.
func (f *Field) Max(n float64) *Field {
	f.hasMax = true
	f.max = n
	return f
}

// OneOf restricts the field to an enumerated set of values.
func (f *Field) OneOf(values ...any) *Field {
	f.oneOf = values
	return f
}

// Pattern constrains string fields to match the given regular expression.
// Panics on an invalid expression; patterns are schema-construction-time
// constants.
func (f *Field) Pattern(expr string) *Field {
	f.pattern = regexp.MustCompile(expr)
	return f
}

// Object builds a schema validating a map of named fields. The canonical
// output is a map[string]any containing declared fields only, with defaults
// filled and numbers normalized per field kind.
//
// Example:
//
//	s := schema.Object(schema.Fields{
//	    "name":  schema.String().Required(),
//	    "limit": schema.Int().Default(20).Min(1).Max(100),
//	})
func Object(fields Fields) Schema {
	return &objectSchema{fields: fields}
}

type objectSchema struct {
	fields Fields
}

// SafeParse implements Schema.
func (s *objectSchema) SafeParse(input any) (any, []Issue) {
	if input == nil {
		return nil, []Issue{{Message: "expected object, got null"}}
	}

	in, ok := input.(map[string]any)
	if !ok {
		return nil, []Issue{{Message: fmt.Sprintf("expected object, got %T", input)}}
	}

	// Deterministic field order keeps issue lists stable across runs.
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []Issue
	out := make(map[string]any, len(s.fields))

	for _, name := range names {
		field := s.fields[name]

		raw, present := in[name]
		if !present || raw == nil {
			if field.hasDefault {
				out[name] = field.def
				continue
			}
			if field.required {
				issues = append(issues, Issue{Path: name, Message: "is required"})
			}
			continue
		}

		value, fieldIssues := field.validate(name, raw)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		out[name] = value
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// validate checks one present value against the field's kind and rules,
// returning the canonical value.
func (f *Field) validate(name string, raw any) (any, []Issue) {
	value, ok := f.coerce(raw)
	if !ok {
		return nil, []Issue{{Path: name, Message: fmt.Sprintf("expected %s, got %T", f.kind, raw)}}
	}

	var issues []Issue

	switch v := value.(type) {
	case string:
		length := float64(len([]rune(v)))
		if f.hasMin && length < f.min {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at least %d characters", int(f.min))})
		}
		if f.hasMax && length > f.max {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at most %d characters", int(f.max))})
		}
		if f.pattern != nil && !f.pattern.MatchString(v) {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must match pattern %s", f.pattern)})
		}
	case int:
		if f.hasMin && float64(v) < f.min {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at least %d", int(f.min))})
		}
		if f.hasMax && float64(v) > f.max {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at most %d", int(f.max))})
		}
	case float64:
		if f.hasMin && v < f.min {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at least %v", f.min)})
		}
		if f.hasMax && v > f.max {
			issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be at most %v", f.max)})
		}
	}

	if len(f.oneOf) > 0 && !contains(f.oneOf, value) {
		issues = append(issues, Issue{Path: name, Message: fmt.Sprintf("must be one of %v", f.oneOf)})
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return value, nil
}

// coerce normalizes the raw value to the field kind's canonical Go type.
func (f *Field) coerce(raw any) (any, bool) {
	switch f.kind {
	case kindAny:
		return raw, true
	case kindString:
		s, ok := raw.(string)
		return s, ok
	case kindBool:
		b, ok := raw.(bool)
		return b, ok
	case kindInt:
		switch v := raw.(type) {
		case int:
			return v, true
		case int32:
			return int(v), true
		case int64:
			return int(v), true
		case float64:
			if v == float64(int(v)) {
				return int(v), true
			}
			return nil, false
		default:
			return nil, false
		}
	case kindFloat:
		switch v := raw.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}

func contains(values []any, v any) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
