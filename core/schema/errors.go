package schema

import "strings"

// ArgsErrorName is the stable name reported by ArgsError. Callers branch on
// this string to recognize argument validation failures across boundaries
// that only carry a name and a message.
const ArgsErrorName = "ValidatedArgsError"

// ArgsError aggregates every issue found while validating procedure
// arguments against a schema.
type ArgsError struct {
	Issues []Issue
}

// Name returns ArgsErrorName.
func (e *ArgsError) Name() string {
	return ArgsErrorName
}

// Error concatenates all issues into one human-readable message.
func (e *ArgsError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid arguments"
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
			continue
		}
		parts = append(parts, issue.Message)
	}
	return strings.Join(parts, "; ")
}
