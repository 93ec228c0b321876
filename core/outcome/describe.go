package outcome

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Describe produces a one-line human-readable summary of the outcome,
// suitable for log lines and trace steps:
//
//	Success: {"id":"123","name":"Alice"}
//	Failure: NotFound: user not found, Forbidden: permission denied
//	Exception: DatabaseError: database operation failed: insert
func Describe[T any](o Outcome[T]) string {
	switch o.state {
	case stateFailure:
		return "Failure: " + joinErrors(len(o.causes), func(i int) string { return o.causes[i].Error() })
	case stateException:
		return "Exception: " + joinErrors(len(o.errs), func(i int) string { return o.errs[i].Error() })
	default:
		data, err := json.Marshal(o.value)
		if err != nil {
			return fmt.Sprintf("Success: %v", o.value)
		}
		return "Success: " + string(data)
	}
}

func joinErrors(n int, at func(int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = at(i)
	}
	return strings.Join(parts, ", ")
}
