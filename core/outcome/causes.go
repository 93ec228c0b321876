package outcome

import "fmt"

// Canned cause constructors for common domain failures. Each stamps a
// conventional name so callers can branch on Cause.Name without comparing
// message strings.

// NotFound indicates a requested resource does not exist.
func NotFound(resource string, id any) Cause {
	return NewCause("NotFound", fmt.Sprintf("%s not found", resource), map[string]any{
		"resource": resource,
		"id":       id,
	})
}

// Validation indicates the provided input failed a business rule.
func Validation(message string, data map[string]any) Cause {
	return NewCause("ValidationError", message, data)
}

// Unauthorized indicates the request lacks valid credentials.
func Unauthorized(message string) Cause {
	if message == "" {
		message = "authentication required"
	}
	return NewCause("Unauthorized", message, nil)
}

// Forbidden indicates the caller lacks permission for the operation.
func Forbidden(message string) Cause {
	if message == "" {
		message = "permission denied"
	}
	return NewCause("Forbidden", message, nil)
}

// Conflict indicates a resource state conflict prevents the operation.
func Conflict(resource, message string) Cause {
	return NewCause("Conflict", message, map[string]any{
		"resource": resource,
	})
}

// PreconditionFailed indicates a required precondition does not hold.
func PreconditionFailed(message string) Cause {
	return NewCause("PreconditionFailed", message, nil)
}
