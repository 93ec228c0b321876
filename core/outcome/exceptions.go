package outcome

import (
	"fmt"
	"time"
)

// Canned exception constructors for common system failures. These are the
// technical counterparts to the cause constructors: logged, generally not
// shown verbatim to end users.

// Internal indicates an unclassified internal error.
func Internal(message string) Exception {
	if message == "" {
		message = "internal error"
	}
	return NewException("InternalError", message, nil)
}

// Database indicates a database operation failed.
func Database(operation string, err error) Exception {
	data := map[string]any{"operation": operation}
	if err != nil {
		data["error"] = err.Error()
	}
	return NewException("DatabaseError", fmt.Sprintf("database operation failed: %s", operation), data)
}

// Network indicates a network operation failed.
func Network(message string) Exception {
	return NewException("NetworkError", message, nil)
}

// Timeout indicates an operation exceeded its time limit. Both the
// operation and the duration are embedded in the message and in Data.
func Timeout(operation string, d time.Duration) Exception {
	return NewException("TimeoutError", fmt.Sprintf("%s timed out after %s", operation, d), map[string]any{
		"operation":  operation,
		"timeout_ms": d.Milliseconds(),
	})
}

// NotImplemented indicates the requested functionality does not exist yet.
func NotImplemented(feature string) Exception {
	return NewException("NotImplemented", fmt.Sprintf("%s is not implemented", feature), map[string]any{
		"feature": feature,
	})
}
