package outcome

import (
	"fmt"
	"runtime"
	"strings"
)

// callsite returns the first stack frame outside this package, formatted as
// "file:line". Best effort: returns an empty string if no such frame is
// found within the inspected depth.
func callsite() string {
	const maxDepth = 16

	pcs := make([]uintptr, maxDepth)
	// Skip runtime.Callers and callsite itself.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "/core/outcome.") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}
