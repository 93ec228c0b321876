package stream

import "sync"

var (
	defaultOnce   sync.Once
	defaultStream *Stream
)

// Default returns the process-wide stream singleton, created on first use
// with default settings and alive for the process duration. Its history and
// subscriptions are cleared only by explicit caller action.
//
// Prefer an explicitly constructed Stream in anything but the smallest
// applications; the singleton exists for hosts that want zero wiring.
func Default() *Stream {
	defaultOnce.Do(func() {
		defaultStream = New()
	})
	return defaultStream
}
