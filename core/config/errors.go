package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParseFailed is returned when environment parsing fails, typically
	// due to a missing required variable or a malformed value.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
