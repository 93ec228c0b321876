package stream

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/callkit/core/outcome"
)

// EventType distinguishes cache invalidation signals from mutation
// notifications.
type EventType string

const (
	TypeInvalidation EventType = "invalidation"
	TypeMutation     EventType = "mutation"
)

// Event is an immutable record published on a stream. Invalidation events
// populate Key/Tags/Data; mutation events populate Operation plus either
// Result or Causes/Errors depending on the outcome's disposition.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// Invalidation fields.
	Key  string         `json:"key,omitempty"`
	Tags []string       `json:"tags,omitempty"`
	Data map[string]any `json:"data,omitempty"`

	// Mutation fields.
	Operation string              `json:"operation,omitempty"`
	Result    any                 `json:"result,omitempty"`
	Causes    []outcome.Cause     `json:"causes,omitempty"`
	Errors    []outcome.Exception `json:"errors,omitempty"`
}

func newEvent(t EventType) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      t,
		Timestamp: time.Now(),
	}
}

// EventOption attaches optional fields to an invalidation event.
type EventOption func(*Event)

// WithTags tags the invalidation event for tag-overlap subscriptions.
func WithTags(tags ...string) EventOption {
	return func(e *Event) {
		e.Tags = append(e.Tags, tags...)
	}
}

// WithData attaches a free-form payload to the invalidation event.
func WithData(data map[string]any) EventOption {
	return func(e *Event) {
		e.Data = data
	}
}
