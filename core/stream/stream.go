package stream

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/callkit/core/outcome"
	"github.com/dmitrymomot/callkit/pkg/logger"
)

// Stream is a single-process publish/subscribe bus signaling that cached
// data is stale, with a bounded FIFO event history. Dispatch is synchronous
// and has no backpressure: every publish calls matching subscribers in
// subscription order before returning. A subscriber panicking is caught and
// logged, never aborting delivery to the remaining subscribers; the
// publisher gets no delivery-completion guarantee beyond that.
type Stream struct {
	mu         sync.RWMutex
	maxHistory int
	history    []Event
	subs       map[string]*subscription
	order      []string
	logger     *slog.Logger
}

// subscription is one active match rule. Exactly one of key/tags/mutation
// matching applies, fixed at subscribe time.
type subscription struct {
	id         string
	eventType  EventType
	key        string
	tags       []string
	operations []string
	fn         func(Event)
}

// Option configures a Stream at construction time.
type Option func(*Stream)

// WithMaxHistory bounds the event history. Values below 1 are ignored.
func WithMaxHistory(n int) Option {
	return func(s *Stream) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithLogger sets the logger used for subscriber failure reporting.
// If not set, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(s *Stream) {
		s.logger = log
	}
}

// New creates a stream with the given options.
//
// Example:
//
//	s := stream.New(stream.WithMaxHistory(500))
//	unsubscribe := s.Subscribe("users:1", func(e stream.Event) {
//	    cache.Drop(e.Key)
//	})
//	defer unsubscribe()
//
//	s.Invalidate("users:1")
func New(opts ...Option) *Stream {
	s := &Stream{
		maxHistory: DefaultConfig().MaxHistorySize,
		subs:       make(map[string]*subscription),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a stream from an env-loadable Config.
func NewFromConfig(cfg Config, opts ...Option) *Stream {
	return New(append([]Option{WithMaxHistory(cfg.MaxHistorySize)}, opts...)...)
}

// Invalidate publishes a cache invalidation event for the key, records it
// in the bounded history, and synchronously delivers it to every matching
// subscription.
func (s *Stream) Invalidate(key string, opts ...EventOption) Event {
	e := newEvent(TypeInvalidation)
	e.Key = key
	for _, opt := range opts {
		opt(&e)
	}
	s.publish(e)
	return e
}

// InvalidateMany publishes one invalidation event per key.
func (s *Stream) InvalidateMany(keys ...string) {
	for _, key := range keys {
		s.Invalidate(key)
	}
}

// InvalidateByTag publishes a keyless invalidation event carrying the tag,
// reaching tag-overlap subscriptions for that tag.
func (s *Stream) InvalidateByTag(tag string, opts ...EventOption) Event {
	return s.Invalidate("", append([]EventOption{WithTags(tag)}, opts...)...)
}

// NotifyMutation publishes a mutation event capturing the outcome's
// disposition: the success value, or the domain causes, or the system
// errors. It is a free function because methods cannot introduce type
// parameters.
func NotifyMutation[T any](s *Stream, operation string, o outcome.Outcome[T]) Event {
	e := newEvent(TypeMutation)
	e.Operation = operation
	switch {
	case o.IsSuccess():
		e.Result = o.Value()
	case o.IsFailure():
		e.Causes = o.Causes()
	default:
		e.Errors = o.Exceptions()
	}
	s.publish(e)
	return e
}

// Subscribe delivers invalidation events whose key exactly matches.
// The returned closure removes the subscription; calling it more than once
// is a no-op.
func (s *Stream) Subscribe(key string, fn func(Event)) func() {
	return s.addSubscription(&subscription{
		eventType: TypeInvalidation,
		key:       key,
		fn:        fn,
	})
}

// SubscribeByTags delivers invalidation events sharing at least one tag
// with the subscription.
func (s *Stream) SubscribeByTags(tags []string, fn func(Event)) func() {
	return s.addSubscription(&subscription{
		eventType: TypeInvalidation,
		tags:      tags,
		fn:        fn,
	})
}

// SubscribeToMutations delivers mutation events whose operation is in the
// given set. An empty set matches every mutation.
func (s *Stream) SubscribeToMutations(operations []string, fn func(Event)) func() {
	return s.addSubscription(&subscription{
		eventType:  TypeMutation,
		operations: operations,
		fn:         fn,
	})
}

// History returns a copy of the retained events, oldest first.
func (s *Stream) History() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory drops every retained event. Active subscriptions are
// unaffected.
func (s *Stream) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *Stream) addSubscription(sub *subscription) func() {
	sub.id = uuid.New().String()

	s.mu.Lock()
	s.subs[sub.id] = sub
	s.order = append(s.order, sub.id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.removeSubscription(sub.id)
		})
	}
}

func (s *Stream) removeSubscription(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, subID := range s.order {
		if subID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// publish appends to the bounded history and fans the event out to every
// matching subscription in subscription order.
func (s *Stream) publish(e Event) {
	s.mu.Lock()
	s.history = append(s.history, e)
	if over := len(s.history) - s.maxHistory; over > 0 {
		s.history = append([]Event(nil), s.history[over:]...)
	}

	matched := make([]*subscription, 0, len(s.order))
	for _, id := range s.order {
		sub := s.subs[id]
		if sub != nil && sub.matches(e) {
			matched = append(matched, sub)
		}
	}
	s.mu.Unlock()

	// Dispatch outside the lock so subscribers may publish or unsubscribe.
	for _, sub := range matched {
		s.deliver(sub, e)
	}
}

func (s *Stream) deliver(sub *subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("event subscriber panicked",
				logger.Component("stream"),
				logger.CacheKey(e.Key),
				logger.Operation(e.Operation),
				slog.Any("panic", r))
		}
	}()
	sub.fn(e)
}

func (sub *subscription) matches(e Event) bool {
	if sub.eventType != e.Type {
		return false
	}

	switch e.Type {
	case TypeMutation:
		if len(sub.operations) == 0 {
			return true
		}
		for _, op := range sub.operations {
			if op == e.Operation {
				return true
			}
		}
		return false
	default:
		if sub.key != "" {
			return sub.key == e.Key
		}
		for _, want := range sub.tags {
			for _, have := range e.Tags {
				if want == have {
					return true
				}
			}
		}
		return false
	}
}
