// Package stream provides an in-memory publish/subscribe bus for cache
// invalidation signals and mutation notifications, with a bounded FIFO
// event history.
//
// The stream is single-process and dispatches synchronously: a publish
// calls every matching subscriber before returning, in subscription order,
// with no backpressure. A panicking subscriber is caught and logged and
// never blocks delivery to the others. Subscribers that need to do slow
// work should hand the event off to their own goroutine.
//
// # Publishing
//
//	s := stream.New(stream.WithMaxHistory(500))
//
//	s.Invalidate("users:1")
//	s.Invalidate("users:1", stream.WithTags("users"), stream.WithData(payload))
//	s.InvalidateMany("users:1", "users:2")
//	s.InvalidateByTag("users")
//
//	stream.NotifyMutation(s, "createUser", o) // o is an outcome.Outcome[T]
//
// # Subscribing
//
// Three match rules exist: exact key, tag overlap, and mutation operation
// membership (empty set = all mutations). Each subscription returns an
// idempotent unsubscribe closure:
//
//	unsub := s.Subscribe("users:1", dropFromCache)
//	defer unsub()
//
//	s.SubscribeByTags([]string{"users"}, dropTagged)
//	s.SubscribeToMutations([]string{"createUser"}, audit)
//
// # History
//
// Every published event lands in a bounded history (oldest evicted first)
// inspectable via History, useful for debugging which invalidations fired
// and for late-joining components to reconcile.
//
// Default returns a process-wide singleton for hosts that want zero wiring.
package stream
