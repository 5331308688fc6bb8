// Package pubsub provides a minimal, type-safe publish/subscribe mechanism
// for in-process, single-owner object graphs, with zero dependencies.
//
// A Publisher holds weak observations of subscription handles; each listener
// keeps the sole strong reference to its handle, so a listener leaves a
// publisher simply by releasing that reference. There is no unsubscribe call.
// Dead entries are purged lazily at the start of the next Publish.
//
// Delivery is synchronous and single-threaded: Publish invokes every live
// callback on the calling goroutine, in registration order, and returns when
// the last one has run. A callback may release its own subscription, release
// any other subscription, or subscribe a new one while a publication is in
// progress; dispatch iterates an independent snapshot, so none of these
// mutations can corrupt the pass. A subscription added mid-dispatch only
// receives future publications.
//
// Quick example:
//
//	pub := pubsub.New[string]()
//	sub := pubsub.NewSubscription(func(msg string) {
//	    // Handle msg...
//	})
//	pub.Subscribe(sub.Weak())
//	pub.Publish("hello")
//	sub.Release() // purged on the next Publish
//
// The package provides no thread safety. Concurrent calls to Subscribe or
// Publish on one Publisher require external locking.
package pubsub

// Callback is the uniform shape of a subscriber's event handler. It receives
// the published payload and returns nothing. Created once at subscription
// time, never mutated.
type Callback[T any] func(T)

// Subscriber is the public registration surface of a Publisher. Owners that
// want to keep Publish to themselves hand this interface to registrants
// instead of the concrete Publisher.
type Subscriber[T any] interface {
	// Subscribe registers a weak observation of a subscription handle for
	// future publications. Observations that are already expired are
	// silently ignored.
	Subscribe(Weak[T])
}

// Pair is a two-argument event payload for publishers whose signature has
// two parameters.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a Pair from its two arguments.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Triple is a three-argument event payload for publishers whose signature
// has three parameters.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf creates a Triple from its three arguments.
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
