package pubsub

// handle is the shared state behind a Subscription and its weak views.
// The callback is callable while at least one strong reference exists.
type handle[T any] struct {
	fn   Callback[T]
	refs int // strong reference count; 0 means expired
}

// release drops one strong reference. At zero the callback is cleared so
// anything captured by its closure can be collected.
func (h *handle[T]) release() {
	h.refs--
	if h.refs == 0 {
		h.fn = nil
	}
}

// Subscription is the strong, owning reference to a callback. The listener
// that created it controls the callback's lifetime: publishers only ever
// hold weak observations, and the callback stays invocable exactly as long
// as the subscription has not been released.
type Subscription[T any] struct {
	h        *handle[T]
	released bool
}

// NewSubscription wraps fn in a fresh subscription handle owned by the
// caller. Pass Weak() to a publisher to register; keep the Subscription
// itself for as long as the callback should stay live.
func NewSubscription[T any](fn Callback[T]) *Subscription[T] {
	return &Subscription[T]{h: &handle[T]{fn: fn, refs: 1}}
}

// Release drops the owning reference. Once no strong reference remains the
// handle is expired: publishers skip it and purge it on their next Publish.
// Safe to call more than once, and safe on a nil receiver. Releasing from
// inside the subscription's own callback is allowed; the in-flight
// invocation completes normally and no future invocation occurs.
func (s *Subscription[T]) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.h.release()
}

// Weak returns a non-owning observation of the handle, suitable for
// Subscriber.Subscribe. It never extends the handle's lifetime.
func (s *Subscription[T]) Weak() Weak[T] {
	return Weak[T]{h: s.h}
}

// Weak is a non-owning observation of a subscription handle. It can be
// tested for liveness and momentarily pinned during dispatch, but does not
// keep the callback alive. The zero value is expired.
type Weak[T any] struct {
	h *handle[T]
}

// Expired reports whether the observed handle no longer has any strong
// reference.
func (w Weak[T]) Expired() bool {
	return w.h == nil || w.h.refs == 0
}

// acquire pins the handle for the duration of one invocation, returning its
// callback and a func that drops the pin. The pin counts as a strong
// reference, so a callback that releases its own subscription mid-call stays
// valid until the dispatch pass drops the pin.
func (w Weak[T]) acquire() (Callback[T], func(), bool) {
	if w.Expired() {
		return nil, nil, false
	}
	w.h.refs++
	return w.h.fn, w.h.release, true
}
