package pubsub

// Publisher dispatches typed events to an ordered collection of weak
// subscription observations. The zero value is ready to use; New adds
// configuration.
//
// Publisher exposes both Subscribe and Publish. To restrict who may trigger
// dispatch, an owning type embeds the Publisher unexported and hands out
// only the Subscriber interface; arbitrary holders can then register but
// never fire. See the package example.
type Publisher[T any] struct {
	subs    []Weak[T]
	recovery func(recovered any)
}

// Publisher implements Subscriber.
var _ Subscriber[int] = (*Publisher[int])(nil)

// New creates a Publisher with optional configuration.
func New[T any](opts ...Option[T]) *Publisher[T] {
	p := &Publisher[T]{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subscribe registers a weak observation for future publications. An
// observation that is already expired is silently ignored; otherwise it is
// appended, and registration order determines dispatch order.
//
// Subscribe does not de-duplicate: registering observations of the same
// handle twice yields two dispatches per publication. Calling Subscribe from
// inside a callback during dispatch is safe, but the new entry only receives
// publications after the current one.
func (p *Publisher[T]) Subscribe(w Weak[T]) {
	if w.Expired() {
		return
	}
	p.subs = append(p.subs, w)
}

// Publish delivers ev to every currently-live subscriber, in registration
// order, then returns.
//
// Expired entries are purged first, then dispatch walks an independent
// snapshot of the survivors. Entries that expire after the snapshot is
// taken, including by the hand of an earlier callback in the same pass, are
// skipped and removed by the next Publish.
//
// A panicking callback propagates to the caller unless WithRecovery is set.
// Calling Publish again on the same Publisher from inside a callback has no
// defined ordering.
func (p *Publisher[T]) Publish(ev T) {
	p.purge()

	// Independent copy: callbacks may mutate p.subs mid-dispatch.
	snapshot := make([]Weak[T], len(p.subs))
	copy(snapshot, p.subs)

	for _, w := range snapshot {
		p.dispatch(w, ev)
	}
}

// Len returns the number of entries currently held, including any that
// expired since the last Publish. Cleanup is lazy, so this can exceed the
// live subscriber count by up to one publication cycle.
func (p *Publisher[T]) Len() int {
	return len(p.subs)
}

// purge compacts the sequence in place, dropping expired entries and
// preserving relative order. Vacated tail slots are zeroed so purged handles
// are not pinned by the backing array.
func (p *Publisher[T]) purge() {
	live := p.subs[:0]
	for _, w := range p.subs {
		if !w.Expired() {
			live = append(live, w)
		}
	}
	for i := len(live); i < len(p.subs); i++ {
		p.subs[i] = Weak[T]{}
	}
	p.subs = live
}

// dispatch invokes one snapshot entry, skipping it silently if the handle
// expired after the snapshot was taken. The pin taken here keeps a callback
// valid even if it releases its own subscription mid-call.
func (p *Publisher[T]) dispatch(w Weak[T], ev T) {
	fn, unpin, ok := w.acquire()
	if !ok {
		return
	}
	defer unpin()

	if p.recovery != nil {
		defer func() {
			if r := recover(); r != nil {
				p.recovery(r)
			}
		}()
	}
	fn(ev)
}
