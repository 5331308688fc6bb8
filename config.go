package pubsub

// Option configures a Publisher.
type Option[T any] func(*Publisher[T])

// WithCapacity preallocates space for n subscriptions. Only useful when the
// expected subscriber count is known up front; the sequence grows as needed
// either way.
func WithCapacity[T any](n int) Option[T] {
	return func(p *Publisher[T]) {
		if n > 0 && p.subs == nil {
			p.subs = make([]Weak[T], 0, n)
		}
	}
}

// WithRecovery isolates subscribers from each other's panics. Each dispatch
// invocation is individually recovered and handler receives the recovered
// value, so one misbehaving subscriber cannot abort delivery to the rest of
// the snapshot. By default no recovery happens and a panic propagates to
// Publish's caller.
func WithRecovery[T any](handler func(recovered any)) Option[T] {
	return func(p *Publisher[T]) {
		p.recovery = handler
	}
}
