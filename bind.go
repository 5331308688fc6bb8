package pubsub

// Bind adapts a method expression and its receiver into a new subscription.
// The method's parameter must match the publisher's payload type exactly;
// mismatches are compile errors. Binding cannot fail and has no side effect
// beyond allocating the handle.
//
//	sub := pubsub.Bind((*Client).OnOrder, client)
//
// Go method values already bind their receiver, so
// NewSubscription(client.OnOrder) is equivalent; Bind exists for method
// expressions and for call sites that pick the method separately from the
// receiver.
func Bind[R, T any](method func(R, T), recv R) *Subscription[T] {
	return NewSubscription(func(ev T) {
		method(recv, ev)
	})
}

// Bind2 adapts a two-argument method expression into a subscription for a
// Pair payload, unpacking the tuple at invocation time.
func Bind2[R, A, B any](method func(R, A, B), recv R) *Subscription[Pair[A, B]] {
	return NewSubscription(func(ev Pair[A, B]) {
		method(recv, ev.First, ev.Second)
	})
}

// Bind3 adapts a three-argument method expression into a subscription for a
// Triple payload.
func Bind3[R, A, B, C any](method func(R, A, B, C), recv R) *Subscription[Triple[A, B, C]] {
	return NewSubscription(func(ev Triple[A, B, C]) {
		method(recv, ev.First, ev.Second, ev.Third)
	})
}

// BindFunc2 adapts a free two-argument function into a subscription for a
// Pair payload.
func BindFunc2[A, B any](fn func(A, B)) *Subscription[Pair[A, B]] {
	return NewSubscription(func(ev Pair[A, B]) {
		fn(ev.First, ev.Second)
	})
}

// BindFunc3 adapts a free three-argument function into a subscription for a
// Triple payload.
func BindFunc3[A, B, C any](fn func(A, B, C)) *Subscription[Triple[A, B, C]] {
	return NewSubscription(func(ev Triple[A, B, C]) {
		fn(ev.First, ev.Second, ev.Third)
	})
}
