package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	total int
	last  string
}

func (c *counter) add(n int) {
	c.total += n
}

func (c *counter) record(n int, label string) {
	c.total += n
	c.last = label
}

func (c *counter) recordAll(n int, label string, again bool) {
	c.total += n
	c.last = label
	if again {
		c.total += n
	}
}

func TestBindInvokesMethodOnReceiver(t *testing.T) {
	c := &counter{}
	sub := Bind((*counter).add, c)

	pub := New[int]()
	pub.Subscribe(sub.Weak())
	pub.Publish(3)
	pub.Publish(4)

	assert.Equal(t, 7, c.total)
}

func TestBind2UnpacksPair(t *testing.T) {
	c := &counter{}
	sub := Bind2((*counter).record, c)

	pub := New[Pair[int, string]]()
	pub.Subscribe(sub.Weak())
	pub.Publish(PairOf(5, "x"))

	assert.Equal(t, 5, c.total)
	assert.Equal(t, "x", c.last)
}

func TestBind3UnpacksTriple(t *testing.T) {
	c := &counter{}
	sub := Bind3((*counter).recordAll, c)

	pub := New[Triple[int, string, bool]]()
	pub.Subscribe(sub.Weak())
	pub.Publish(TripleOf(2, "y", true))

	assert.Equal(t, 4, c.total)
	assert.Equal(t, "y", c.last)
}

func TestBindFunc2(t *testing.T) {
	var gotA int
	var gotB string
	sub := BindFunc2(func(a int, b string) {
		gotA, gotB = a, b
	})

	pub := New[Pair[int, string]]()
	pub.Subscribe(sub.Weak())
	pub.Publish(PairOf(9, "z"))

	assert.Equal(t, 9, gotA)
	assert.Equal(t, "z", gotB)
}

func TestBindFunc3(t *testing.T) {
	var sum int
	sub := BindFunc3(func(a, b, c int) {
		sum = a + b + c
	})

	pub := New[Triple[int, int, int]]()
	pub.Subscribe(sub.Weak())
	pub.Publish(TripleOf(1, 2, 3))

	assert.Equal(t, 6, sum)
}

// TestBoundSubscriptionLifetime: the subscription handle, not the receiver,
// controls liveness of a bound callback.
func TestBoundSubscriptionLifetime(t *testing.T) {
	c := &counter{}
	sub := Bind((*counter).add, c)

	pub := New[int]()
	pub.Subscribe(sub.Weak())
	sub.Release()
	pub.Publish(10)

	assert.Equal(t, 0, c.total, "released binding must not be invoked")
}
