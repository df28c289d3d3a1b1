package stepper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterOrderAndDispose(t *testing.T) {
	var e Emitter[int]
	var got []string

	a := e.Subscribe(func(v int) { got = append(got, "a") })
	e.Subscribe(func(v int) { got = append(got, "b") })

	e.Emit(1)
	a.Dispose()
	a.Dispose()
	e.Emit(2)

	assert.Equal(t, []string{"a", "b", "b"}, got)
	assert.Equal(t, 1, e.Len())
}

func TestEmitterDisposeDuringEmit(t *testing.T) {
	var e Emitter[struct{}]
	calls := 0
	var second Subscription

	e.Subscribe(func(struct{}) { second.Dispose() })
	second = e.Subscribe(func(struct{}) { calls++ })

	e.Emit(struct{}{})

	assert.Zero(t, calls)
}

func TestSubscriptionsDisposeInReverse(t *testing.T) {
	var order []int
	var subs Subscriptions

	subs.Add(SubscriptionFunc(func() { order = append(order, 1) }))
	subs.Add(nil)
	subs.Add(SubscriptionFunc(func() { order = append(order, 2) }))
	assert.Equal(t, 2, subs.Len())

	subs.Dispose()
	subs.Dispose()

	assert.Equal(t, []int{2, 1}, order)
	assert.Zero(t, subs.Len())
}

func TestNilSubscriptionFunc(t *testing.T) {
	var f SubscriptionFunc
	f.Dispose()
}
