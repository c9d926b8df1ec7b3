package keybus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	bus := New()
	var got []string
	unsubscribe := bus.Subscribe(func(key string) bool {
		got = append(got, key)
		return key == "esc"
	})

	assert.True(t, bus.Dispatch("esc"))
	assert.False(t, bus.Dispatch("x"))
	assert.Equal(t, []string{"esc", "x"}, got)

	unsubscribe()
	assert.False(t, bus.Dispatch("esc"))
	assert.Equal(t, 0, bus.Len())
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	bus := New()
	first := bus.Subscribe(func(string) bool { return false })
	bus.Subscribe(func(string) bool { return false })

	first()
	first()
	assert.Equal(t, 1, bus.Len())
}

func TestHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	bus := New()
	var calls []string
	var unsubSelf, unsubOther func()

	unsubSelf = bus.Subscribe(func(key string) bool {
		calls = append(calls, "self")
		unsubSelf()
		unsubOther()
		return true
	})
	unsubOther = bus.Subscribe(func(key string) bool {
		calls = append(calls, "other")
		return true
	})

	assert.True(t, bus.Dispatch("esc"))
	// the second handler was removed before its turn
	assert.Equal(t, []string{"self"}, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestDispatchOrderFollowsSubscription(t *testing.T) {
	bus := New()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(func(string) bool {
			order = append(order, i)
			return false
		})
	}
	bus.Dispatch("k")
	assert.Equal(t, []int{0, 1, 2}, order)
}
