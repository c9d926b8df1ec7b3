package transient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSetsBusyUntilCooldown(t *testing.T) {
	clock := NewManualClock()
	a := New(clock, time.Second)

	require.True(t, a.Trigger())
	assert.True(t, a.Busy())

	clock.Advance(999 * time.Millisecond)
	assert.True(t, a.Busy())

	clock.Advance(time.Millisecond)
	assert.False(t, a.Busy())
	assert.False(t, a.Pending())
}

func TestRepeatedTriggerProducesOneReset(t *testing.T) {
	clock := NewManualClock()
	resets := 0
	a := New(clock, time.Second, OnReset(func() { resets++ }))

	assert.True(t, a.Trigger())
	clock.Advance(500 * time.Millisecond)
	assert.False(t, a.Trigger())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, resets)
	assert.False(t, a.Busy())
}

func TestTriggerAgainAfterReset(t *testing.T) {
	clock := NewManualClock()
	resets := 0
	a := New(clock, time.Second, OnReset(func() { resets++ }))

	require.True(t, a.Trigger())
	clock.Advance(time.Second)
	require.True(t, a.Trigger())
	clock.Advance(time.Second)

	assert.Equal(t, 2, resets)
}

func TestCancelPreventsReset(t *testing.T) {
	clock := NewManualClock()
	resets := 0
	a := New(clock, time.Second, OnReset(func() { resets++ }))

	require.True(t, a.Trigger())
	a.Cancel()
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 0, resets)
	// busy keeps its teardown value
	assert.True(t, a.Busy())
	assert.False(t, a.Trigger())

	a.Cancel()
}

func TestCancelIgnoresCallbackThatRacedStop(t *testing.T) {
	clock := NewManualClock()
	resets := 0
	a := New(clock, time.Second, OnReset(func() { resets++ }))
	require.True(t, a.Trigger())

	clock.mu.Lock()
	raced := clock.timers[0]
	clock.mu.Unlock()

	a.Cancel()
	// simulate the runtime having already started the callback
	raced.fn()

	assert.Equal(t, 0, resets)
	assert.True(t, a.Busy())
}

func TestCancelWhileIdle(t *testing.T) {
	a := New(NewManualClock(), time.Second)
	a.Cancel()
	assert.False(t, a.Busy())
	assert.False(t, a.Trigger())
}

func TestNewDefaults(t *testing.T) {
	a := New(nil, 0)
	assert.Equal(t, DefaultCooldown, a.Cooldown())
	assert.IsType(t, SystemClock{}, a.clock)
}

func TestSystemClockResets(t *testing.T) {
	done := make(chan struct{})
	a := New(SystemClock{}, 10*time.Millisecond, OnReset(func() { close(done) }))
	require.True(t, a.Trigger())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not fire")
	}
	assert.False(t, a.Busy())
}

func TestManualClockOrdersTimers(t *testing.T) {
	clock := NewManualClock()
	var order []int
	clock.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	stopped := clock.AfterFunc(time.Second, func() { order = append(order, 0) })
	clock.AfterFunc(time.Second, func() { order = append(order, 1) })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
	assert.Equal(t, 2, clock.Pending())

	clock.Advance(3 * time.Second)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 0, clock.Pending())
}
