// Package transient models a short-lived busy flag that resets itself after a
// fixed cool-down, used by the simulated report export.
package transient

import (
	"sync"
	"time"
)

// DefaultCooldown is how long an export stays busy.
const DefaultCooldown = 1400 * time.Millisecond

// Option configures an Action.
type Option func(*Action)

// OnReset registers a callback run once per completed cool-down, after busy
// has returned to false. It runs on the clock's goroutine.
func OnReset(fn func()) Option {
	return func(a *Action) {
		a.onReset = fn
	}
}

// Action is a debounced busy flag with timed auto-reset.
//
// At most one reset timer is pending. Cancel releases it and ends the
// action's life: the pending reset never fires and later triggers are
// ignored, so busy keeps whatever value it had at teardown.
type Action struct {
	clock    Clock
	cooldown time.Duration
	onReset  func()

	mu        sync.Mutex
	busy      bool
	cancelled bool
	timer     Timer
	// generation invalidates a callback whose timer could not be stopped.
	generation uint64
}

// New returns an idle Action. A nil clock uses SystemClock and a non-positive
// cooldown uses DefaultCooldown.
func New(clock Clock, cooldown time.Duration, opts ...Option) *Action {
	if clock == nil {
		clock = SystemClock{}
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	a := &Action{clock: clock, cooldown: cooldown}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Trigger starts the action. It reports false, doing nothing, while busy or
// after Cancel.
func (a *Action) Trigger() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.busy || a.cancelled {
		return false
	}
	a.busy = true
	a.generation++
	gen := a.generation
	a.timer = a.clock.AfterFunc(a.cooldown, func() { a.expire(gen) })
	return true
}

func (a *Action) expire(gen uint64) {
	a.mu.Lock()
	if a.cancelled || gen != a.generation || !a.busy {
		a.mu.Unlock()
		return
	}
	a.busy = false
	a.timer = nil
	onReset := a.onReset
	a.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}

// Busy reports whether the action is in flight.
func (a *Action) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Pending reports whether a reset timer is outstanding.
func (a *Action) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// Cooldown returns the reset delay.
func (a *Action) Cooldown() time.Duration {
	return a.cooldown
}

// Cancel tears the action down. It is safe to call more than once.
func (a *Action) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelled = true
	a.generation++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
