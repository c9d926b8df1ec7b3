// Package overlay manages the open/closed lifecycle of a modal panel with
// keyboard and backdrop dismissal.
package overlay

import "sync"

// EscapeKey is the key name that dismisses an open overlay.
const EscapeKey = "esc"

// KeySource installs key listeners. keybus.Bus satisfies it.
type KeySource interface {
	Subscribe(h func(key string) bool) (unsubscribe func())
}

// Target identifies where a pointer event landed.
type Target int

const (
	// TargetBackdrop is anywhere outside the panel content.
	TargetBackdrop Target = iota
	// TargetPanel is inside the panel content.
	TargetPanel
)

// Overlay is a single modal panel. While open it holds exactly one Escape
// listener on its key source; closing or tearing down releases it.
type Overlay struct {
	keys KeySource

	mu          sync.Mutex
	open        bool
	unsubscribe func()
	onChange    func(open bool)
}

// New returns a closed overlay listening on keys.
func New(keys KeySource) *Overlay {
	return &Overlay{keys: keys}
}

// OnChange registers fn to be called after each open/closed transition.
func (o *Overlay) OnChange(fn func(open bool)) {
	o.mu.Lock()
	o.onChange = fn
	o.mu.Unlock()
}

// Open shows the overlay and installs the Escape listener. Opening an open
// overlay does nothing.
func (o *Overlay) Open() {
	o.mu.Lock()
	if o.open {
		o.mu.Unlock()
		return
	}
	o.open = true
	if o.keys != nil {
		o.unsubscribe = o.keys.Subscribe(o.handleKey)
	}
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(true)
	}
}

// Close hides the overlay and removes the Escape listener. Closing a closed
// overlay does nothing.
func (o *Overlay) Close() {
	o.mu.Lock()
	if !o.open {
		o.mu.Unlock()
		return
	}
	o.open = false
	o.releaseLocked()
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(false)
	}
}

// Toggle opens a closed overlay and closes an open one.
func (o *Overlay) Toggle() {
	if o.IsOpen() {
		o.Close()
		return
	}
	o.Open()
}

// IsOpen reports whether the overlay is shown.
func (o *Overlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// HandlePointer routes a click. Backdrop clicks close an open overlay; clicks
// on the panel are contained and never reach the backdrop. It reports whether
// the overlay consumed the event.
func (o *Overlay) HandlePointer(target Target) bool {
	if !o.IsOpen() {
		return false
	}
	if target == TargetPanel {
		return true
	}
	o.Close()
	return true
}

// Teardown releases the key listener without notifying OnChange. Call it when
// the owning view goes away.
func (o *Overlay) Teardown() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = false
	o.releaseLocked()
}

func (o *Overlay) handleKey(key string) bool {
	if key != EscapeKey || !o.IsOpen() {
		return false
	}
	o.Close()
	return true
}

func (o *Overlay) releaseLocked() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}
