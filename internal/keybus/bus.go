// Package keybus dispatches raw key events to scoped listeners.
package keybus

import "sync"

// Handler receives a key name such as "esc" or "enter" and reports whether
// it handled the key.
type Handler = func(key string) bool

// Bus fans key events out to subscribed handlers in subscription order.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[int]Handler)}
}

// Subscribe installs h and returns the function that removes it. The
// returned function is idempotent.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers key to every handler installed when the call began and
// reports whether any of them handled it. Handlers may unsubscribe
// themselves or others while running.
func (b *Bus) Dispatch(key string) bool {
	b.mu.Lock()
	snapshot := make([]Handler, 0, len(b.handlers))
	ids := make([]int, 0, len(b.handlers))
	for id := 0; id < b.nextID; id++ {
		if h, ok := b.handlers[id]; ok {
			snapshot = append(snapshot, h)
			ids = append(ids, id)
		}
	}
	b.mu.Unlock()

	handled := false
	for i, h := range snapshot {
		if !b.active(ids[i]) {
			continue
		}
		if h(key) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of installed handlers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

func (b *Bus) active(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.handlers[id]
	return ok
}
