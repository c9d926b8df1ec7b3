package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps the preference in process. Used by tests and by the
// dashboard when no preference file is configured.
type MemoryStore struct {
	mu     sync.Mutex
	value  string
	writes int
}

// NewMemoryStore returns a store seeded with value.
func NewMemoryStore(value string) *MemoryStore {
	return &MemoryStore{value: value}
}

func (s *MemoryStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemoryStore) Save(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.writes++
	return nil
}

// Writes returns how many times Save was called.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
