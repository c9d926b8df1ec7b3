// Package selector tracks the active time range of the dashboard.
package selector

import (
	"fmt"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
)

// Selector holds the active range key. The zero value is not usable; call New.
type Selector struct {
	repo    *dataset.Repository
	current dataset.RangeKey
}

// New returns a Selector starting on initial, backed by the default
// repository. An empty initial selects the default range.
func New(initial dataset.RangeKey) *Selector {
	return NewWithRepository(dataset.Default(), initial)
}

// NewWithRepository is New with an explicit repository.
func NewWithRepository(repo *dataset.Repository, initial dataset.RangeKey) *Selector {
	if initial == "" {
		initial = dataset.DefaultRange()
	}
	mustBeValid(initial)
	return &Selector{repo: repo, current: initial}
}

// Select makes key active and reports whether the active key changed.
// Reselecting the current key is a no-op.
func (s *Selector) Select(key dataset.RangeKey) bool {
	mustBeValid(key)
	if key == s.current {
		return false
	}
	s.current = key
	return true
}

// Current returns the active range key.
func (s *Selector) Current() dataset.RangeKey {
	return s.current
}

// Bundle returns the bundle for the active range.
func (s *Selector) Bundle() dataset.Bundle {
	return s.repo.Lookup(s.current)
}

func mustBeValid(key dataset.RangeKey) {
	if !key.Valid() {
		panic(fmt.Sprintf("selector: unknown range key %q", string(key)))
	}
}
