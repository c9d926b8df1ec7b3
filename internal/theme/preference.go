package theme

import (
	"fmt"
	"strings"
)

// Preference is the user's tri-state theme choice.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// cycleOrder is the quick-toggle order; Next wraps around it.
var cycleOrder = []Preference{PreferenceLight, PreferenceDark, PreferenceSystem}

// Preferences returns all preferences in picker order.
func Preferences() []Preference {
	return append([]Preference(nil), cycleOrder...)
}

// ParsePreference converts stored or user-supplied text into a Preference.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown theme preference %q (expected light, dark or system)", s)
	}
	return p, nil
}

// Valid reports whether p is one of the three preferences.
func (p Preference) Valid() bool {
	switch p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return true
	default:
		return false
	}
}

// Next returns the preference after p in cycle order.
func (p Preference) Next() Preference {
	for i, candidate := range cycleOrder {
		if candidate == p {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return cycleOrder[0]
}

// Title returns the capitalised picker label.
func (p Preference) Title() string {
	switch p {
	case PreferenceDark:
		return "Dark"
	case PreferenceSystem:
		return "System"
	default:
		return "Light"
	}
}

func (p Preference) String() string {
	return string(p)
}

// Resolved is the concrete theme applied to the display.
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

func (r Resolved) String() string {
	return string(r)
}

// State is a consistent view of the resolver at one instant.
type State struct {
	// Hydrated is false until Mount has read the store and the environment.
	Hydrated    bool
	Preference  Preference
	Resolved    Resolved
	SystemKnown bool
}

// Dark reports whether the resolved theme is dark.
func (s State) Dark() bool {
	return s.Resolved == ResolvedDark
}

// Label is the resolved theme name, or "system" while not hydrated so the
// placeholder stays stable until the environment signal arrives.
func (s State) Label() string {
	if !s.Hydrated {
		return string(PreferenceSystem)
	}
	return string(s.Resolved)
}

// StatusLine is the device-panel caption describing the active theme.
func (s State) StatusLine() string {
	if !s.Hydrated {
		return "Detecting theme"
	}
	if s.Dark() {
		return "Dark mode theme active"
	}
	return "Light mode theme active"
}
