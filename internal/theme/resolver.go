// Package theme resolves the light/dark/system preference into the theme the
// dashboard actually renders.
//
// A Resolver is the single source of truth for the preference. The quick
// toggle (Cycle) and the settings picker (Set) both funnel through one
// mutation path that writes the persisted store and notifies subscribers, so
// every affordance observes every change without being rebuilt.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
)

// ErrUnresolved is returned by mutations attempted before Mount.
var ErrUnresolved = errors.New("theme resolver not mounted")

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for fallbacks and write failures.
func WithLogger(logger ports.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver owns the theme preference and the environment-detected theme.
type Resolver struct {
	store    ports.PreferenceStore
	detector ports.EnvironmentDetector
	logger   ports.Logger

	// writeMu serialises mutations so store writes land in call order.
	writeMu sync.Mutex

	mu          sync.Mutex
	hydrated    bool
	preference  Preference
	systemDark  bool
	systemKnown bool
	nextSubID   int
	subscribers map[int]func(State)
}

// NewResolver returns an unmounted Resolver. detector may be nil, in which case
// the environment signal is treated as unavailable.
func NewResolver(store ports.PreferenceStore, detector ports.EnvironmentDetector, opts ...Option) *Resolver {
	r := &Resolver{
		store:       store,
		detector:    detector,
		logger:      logging.NewNoOpLogger(),
		preference:  PreferenceSystem,
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "theme_resolver")
	return r
}

// Mount reads the persisted preference and the environment signal. Missing,
// unreadable or invalid stored values fall back to system. Calling Mount
// again has no effect.
func (r *Resolver) Mount(ctx context.Context) State {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	r.mu.Lock()
	if r.hydrated {
		state := r.snapshotLocked()
		r.mu.Unlock()
		return state
	}
	r.mu.Unlock()

	preference := r.loadPreference(ctx)

	var dark, known bool
	if r.detector != nil {
		dark, known = r.detector.SystemTheme(ctx)
	}
	if !known {
		r.logger.Debug(ctx, "environment theme unavailable, system resolves to light")
	}

	r.mu.Lock()
	r.preference = preference
	r.systemDark = dark
	r.systemKnown = known
	r.hydrated = true
	state := r.snapshotLocked()
	subs := r.subscribersLocked()
	r.mu.Unlock()

	r.logger.Info(ctx, "theme resolved", "preference", string(state.Preference), "resolved", string(state.Resolved))
	notify(subs, state)
	return state
}

func (r *Resolver) loadPreference(ctx context.Context) Preference {
	if r.store == nil {
		return PreferenceSystem
	}
	raw, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Warn(ctx, "reading theme preference failed, using system", "error", err)
		return PreferenceSystem
	}
	if raw == "" {
		return PreferenceSystem
	}
	preference, err := ParsePreference(raw)
	if err != nil {
		r.logger.Warn(ctx, "stored theme preference invalid, using system", "value", raw)
		return PreferenceSystem
	}
	return preference
}

// Snapshot returns the current state.
func (r *Resolver) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Preference returns the current preference; system before Mount.
func (r *Resolver) Preference() Preference {
	return r.Snapshot().Preference
}

// Resolved returns the applied theme; light before Mount.
func (r *Resolver) Resolved() Resolved {
	return r.Snapshot().Resolved
}

// Cycle advances the preference light -> dark -> system -> light.
func (r *Resolver) Cycle(ctx context.Context) (State, error) {
	return r.apply(ctx, "cycle", func(current Preference) (Preference, error) {
		return current.Next(), nil
	})
}

// Set assigns the preference directly.
func (r *Resolver) Set(ctx context.Context, p Preference) (State, error) {
	return r.apply(ctx, "set", func(Preference) (Preference, error) {
		if !p.Valid() {
			return "", fmt.Errorf("unknown theme preference %q", string(p))
		}
		return p, nil
	})
}

// apply is the only path that changes the preference. The in-memory state
// changes first; a failed store write is reported but not rolled back.
func (r *Resolver) apply(ctx context.Context, op string, next func(Preference) (Preference, error)) (State, error) {
	r.writeMu.Lock()

	r.mu.Lock()
	if !r.hydrated {
		state := r.snapshotLocked()
		r.mu.Unlock()
		r.writeMu.Unlock()
		return state, ErrUnresolved
	}
	preference, err := next(r.preference)
	if err != nil {
		state := r.snapshotLocked()
		r.mu.Unlock()
		r.writeMu.Unlock()
		return state, err
	}
	r.preference = preference
	state := r.snapshotLocked()
	subs := r.subscribersLocked()
	r.mu.Unlock()

	var saveErr error
	if r.store != nil {
		saveErr = r.store.Save(ctx, string(preference))
	}
	r.writeMu.Unlock()

	if saveErr != nil {
		r.logger.Error(ctx, "persisting theme preference failed", "op", op, "preference", string(preference), "error", saveErr)
		saveErr = fmt.Errorf("persist theme preference: %w", saveErr)
	} else {
		r.logger.Debug(ctx, "theme preference changed", "op", op, "preference", string(preference), "resolved", string(state.Resolved))
	}

	notify(subs, state)
	return state, saveErr
}

// UpdateSystem records a new environment signal. It only changes the
// resolved theme while the preference is system.
func (r *Resolver) UpdateSystem(dark bool) {
	r.mu.Lock()
	before := r.snapshotLocked()
	r.systemDark = dark
	r.systemKnown = true
	after := r.snapshotLocked()
	var subs []func(State)
	if after != before {
		subs = r.subscribersLocked()
	}
	r.mu.Unlock()

	notify(subs, after)
}

// Subscribe registers fn to be called with the new state after every change.
// The returned function removes the subscription and may be called more than
// once.
func (r *Resolver) Subscribe(fn func(State)) func() {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, id)
			r.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (r *Resolver) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

func (r *Resolver) snapshotLocked() State {
	if !r.hydrated {
		return State{Preference: PreferenceSystem, Resolved: ResolvedLight}
	}
	return State{
		Hydrated:    true,
		Preference:  r.preference,
		Resolved:    r.resolveLocked(),
		SystemKnown: r.systemKnown,
	}
}

func (r *Resolver) resolveLocked() Resolved {
	switch r.preference {
	case PreferenceDark:
		return ResolvedDark
	case PreferenceLight:
		return ResolvedLight
	default:
		if r.systemKnown && r.systemDark {
			return ResolvedDark
		}
		return ResolvedLight
	}
}

func (r *Resolver) subscribersLocked() []func(State) {
	subs := make([]func(State), 0, len(r.subscribers))
	for id := 0; id < r.nextSubID; id++ {
		if fn, ok := r.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
