package ports

import "context"

// PreferenceStore persists the single process-wide theme preference.
//
// Load returns the stored raw value, or an empty string when nothing has been
// stored yet. Implementations must not interpret the value; parsing and
// fallback policy belong to the theme resolver, which is the only writer.
type PreferenceStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// EnvironmentDetector reports the theme signalled by the host environment
// (for a terminal: whether the background is dark).
//
// ok is false when the signal is unavailable, e.g. output is not a terminal.
type EnvironmentDetector interface {
	SystemTheme(ctx context.Context) (dark bool, ok bool)
}
