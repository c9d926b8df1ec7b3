package dashboard

import "github.com/alexisbeaulieu97/pulsemetrics/internal/theme"

// ExportDoneMsg indicates the export cool-down finished
type ExportDoneMsg struct{}

// ThemeChangedMsg carries a resolver state change
type ThemeChangedMsg struct {
	State theme.State
}

// ThemeMountedMsg carries the state read when the resolver was hydrated
type ThemeMountedMsg struct {
	State theme.State
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
