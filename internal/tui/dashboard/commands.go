package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
)

// waitForExportCmd blocks until the export action resets or the model is torn
// down.
func waitForExportCmd(ch <-chan struct{}, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return ExportDoneMsg{}
		case <-done:
			return nil
		}
	}
}

// waitForThemeCmd delivers the next resolver change.
func waitForThemeCmd(ch <-chan theme.State, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case state := <-ch:
			return ThemeChangedMsg{State: state}
		case <-done:
			return nil
		}
	}
}

// mountThemeCmd hydrates the resolver when the caller did not do it before
// starting the program.
func mountThemeCmd(ctx context.Context, r *theme.Resolver) tea.Cmd {
	return func() tea.Msg {
		return ThemeMountedMsg{State: r.Mount(ctx)}
	}
}
