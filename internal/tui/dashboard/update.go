package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/overlay"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	// Spinner ticks only while the export is cooling down
	case spinner.TickMsg:
		if !m.export.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ExportDoneMsg:
		m.logger.Info(m.ctx, "report export ready", "range", m.selector.Current().String())
		return m, nil

	// Theme messages
	case ThemeMountedMsg:
		m.applyTheme(msg.State)
		return m, nil

	case ThemeChangedMsg:
		// the channel may lag behind; the resolver holds the latest state
		m.applyTheme(m.resolver.Snapshot())
		return m, waitForThemeCmd(m.themeCh, m.done)

	case ClearErrorMsg:
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the layer that currently has focus: the
// settings overlay, then the sidebar, then the dashboard.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keyMap.Close) {
		// the settings overlay owns escape through its listener
		if m.keys.Dispatch(overlay.EscapeKey) {
			return m, nil
		}
		if m.sidebar.IsOpen() {
			m.sidebar.Close()
			return m, nil
		}
		m.errorMsg = ""
		return m, nil
	}

	switch {
	case m.settings.IsOpen():
		return m.handleSettingsKeys(msg)
	case m.sidebar.IsOpen():
		return m.handleSidebarKeys(msg)
	default:
		return m.handleDashboardKeys(msg)
	}
}

// handleDashboardKeys handles keys on the main view
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Range):
		index := int(msg.String()[0] - '1')
		ranges := dataset.Ranges()
		if index >= 0 && index < len(ranges) {
			m.selectRange(ranges[index].Key)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NextRange):
		m.selectRange(m.selector.Current().Next())
		return m, nil

	case key.Matches(msg, m.keyMap.Theme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		return m.startExport()

	case key.Matches(msg, m.keyMap.Settings):
		m.settings.Open()
		return m, nil

	case key.Matches(msg, m.keyMap.Sidebar):
		m.sidebar.Toggle()
		return m, nil
	}

	if msg.String() == "x" {
		return m, func() tea.Msg { return ClearErrorMsg{} }
	}
	return m, nil
}

// handleSettingsKeys handles keys while the preferences overlay is open
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.PickLight):
		m.setTheme(theme.PreferenceLight)
	case key.Matches(msg, m.keyMap.PickDark):
		m.setTheme(theme.PreferenceDark)
	case key.Matches(msg, m.keyMap.PickSystem):
		m.setTheme(theme.PreferenceSystem)
	case key.Matches(msg, m.keyMap.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keyMap.Refresh):
		m.autoRefresh = !m.autoRefresh
		m.logger.Debug(m.ctx, "auto-refresh toggled", "enabled", m.autoRefresh)
	case key.Matches(msg, m.keyMap.Alerts):
		m.proactiveAlerts = !m.proactiveAlerts
		m.logger.Debug(m.ctx, "proactive alerting toggled", "enabled", m.proactiveAlerts)
	case key.Matches(msg, m.keyMap.Settings):
		m.settings.Close()
	}
	return m, nil
}

// handleSidebarKeys handles keys while the navigation drawer is open
func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.Move(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.Move(1)
	case key.Matches(msg, m.keyMap.Open):
		item := m.sidebar.Select()
		m.logger.Debug(m.ctx, "navigated", "path", item.Href)
	case key.Matches(msg, m.keyMap.Sidebar):
		m.sidebar.Close()
	}
	return m, nil
}

// handleMouse hit-tests left clicks against the settings panel
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.settings.IsOpen() {
		return m, nil
	}
	m.settings.HandlePointer(overlay.HitTest(m.settingsRect(), msg.X, msg.Y))
	return m, nil
}

func (m *Model) selectRange(rangeKey dataset.RangeKey) {
	if m.selector.Select(rangeKey) {
		m.logger.Debug(m.ctx, "range selected", "range", rangeKey.String())
	}
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if !m.export.Trigger() {
		return m, nil
	}
	m.logger.Info(m.ctx, "report export started", "range", m.selector.Current().String(), "cooldown", m.export.Cooldown())
	return m, tea.Batch(m.spinner.Tick, waitForExportCmd(m.exportDone, m.done))
}

func (m *Model) cycleTheme() {
	state, err := m.resolver.Cycle(m.ctx)
	m.afterThemeChange(state, err)
}

func (m *Model) setTheme(p theme.Preference) {
	state, err := m.resolver.Set(m.ctx, p)
	m.afterThemeChange(state, err)
}

func (m *Model) afterThemeChange(state theme.State, err error) {
	m.applyTheme(state)
	if err != nil {
		m.errorMsg = fmt.Sprintf("Theme change failed: %s", err)
		return
	}
	m.errorMsg = ""
}
