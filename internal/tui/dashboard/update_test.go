package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/transient"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/tui/components"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestUpdate_RangeKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "2")
	assert.Equal(t, dataset.Range30d, m.CurrentRange())

	m = press(t, m, "3")
	assert.Equal(t, dataset.Range90d, m.CurrentRange())

	m = press(t, m, "tab")
	assert.Equal(t, dataset.Range7d, m.CurrentRange(), "tab wraps around")

	m = press(t, m, "1", "1")
	assert.Equal(t, dataset.Range7d, m.CurrentRange())
}

func TestUpdate_ExportLifecycle(t *testing.T) {
	m, h := newTestModel(t)

	m, cmd := update(t, m, keyMsg("e"))
	require.NotNil(t, cmd)
	assert.True(t, m.IsExporting())

	// a second trigger while busy does nothing
	m, cmd = update(t, m, keyMsg("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, h.clock.Pending())

	// switching range keeps the export busy
	m = press(t, m, "2")
	assert.Equal(t, dataset.Range30d, m.CurrentRange())
	assert.True(t, m.IsExporting())

	h.clock.Advance(testCooldown - time.Millisecond)
	assert.True(t, m.IsExporting())

	h.clock.Advance(time.Millisecond)
	assert.False(t, m.IsExporting())

	msg := waitForExportCmd(m.exportDone, m.done)()
	require.IsType(t, ExportDoneMsg{}, msg)
	m, cmd = update(t, m, msg)
	assert.Nil(t, cmd)

	// available again after the reset
	m, cmd = update(t, m, keyMsg("e"))
	assert.NotNil(t, cmd)
	assert.True(t, m.IsExporting())
}

func TestUpdate_SpinnerStopsWhenIdle(t *testing.T) {
	m, h := newTestModel(t)

	_, cmd := update(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd, "idle dashboard does not animate")

	m, _ = update(t, m, keyMsg("e"))
	_, cmd = update(t, m, spinner.TickMsg{})
	assert.NotNil(t, cmd)

	h.clock.Advance(testCooldown)
	_, cmd = update(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestUpdate_SettingsEscape(t *testing.T) {
	m, _ := newTestModel(t)

	// escape with nothing open is a no-op
	m = press(t, m, "esc")
	assert.False(t, m.SettingsOpen())
	assert.Equal(t, 0, m.KeyListeners())

	m = press(t, m, "s")
	assert.True(t, m.SettingsOpen())
	assert.Equal(t, 1, m.KeyListeners())

	m = press(t, m, "esc")
	assert.False(t, m.SettingsOpen())
	assert.Equal(t, 0, m.KeyListeners())

	// s toggles the panel closed too
	m = press(t, m, "s", "s")
	assert.False(t, m.SettingsOpen())
	assert.Equal(t, 0, m.KeyListeners())
}

func TestUpdate_SettingsIsModal(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "s", "2", "e")
	assert.Equal(t, dataset.Range7d, m.CurrentRange())
	assert.False(t, m.IsExporting())
}

func TestUpdate_QuickToggleAndPickerShareState(t *testing.T) {
	m, h := newTestModel(t)
	ctx := context.Background()

	m = press(t, m, "t")
	assert.Equal(t, theme.PreferenceLight, m.ThemeState().Preference)
	assert.Equal(t, theme.ResolvedLight, m.ThemeState().Resolved)

	stored, _ := h.store.Load(ctx)
	assert.Equal(t, "light", stored)

	// the picker opens on the preference the quick toggle chose
	m = press(t, m, "s")
	assert.Contains(t, m.renderSettings(), "Active theme: ")
	assert.Equal(t, h.resolver.Snapshot(), m.ThemeState())

	m = press(t, m, "d")
	assert.Equal(t, theme.PreferenceDark, m.ThemeState().Preference)
	stored, _ = h.store.Load(ctx)
	assert.Equal(t, "dark", stored)

	m = press(t, m, "esc", "t")
	assert.Equal(t, theme.PreferenceSystem, m.ThemeState().Preference)
	assert.Equal(t, theme.ResolvedDark, m.ThemeState().Resolved)
	assert.Equal(t, 3, h.store.Writes())
}

func TestUpdate_ThemeChangedFromOutside(t *testing.T) {
	m, h := newTestModel(t)

	h.resolver.UpdateSystem(false)

	msg := waitForThemeCmd(m.themeCh, m.done)()
	changed, ok := msg.(ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, theme.ResolvedLight, changed.State.Resolved)

	m, cmd := update(t, m, changed)
	assert.NotNil(t, cmd, "listening resumes")
	assert.Equal(t, theme.ResolvedLight, m.ThemeState().Resolved)
	assert.Equal(t, "Light mode theme active", m.ThemeState().StatusLine())
	assert.False(t, m.styles.theme.Dark(), "styles follow the resolved theme")
}

func TestUpdate_StylesFollowQuickToggle(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.styles.theme.Dark())
	assert.Equal(t, components.DarkTheme().Palette.Primary, m.styles.theme.Palette.Primary)

	// system -> light
	m = press(t, m, "t")
	assert.Equal(t, theme.ResolvedLight, m.styles.theme.Name)
	assert.Equal(t, components.LightTheme().Palette.Chart, m.styles.theme.Palette.Chart)

	// light -> dark
	m = press(t, m, "t")
	assert.True(t, m.styles.theme.Dark())
}

func TestUpdate_ThemeErrorBeforeMount(t *testing.T) {
	resolver := theme.NewResolver(nil, nil)
	m := NewModel(Options{Resolver: resolver, Clock: transient.NewManualClock()})
	t.Cleanup(m.Teardown)

	m = press(t, m, "t")
	assert.Contains(t, m.errorMsg, "Theme change failed")
	assert.False(t, m.ThemeState().Hydrated)

	m, cmd := update(t, m, keyMsg("x"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_SettingsToggles(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "s", "a")
	assert.False(t, m.AutoRefresh())
	assert.True(t, m.ProactiveAlerts())

	m = press(t, m, "p", "a")
	assert.True(t, m.AutoRefresh())
	assert.False(t, m.ProactiveAlerts())
	assert.Contains(t, m.renderSettings(), "[ ] Proactive alerting")
}

func TestUpdate_MouseHitTestsSettingsPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, "s")

	rect := m.settingsRect()
	require.Greater(t, rect.Width, 0)

	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = update(t, m, click(rect.X+1, rect.Y+1))
	assert.True(t, m.SettingsOpen(), "panel clicks are contained")

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.True(t, m.SettingsOpen(), "only presses count")

	m, _ = update(t, m, click(0, 0))
	assert.False(t, m.SettingsOpen())
	assert.Equal(t, 0, m.KeyListeners())
}

func TestUpdate_SidebarNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "n")
	assert.True(t, m.SidebarOpen())

	m = press(t, m, "j", "enter")
	assert.False(t, m.SidebarOpen(), "navigating closes the sidebar")
	assert.Equal(t, "/pulse", m.Path())

	m = press(t, m, "n", "k", "enter")
	assert.Equal(t, "/", m.Path())

	m = press(t, m, "n", "esc")
	assert.False(t, m.SidebarOpen())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
