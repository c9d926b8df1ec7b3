package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/overlay"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/presenter"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/shell"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/tui/components"
)

const (
	sidebarWidth  = 22
	minCardWidth  = 26
	wideLayout    = 110
	chartBarWidth = 24
	shareBarWidth = 24
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.settings.IsOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderSettings())
	}

	main := m.renderMain()
	if m.sidebar.IsOpen() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", main)
	}
	return main
}

// settingsRect is where View places the settings panel.
func (m Model) settingsRect() overlay.Rect {
	panel := m.renderSettings()
	return overlay.Centered(m.width, m.height, lipgloss.Width(panel), lipgloss.Height(panel))
}

func (m Model) contentWidth() int {
	if m.sidebar.IsOpen() {
		return m.width - sidebarWidth - 1
	}
	return m.width
}

// renderMain renders the header, range bar and the active route
func (m Model) renderMain() string {
	sections := []string{m.renderHeader()}

	if m.errorMsg != "" {
		sections = append(sections, m.styles.errorBanner.Render(m.errorMsg))
	}

	if m.sidebar.Path() == shell.RootHref {
		snap := m.Snapshot()
		sections = append(sections,
			m.renderRangeBar(snap),
			m.renderCards(snap),
			m.renderCharts(snap),
			m.renderDevices(snap),
		)
	} else {
		sections = append(sections, m.renderPlaceholder())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title block and the action buttons
func (m Model) renderHeader() string {
	title := "Command Center Overview"
	for _, item := range shell.All() {
		if item.Href != shell.RootHref && shell.IsActive(item, m.sidebar.Path()) {
			title = item.Title
		}
	}

	export := "⤓ Download report"
	if m.export.Busy() {
		export = m.spinner.View() + " Preparing..."
	}

	actions := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton(export).View(m.styles.theme),
		components.NewButton("⚙ Dashboard settings").WithVariant(components.ButtonVariantSecondary).View(m.styles.theme),
		components.NewButton(m.themeToggleLabel()).WithVariant(components.ButtonVariantSecondary).View(m.styles.theme),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.eyebrow.Render("P U L S E M E T R I C S"),
		m.styles.title.Render(title),
		m.styles.subtitle.Render("Explore live revenue movements, acquisition health, and engagement signals across your footprint."),
		actions,
	)
}

// themeToggleLabel is the quick toggle caption; it shows the preference, not
// the resolved theme.
func (m Model) themeToggleLabel() string {
	icon := "◐"
	switch m.themeState.Preference {
	case theme.PreferenceLight:
		icon = "☀"
	case theme.PreferenceDark:
		icon = "☾"
	}
	return icon + " " + m.themeState.Preference.Title()
}

// renderRangeBar renders the range pills and the sync caption
func (m Model) renderRangeBar(snap presenter.Snapshot) string {
	current := m.selector.Current()
	pills := make([]string, 0, 3)
	for i, opt := range dataset.Ranges() {
		label := fmt.Sprintf("%d %s", i+1, opt.Label)
		if opt.Key == current {
			pills = append(pills, m.styles.pillActive.Render(label))
		} else {
			pills = append(pills, m.styles.pill.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, pills...),
		"   ",
		m.styles.caption.Render(strings.ToUpper(snap.Synced)),
	)
}

// renderCards renders the four KPI cards, four across when they fit
func (m Model) renderCards(snap presenter.Snapshot) string {
	perRow := 4
	if m.contentWidth() < 4*(minCardWidth+1) {
		perRow = 2
	}
	width := m.contentWidth()/perRow - 1
	if width < minCardWidth {
		width = minCardWidth
	}

	cardStyles := m.styles.card
	// Width includes padding; the border sits outside it
	cardStyles.Box = cardStyles.Box.Width(width - 2)

	var rows, row []string
	for _, c := range snap.Cards {
		row = append(row, components.NewCard(components.CardData{
			Label:    strings.ToUpper(c.Label),
			Value:    c.Value,
			Arrow:    c.Arrow,
			Change:   c.Change,
			Caption:  c.Caption,
			Positive: c.Positive(),
		}, cardStyles).View())
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCharts renders the revenue trend and acquisition panels
func (m Model) renderCharts(snap presenter.Snapshot) string {
	trendRows := make([]components.BarRow, 0, len(snap.Trend))
	for _, r := range snap.Trend {
		trendRows = append(trendRows, components.BarRow{
			Label:  r.Label,
			Values: []float64{r.RevenueValue, r.ForecastValue},
			Ticks:  []string{r.RevenueTick, r.ForecastTick},
		})
	}
	trend := components.NewBarChart([]components.BarSeries{
		{Name: "Revenue", Style: m.styles.seriesPrimary},
		{Name: "Forecast", Style: m.styles.seriesSecondary},
	}, trendRows, chartBarWidth)

	channelRows := make([]components.BarRow, 0, len(snap.Acquisition))
	for _, c := range snap.Acquisition {
		channelRows = append(channelRows, components.BarRow{
			Label:  c.Channel,
			Values: []float64{c.CurrentValue, c.PreviousValue},
			Ticks:  []string{c.Current, c.Previous},
		})
	}
	acquisition := components.NewBarChart([]components.BarSeries{
		{Name: "Current", Style: m.styles.seriesPrimary},
		{Name: "Previous", Style: m.styles.seriesSecondary},
	}, channelRows, chartBarWidth)

	trendPanel := components.NewPanel("Revenue Trend").
		WithDescription("Actual vs forecasted revenue movement").
		WithBadge(components.TrendBadge(snap.RevenueBadge)).
		View(m.styles.theme, trend.View())

	acquisitionPanel := components.NewPanel("Acquisition Channels").
		WithDescription("Channel performance comparison").
		View(m.styles.theme, acquisition.View())

	if m.contentWidth() >= wideLayout {
		return lipgloss.JoinHorizontal(lipgloss.Top, trendPanel, acquisitionPanel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, trendPanel, acquisitionPanel)
}

// renderDevices renders the device split and the theme status line
func (m Model) renderDevices(snap presenter.Snapshot) string {
	chart := m.styles.theme.Palette.Chart
	lines := make([]string, 0, len(snap.Devices)+1)
	for i, d := range snap.Devices {
		bar := components.NewShareBar(shareBarWidth, string(chart[i%len(chart)]))
		lines = append(lines, bar.View(d.Name, d.Fraction, d.Share)+"  "+m.styles.caption.Render(d.Label))
	}
	lines = append(lines, m.styles.caption.Render("Share of sessions"))

	return components.NewPanel("Device Engagement").
		WithDescription("Traffic split by device family").
		WithBadge(components.StatusBadge(strings.ToUpper(m.themeState.StatusLine()))).
		View(m.styles.theme, lines...)
}

// renderPlaceholder renders routes that have no terminal view
func (m Model) renderPlaceholder() string {
	return m.styles.placeholder.Render(fmt.Sprintf(
		"%s has no terminal view yet. Press n and choose Overview to return.", m.activeItem().Title))
}

func (m Model) activeItem() shell.Item {
	path := m.sidebar.Path()
	for _, item := range shell.All() {
		if shell.IsActive(item, path) {
			return item
		}
	}
	return shell.Item{Title: path, Href: path}
}

// renderFooter renders the contextual key help
func (m Model) renderFooter() string {
	var keys help.KeyMap = m.keyMap
	if m.sidebar.IsOpen() {
		keys = sidebarHelp{m.keyMap}
	}
	return m.styles.footer.Render(m.help.View(keys))
}

// renderSidebar renders the navigation drawer
func (m Model) renderSidebar() string {
	path := m.sidebar.Path()
	cursor := m.sidebar.Cursor()

	lines := []string{m.styles.title.Render("PulseMetrics"), ""}
	for i, item := range shell.All() {
		if i == len(shell.Primary()) {
			lines = append(lines, "", m.styles.caption.Render(strings.Repeat("─", sidebarWidth-4)))
		}
		marker := "  "
		if i == cursor {
			marker = m.styles.navCursor.Render("▸ ")
		}
		style := m.styles.navItem
		if shell.IsActive(item, path) {
			style = m.styles.navActive
		}
		lines = append(lines, marker+style.Render(item.Title))
	}

	return m.styles.sidebar.Height(m.height).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSettings renders the preferences panel
func (m Model) renderSettings() string {
	options := make([]string, 0, 3)
	for _, pref := range theme.Preferences() {
		variant := components.ButtonVariantSecondary
		if pref == m.themeState.Preference {
			variant = components.ButtonVariantSelected
		}
		options = append(options, components.NewButton(pref.Title()).WithVariant(variant).View(m.styles.theme))
	}

	return components.NewPanel("Dashboard preferences").
		WithDescription("Personalize your workspace theme and automation routines.").
		WithBadge(components.StatusBadge("esc ✕")).
		Emphasized().
		View(m.styles.theme,
			m.styles.eyebrow.Render("THEME"),
			lipgloss.JoinHorizontal(lipgloss.Top, options...),
			"",
			checkbox(m.autoRefresh)+" Auto-refresh data",
			checkbox(m.proactiveAlerts)+" Proactive alerting",
			"",
			m.styles.caption.Render("Active theme: ")+m.styles.title.Render(m.themeState.Label()),
			"",
			m.help.View(settingsHelp{m.keyMap}),
		)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
