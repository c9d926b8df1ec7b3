package dashboard

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the dashboard bindings shown in the footer help.
type keyMap struct {
	Range      key.Binding
	NextRange  key.Binding
	Theme      key.Binding
	Export     key.Binding
	Settings   key.Binding
	Sidebar    key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Close      key.Binding
	PickLight  key.Binding
	PickDark   key.Binding
	PickSystem key.Binding
	Refresh    key.Binding
	Alerts     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Range: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "range"),
		),
		NextRange: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next range"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "download report"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "navigation"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		PickLight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light"),
		),
		PickDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark"),
		),
		PickSystem: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "system"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-refresh"),
		),
		Alerts: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "alerts"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Range, k.Theme, k.Export, k.Settings, k.Sidebar, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Range, k.NextRange, k.Theme, k.Export},
		{k.Settings, k.Sidebar, k.Up, k.Down, k.Open},
		{k.PickLight, k.PickDark, k.PickSystem, k.Refresh, k.Alerts, k.Close, k.Quit},
	}
}

// settingsHelp is the binding set shown inside the preferences overlay.
type settingsHelp struct{ keyMap }

func (s settingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{s.PickLight, s.PickDark, s.PickSystem, s.Refresh, s.Alerts, s.Close}
}

func (s settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}

// sidebarHelp is the binding set shown while the navigation drawer is open.
type sidebarHelp struct{ keyMap }

func (s sidebarHelp) ShortHelp() []key.Binding {
	return []key.Binding{s.Up, s.Down, s.Open, s.Sidebar, s.Close}
}

func (s sidebarHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}
