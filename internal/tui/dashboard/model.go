package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/keybus"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/overlay"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/presenter"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/selector"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/shell"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/transient"
)

var _ overlay.KeySource = (*keybus.Bus)(nil)

// Options wires the dashboard to its engine components. Resolver is
// required; the rest fall back to defaults.
type Options struct {
	Context        context.Context
	Selector       *selector.Selector
	Resolver       *theme.Resolver
	Formatter      *format.Formatter
	Clock          transient.Clock
	ExportCooldown time.Duration
	Logger         ports.Logger
}

// Model is the main dashboard model
type Model struct {
	ctx    context.Context
	logger ports.Logger

	// Engine state
	selector  *selector.Selector
	resolver  *theme.Resolver
	formatter *format.Formatter
	export    *transient.Action
	keys      *keybus.Bus
	settings  *overlay.Overlay
	sidebar   *shell.Sidebar

	// Async delivery from the timer and resolver goroutines
	exportDone chan struct{}
	themeCh    chan theme.State
	done       chan struct{}
	teardown   *sync.Once
	unsubTheme func()

	// UI state
	themeState      theme.State
	styles          styles
	spinner         spinner.Model
	help            help.Model
	keyMap          keyMap
	autoRefresh     bool
	proactiveAlerts bool
	errorMsg        string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new dashboard model
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	sel := opts.Selector
	if sel == nil {
		sel = selector.New(dataset.DefaultRange())
	}
	f := opts.Formatter
	if f == nil {
		f = format.Default()
	}

	exportDone := make(chan struct{}, 1)
	themeCh := make(chan theme.State, 8)
	bus := keybus.New()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		logger:     logger.With("component", "dashboard"),
		selector:   sel,
		resolver:   opts.Resolver,
		formatter:  f,
		keys:       bus,
		settings:   overlay.New(bus),
		sidebar:    shell.NewSidebar(),
		exportDone: exportDone,
		themeCh:    themeCh,
		done:       make(chan struct{}),
		teardown:   &sync.Once{},
		spinner:    s,
		help:       help.New(),
		keyMap:     defaultKeyMap(),
		// both automation toggles start enabled
		autoRefresh:     true,
		proactiveAlerts: true,
		width:           120,
		height:          40,
	}

	m.export = transient.New(opts.Clock, opts.ExportCooldown, transient.OnReset(func() {
		select {
		case exportDone <- struct{}{}:
		default:
		}
	}))

	m.unsubTheme = m.resolver.Subscribe(func(state theme.State) {
		select {
		case themeCh <- state:
		default:
			// the receiver re-reads the resolver snapshot, so a dropped
			// intermediate state is harmless
		}
	})

	m.applyTheme(m.resolver.Snapshot())
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForThemeCmd(m.themeCh, m.done),
	}
	if !m.themeState.Hydrated {
		cmds = append(cmds, mountThemeCmd(m.ctx, m.resolver))
	}
	return tea.Batch(cmds...)
}

// Teardown releases the export timer, the settings key listener and the theme
// subscription. It is safe to call more than once and from any copy of the
// model.
func (m Model) Teardown() {
	m.teardown.Do(func() {
		m.export.Cancel()
		m.settings.Teardown()
		m.unsubTheme()
		close(m.done)
	})
}

// Helper Methods

func (m *Model) applyTheme(state theme.State) {
	m.themeState = state
	m.styles = newStyles(state.Resolved)
	m.spinner.Style = m.styles.spinner
}

// Snapshot returns the formatted content of the active range.
func (m Model) Snapshot() presenter.Snapshot {
	s := presenter.Build(m.selector.Current(), m.selector.Bundle(), m.formatter)
	s.Theme = m.themeState.Label()
	return s
}

// CurrentRange returns the selected range key
func (m Model) CurrentRange() dataset.RangeKey {
	return m.selector.Current()
}

// ThemeState returns the last theme state the model rendered with
func (m Model) ThemeState() theme.State {
	return m.themeState
}

// IsExporting reports whether the report export is cooling down
func (m Model) IsExporting() bool {
	return m.export.Busy()
}

// SettingsOpen reports whether the preferences overlay is shown
func (m Model) SettingsOpen() bool {
	return m.settings.IsOpen()
}

// SidebarOpen reports whether the navigation drawer is expanded
func (m Model) SidebarOpen() bool {
	return m.sidebar.IsOpen()
}

// Path returns the active navigation route
func (m Model) Path() string {
	return m.sidebar.Path()
}

// AutoRefresh reports the auto-refresh toggle
func (m Model) AutoRefresh() bool {
	return m.autoRefresh
}

// ProactiveAlerts reports the proactive alerting toggle
func (m Model) ProactiveAlerts() bool {
	return m.proactiveAlerts
}

// KeyListeners returns how many raw key listeners are installed
func (m Model) KeyListeners() int {
	return m.keys.Len()
}
