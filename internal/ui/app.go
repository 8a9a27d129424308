package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelgrand/timedeck/internal/datetime"
)

// View represents the current active view.
type View int

const (
	ViewSettings View = iota
	ViewTimezones
	ViewDiagnostics
)

// Options configures the UI.
type Options struct {
	// Page is the date and time settings model the shell hosts.
	Page datetime.Model
	// Strings is the display-string table; zero value means the built-in
	// English table.
	Strings Strings
	// ThemeName selects the starting theme. Unknown names fall back to dark.
	ThemeName string
	// Tick is the clock refresh cadence. Zero means one second.
	Tick time.Duration
	// LogFile is the application's own log file, rendered by the
	// diagnostics view. Empty disables that view's content.
	LogFile string
	// LogLines caps how many log lines the diagnostics view shows.
	LogLines int
}

// Model is the root application state for Bubble Tea. It owns view routing,
// the tick loop, and the hosted settings page; all date and time semantics
// live in the page model.
type Model struct {
	// Configuration
	strs     Strings
	tick     time.Duration
	logFile  string
	logLines int

	// Hosted page
	page datetime.Model

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Settings view state
	cursor int

	// Timezone picker state
	picker pickerState

	// Diagnostics state
	diag diagState

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	strs := opts.Strings
	if strs.Title == "" {
		strs = DefaultStrings()
	}

	tick := opts.Tick
	if tick == 0 {
		tick = time.Second
	}

	logLines := opts.LogLines
	if logLines <= 0 {
		logLines = 200
	}

	m := Model{
		strs:        strs,
		tick:        tick,
		logFile:     opts.LogFile,
		logLines:    logLines,
		page:        opts.Page,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		currentView: ViewSettings,
	}
	m.initPicker()
	m.initDiagViewport()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.tick),
		m.page.Init(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePicker()
		m.resizeDiagViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case diagLinesMsg:
		m.setDiagnostics(msg)
		return m, nil

	case datetime.RefreshedMsg:
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		// The picker indexes into the fetched list; rebuild it whenever
		// that list is replaced under it.
		if m.currentView == ViewTimezones {
			m.populatePicker()
		}
		return m, cmd
	}

	// Everything else is page traffic: fault reports, settings reloads,
	// command completions.
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The picker owns nearly all keys while open; its filter needs them.
	if m.currentView == ViewTimezones {
		return m.handlePickerKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.restylePicker()
		return m, nil

	case "r":
		// Re-run the full activation query sequence.
		return m, m.page.Refresh()

	case "d":
		if m.currentView == ViewDiagnostics {
			m.currentView = ViewSettings
			return m, nil
		}
		m.currentView = ViewDiagnostics
		return m, loadDiagnosticsCmd(m.logFile, m.logLines)

	case "esc":
		m.currentView = ViewSettings
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewSettings:
		return m.handleSettingsKey(msg)
	case ViewDiagnostics:
		return m.handleDiagnosticsKey(msg)
	}

	return m, nil
}

// handleTick processes the clock tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Resample the clock and rerender the date line.
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(datetime.TickMsg{})
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Reload the diagnostics pane while it is on screen.
	if m.currentView == ViewDiagnostics {
		cmds = append(cmds, loadDiagnosticsCmd(m.logFile, m.logLines))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.tick))

	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderContent(),
		m.renderCommandBar(),
	}
	return strings.Join(parts, "\n")
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewSettings:
		return m.renderSettings()
	case ViewTimezones:
		return m.renderPicker()
	case ViewDiagnostics:
		return m.renderDiagnostics()
	default:
		return ""
	}
}

// contentHeight is the number of rows left for the active view after the
// header and command bar.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - commandBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
