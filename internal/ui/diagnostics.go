package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/kelgrand/timedeck/internal/logtail"
)

// diagState holds the diagnostics pane: a viewport over the tail of the
// application's own log file.
type diagState struct {
	vp     viewport.Model
	follow bool
	empty  bool
}

// diagLinesMsg carries freshly read log lines.
type diagLinesMsg []string

// loadDiagnosticsCmd reads the log tail off the UI loop. Read failures
// degrade to an empty pane.
func loadDiagnosticsCmd(path string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Render(path, maxLines)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("diagnostics read failed")
			return diagLinesMsg(nil)
		}
		return diagLinesMsg(lines)
	}
}

// initDiagViewport initializes the diagnostics viewport.
func (m *Model) initDiagViewport() {
	m.diag.vp = viewport.New(m.width, m.contentHeight())
	m.diag.follow = true
}

// resizeDiagViewport fits the viewport to the current window.
func (m *Model) resizeDiagViewport() {
	m.diag.vp.Width = m.width
	m.diag.vp.Height = m.contentHeight()
	if m.diag.follow {
		m.diag.vp.GotoBottom()
	}
}

// setDiagnostics replaces the pane content with freshly read lines.
func (m *Model) setDiagnostics(lines []string) {
	m.diag.empty = len(lines) == 0

	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = m.styleDiagLine(line)
	}
	m.diag.vp.SetContent(strings.Join(styled, "\n"))

	if m.diag.follow {
		m.diag.vp.GotoBottom()
	}
}

// styleDiagLine colors a rendered log line by its level tag.
func (m Model) styleDiagLine(line string) string {
	styles := m.theme.Styles()
	switch {
	case strings.Contains(line, " ERR "), strings.Contains(line, " FTL "), strings.Contains(line, " PNC "):
		return styles.DangerText.Render(line)
	case strings.Contains(line, " WRN "):
		return styles.WarningText.Render(line)
	case strings.Contains(line, " DBG "), strings.Contains(line, " TRC "):
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

// handleDiagnosticsKey processes keyboard input for the diagnostics view.
func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.diag.follow = !m.diag.follow
		if m.diag.follow {
			m.diag.vp.GotoBottom()
		}

	case key.Matches(msg, m.keys.Down):
		m.diag.vp.ScrollDown(1)
		m.diag.follow = false

	case key.Matches(msg, m.keys.Up):
		m.diag.vp.ScrollUp(1)
		m.diag.follow = false

	case key.Matches(msg, m.keys.Top):
		m.diag.vp.GotoTop()
		m.diag.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.diag.vp.GotoBottom()
		m.diag.follow = true

	case key.Matches(msg, m.keys.HalfPageDown):
		m.diag.vp.HalfPageDown()
		m.diag.follow = false

	case key.Matches(msg, m.keys.HalfPageUp):
		m.diag.vp.HalfPageUp()
		m.diag.follow = false
	}

	return m, nil
}

// renderDiagnostics renders the diagnostics pane.
func (m Model) renderDiagnostics() string {
	if m.diag.empty {
		return "\n  " + m.theme.Styles().MutedText.Render(m.strs.NoDiagnostics)
	}
	return m.diag.vp.View()
}
