package ui

import (
	"strings"
)

const (
	headerHeight     = 2
	commandBarHeight = 1
)

// renderHeader renders the title line and rule.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("timedeck"),
		styles.Text.Bold(true).Render(m.strs.Title),
	}

	// NTP indicator reflects the page's combined "supported and active"
	// answer, pessimistic until the first refresh lands.
	if m.page.Snapshot().NTPEnabled {
		parts = append(parts, styles.SuccessText.Render("● NTP"))
	} else {
		parts = append(parts, styles.MutedText.Render("○ NTP"))
	}

	if m.currentView == ViewDiagnostics {
		parts = append(parts, styles.MutedText.Render(m.strs.DiagnosticsTitle))
	}

	line := " " + strings.Join(parts, "  ")
	rule := styles.Rule.Render(strings.Repeat("─", m.width))
	return line + "\n" + rule
}

// renderCommandBar renders the command hints bar for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewTimezones:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"/", "Filter"},
			{"enter", "Select"},
			{"esc", "Back"},
		}
	case ViewDiagnostics:
		followLabel := "Pause"
		if !m.diag.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default: // ViewSettings
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Space", "Toggle"},
			{"enter", "Select"},
			{"d", "Diagnostics"},
			{"r", "Refresh"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+":"+styles.MutedText.Render(c.desc))
	}

	// Theme indicator
	segments = append(segments,
		styles.AccentText.Render("T")+":"+styles.FaintText.Render(m.theme.Name))

	return " " + strings.Join(segments, "  ")
}
