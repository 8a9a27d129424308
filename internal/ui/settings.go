package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelgrand/timedeck/internal/datetime"
)

// settingsRow identifies a focusable row in the settings view, in visual
// order.
type settingsRow int

const (
	rowAutoSync settingsRow = iota
	rowMilitaryTime
	rowFirstDay
	rowShowDate
	rowTimezone

	settingsRowCount
)

// handleSettingsKey processes keyboard input for the settings view.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < int(settingsRowCount)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Confirm):
		return m.activateRow()

	case key.Matches(msg, m.keys.Prev):
		if settingsRow(m.cursor) == rowFirstDay {
			return m.cycleFirstDay(-1)
		}

	case key.Matches(msg, m.keys.Next):
		if settingsRow(m.cursor) == rowFirstDay {
			return m.cycleFirstDay(1)
		}
	}

	return m, nil
}

// activateRow applies the focused row's action: toggles flip, the weekday
// choice advances, the timezone row opens the picker.
func (m Model) activateRow() (tea.Model, tea.Cmd) {
	snap := m.page.Snapshot()
	var cmd tea.Cmd

	switch settingsRow(m.cursor) {
	case rowAutoSync:
		m.page, cmd = m.page.Update(datetime.SetAutoSyncMsg{Enabled: !snap.NTPEnabled})

	case rowMilitaryTime:
		m.page, cmd = m.page.Update(datetime.SetMilitaryTimeMsg{Enabled: !snap.MilitaryTime})

	case rowFirstDay:
		return m.cycleFirstDay(1)

	case rowShowDate:
		m.page, cmd = m.page.Update(datetime.SetShowDateMsg{Enabled: !snap.ShowDate})

	case rowTimezone:
		m.openPicker()
	}

	return m, cmd
}

// cycleFirstDay moves the start-of-week choice by delta and routes the new
// value through the page as an applet weekday code.
func (m Model) cycleFirstDay(delta int) (tea.Model, tea.Cmd) {
	snap := m.page.Snapshot()
	index := (snap.FirstDayIndex + delta + datetime.FirstDayChoices) % datetime.FirstDayChoices

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(datetime.SetFirstDayMsg{Day: datetime.EncodeFirstDay(index)})
	return m, cmd
}

// renderSettings renders the settings form.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	snap := m.page.Snapshot()

	zone := m.strs.UnknownTime
	if snap.Selection >= 0 && snap.Selection < len(snap.Timezones) {
		zone = snap.Timezones[snap.Selection]
	}

	var b strings.Builder

	// Clock preview. The page already substitutes the placeholder while no
	// sample exists; an empty line here means the locale was unusable.
	b.WriteString("\n  ")
	b.WriteString(styles.AccentText.Bold(true).Render(snap.FormattedDate))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(styles.SectionTitle.Render(m.strs.SectionSync))
	b.WriteString("\n")
	b.WriteString(m.renderRow(rowAutoSync, checkbox(snap.NTPEnabled)+" "+m.strs.AutoSync))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(styles.SectionTitle.Render(m.strs.SectionFormat))
	b.WriteString("\n")
	b.WriteString(m.renderRow(rowMilitaryTime, checkbox(snap.MilitaryTime)+" "+m.strs.MilitaryTime))
	b.WriteString("\n")
	b.WriteString(m.renderRow(rowFirstDay, fmt.Sprintf("%s  < %s >", m.strs.FirstDay, m.strs.WeekdayLabel(snap.FirstDayIndex))))
	b.WriteString("\n")
	b.WriteString(m.renderRow(rowShowDate, checkbox(snap.ShowDate)+" "+m.strs.ShowDate))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(styles.SectionTitle.Render(m.strs.SectionTimezone))
	b.WriteString("\n")
	b.WriteString(m.renderRow(rowTimezone, fmt.Sprintf("%s  %s", m.strs.Timezone, truncate(zone, 48))))

	return b.String()
}

// renderRow renders one focusable row, highlighting it when the cursor is
// on it.
func (m Model) renderRow(row settingsRow, content string) string {
	styles := m.theme.Styles()

	if settingsRow(m.cursor) == row {
		return "  " + styles.Selected.Render(" "+content+" ")
	}
	return "   " + styles.Text.Render(content) + " "
}

// checkbox renders a toggle state.
func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
