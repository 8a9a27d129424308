package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kelgrand/timedeck/internal/datetime"
)

// zoneItem is one picker entry. index points into the service-ordered
// timezone list; filtering only hides entries, it never renumbers them.
type zoneItem struct {
	name  string
	index int
}

func (z zoneItem) Title() string       { return z.name }
func (z zoneItem) Description() string { return "" }
func (z zoneItem) FilterValue() string { return z.name }

// pickerState holds the timezone picker list.
type pickerState struct {
	list list.Model
}

// initPicker builds the picker list. Items arrive later, whenever the page
// has a timezone list to show.
func (m *Model) initPicker() {
	l := list.New(nil, m.pickerDelegate(), m.width, m.contentHeight())
	l.Title = m.strs.PickerTitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m.picker.list = l
	m.restylePicker()
}

// pickerDelegate returns the item delegate recolored for the active theme.
func (m *Model) pickerDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.NormalTitle = d.Styles.NormalTitle.
		Foreground(lipgloss.Color(m.theme.Text))
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(m.theme.Accent)).
		BorderLeftForeground(lipgloss.Color(m.theme.Accent))
	d.Styles.DimmedTitle = d.Styles.DimmedTitle.
		Foreground(lipgloss.Color(m.theme.Faint))
	return d
}

// restylePicker reapplies theme colors after a theme change.
func (m *Model) restylePicker() {
	styles := m.theme.Styles()
	m.picker.list.SetDelegate(m.pickerDelegate())
	m.picker.list.Styles.Title = styles.SectionTitle
	m.picker.list.Styles.FilterPrompt = styles.AccentText
	m.picker.list.Styles.FilterCursor = styles.AccentText
	m.picker.list.Styles.NoItems = styles.MutedText
}

// populatePicker rebuilds the picker items from the page's timezone list
// and moves the cursor to the resolved selection.
func (m *Model) populatePicker() {
	snap := m.page.Snapshot()

	items := make([]list.Item, len(snap.Timezones))
	for i, name := range snap.Timezones {
		items[i] = zoneItem{name: name, index: i}
	}
	m.picker.list.SetItems(items)

	if snap.Selection >= 0 && snap.Selection < len(items) {
		m.picker.list.Select(snap.Selection)
	} else if len(items) > 0 {
		m.picker.list.Select(0)
	}
}

// openPicker switches to the timezone picker with a fresh item set and no
// leftover filter.
func (m *Model) openPicker() {
	m.populatePicker()
	m.picker.list.ResetFilter()
	m.currentView = ViewTimezones
}

// resizePicker fits the picker to the current window.
func (m *Model) resizePicker() {
	m.picker.list.SetSize(m.width, m.contentHeight())
}

// handlePickerKey processes keyboard input for the timezone picker.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter every key belongs to the list.
	if m.picker.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker.list, cmd = m.picker.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		if item, ok := m.picker.list.SelectedItem().(zoneItem); ok {
			var cmd tea.Cmd
			m.page, cmd = m.page.Update(datetime.SelectTimezoneMsg{Index: item.index})
			m.currentView = ViewSettings
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		// An applied filter clears first; the next escape closes.
		if m.picker.list.FilterState() == list.FilterApplied {
			break
		}
		m.currentView = ViewSettings
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker.list, cmd = m.picker.list.Update(msg)
	return m, cmd
}

// renderPicker renders the timezone picker.
func (m Model) renderPicker() string {
	if len(m.picker.list.Items()) == 0 && m.picker.list.FilterState() != list.Filtering {
		return "\n  " + m.theme.Styles().MutedText.Render(m.strs.NoTimezones)
	}
	return m.picker.list.View()
}
