package datetime

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/kelgrand/timedeck/internal/timefmt"
)

// TimeService is the slice of the system time service the page depends on.
// Every operation is independently fallible; connection and call failures
// arrive as one undifferentiated error.
type TimeService interface {
	Connect(ctx context.Context) error
	CanNTP(ctx context.Context) (bool, error)
	NTPActive(ctx context.Context) (bool, error)
	ListTimezones(ctx context.Context) ([]string, error)
	CurrentTimezone(ctx context.Context) (string, error)
	SetNTP(ctx context.Context, enabled, applyNow bool) error
	SetTimezone(ctx context.Context, zone string, applyNow bool) error
}

// SettingsStore persists the three display preferences shared with the
// panel applet. Getters fall back to defaults on their own; setters report
// failures for logging only.
type SettingsStore interface {
	MilitaryTime() bool
	FirstDayOfWeek() int
	ShowDate() bool
	SetMilitaryTime(enabled bool) error
	SetFirstDayOfWeek(code int) error
	SetShowDate(enabled bool) error
}

// Model owns the date and time settings state. All mutation happens inside
// Update; background commands only produce messages, never touch the model.
type Model struct {
	service     TimeService
	store       SettingsStore
	formatter   timefmt.Formatter
	clock       clockwork.Clock
	placeholder string

	ntpEnabled   bool
	militaryTime bool
	firstDay     int
	showDate     bool
	zones        []string
	selection    int
	sample       time.Time
	formatted    string
}

// New builds the page model with persisted values from store. The service
// state (NTP, timezones) starts pessimistic and empty until the first
// refresh completes. placeholder is shown while no clock sample exists.
func New(service TimeService, store SettingsStore, formatter timefmt.Formatter, clock clockwork.Clock, placeholder string) Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return Model{
		service:      service,
		store:        store,
		formatter:    formatter,
		clock:        clock,
		placeholder:  placeholder,
		militaryTime: store.MilitaryTime(),
		firstDay:     store.FirstDayOfWeek(),
		showDate:     store.ShowDate(),
		selection:    -1,
	}
}

// Init starts the activation refresh.
func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// Refresh returns a command that re-runs the full activation query
// sequence. The result arrives as a RefreshedMsg or, when the service is
// unreachable, a FaultMsg.
func (m Model) Refresh() tea.Cmd {
	return m.refreshCmd()
}

// Update is the page reducer. It applies msg to a copy of the model and
// returns it together with at most one background command. It never blocks
// and never performs I/O itself.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetAutoSyncMsg:
		m.ntpEnabled = msg.Enabled
		return m, m.setNTPCmd(msg.Enabled)

	case SetMilitaryTimeMsg:
		m.militaryTime = msg.Enabled
		m.recompute()
		enabled := msg.Enabled
		return m, persistCmd("military_time", func() error {
			return m.store.SetMilitaryTime(enabled)
		})

	case SetFirstDayMsg:
		m.firstDay = msg.Day
		day := msg.Day
		return m, persistCmd("first_day_of_week", func() error {
			return m.store.SetFirstDayOfWeek(day)
		})

	case SetShowDateMsg:
		m.showDate = msg.Enabled
		enabled := msg.Enabled
		return m, persistCmd("show_date_in_top_panel", func() error {
			return m.store.SetShowDate(enabled)
		})

	case SelectTimezoneMsg:
		m.selection = msg.Index
		if msg.Index >= 0 && msg.Index < len(m.zones) {
			return m, m.setTimezoneCmd(m.zones[msg.Index])
		}
		return m, nil

	case FaultMsg:
		log.Error().Str("reason", msg.Reason).Msg("date and time service fault")
		return m, nil

	case TickMsg:
		m.sample = m.now()
		m.recompute()
		return m, nil

	case RefreshedMsg:
		m.ntpEnabled = msg.Info.NTPEnabled
		m.zones = msg.Info.Timezones
		m.selection = msg.Info.Selection
		m.sample = m.now()
		m.recompute()
		return m, nil

	case SettingsReloadedMsg:
		m.militaryTime = msg.MilitaryTime
		m.firstDay = msg.FirstDayOfWeek
		m.showDate = msg.ShowDate
		m.recompute()
		return m, nil

	case NoOpMsg:
		return m, nil
	}

	return m, nil
}

// Snapshot is the read-only view of the page state handed to the UI layer.
type Snapshot struct {
	NTPEnabled    bool
	MilitaryTime  bool
	FirstDay      int
	FirstDayIndex int
	ShowDate      bool
	Timezones     []string
	Selection     int
	FormattedDate string
}

// Snapshot renders the current state. FormattedDate is the placeholder
// until a clock sample exists; after that it is the formatter output, which
// is empty when no usable locale was determined.
func (m Model) Snapshot() Snapshot {
	formatted := m.formatted
	if m.sample.IsZero() {
		formatted = m.placeholder
	}
	return Snapshot{
		NTPEnabled:    m.ntpEnabled,
		MilitaryTime:  m.militaryTime,
		FirstDay:      m.firstDay,
		FirstDayIndex: DecodeFirstDay(m.firstDay),
		ShowDate:      m.showDate,
		Timezones:     m.zones,
		Selection:     m.selection,
		FormattedDate: formatted,
	}
}

// now samples the clock, shifted into the selected timezone when that zone
// resolves against the local tz database. Unresolvable zones fall back to
// the process-local zone.
func (m Model) now() time.Time {
	now := m.clock.Now()
	if m.selection >= 0 && m.selection < len(m.zones) {
		if loc, err := time.LoadLocation(m.zones[m.selection]); err == nil {
			return now.In(loc)
		}
	}
	return now
}

// recompute rerenders the cached date line. It runs on every mutation of
// the sample or the hour-cycle flag so reads never observe a stale pairing.
func (m *Model) recompute() {
	if m.sample.IsZero() {
		m.formatted = ""
		return
	}
	m.formatted = m.formatter.Format(m.sample, m.militaryTime)
}
