package datetime

// Messages accepted by the page reducer. Each is constructible from a user
// gesture in the hosting UI or from the completion of a background command;
// both kinds arrive through the same Update path in delivery order.

// SetAutoSyncMsg turns automatic time synchronization on or off.
type SetAutoSyncMsg struct {
	Enabled bool
}

// SetMilitaryTimeMsg switches between the 12-hour and 24-hour clock.
type SetMilitaryTimeMsg struct {
	Enabled bool
}

// SetFirstDayMsg changes the start of the week. Day is the applet weekday
// code, not the dropdown index; use EncodeFirstDay to build it from one.
type SetFirstDayMsg struct {
	Day int
}

// SetShowDateMsg toggles the date in the panel clock.
type SetShowDateMsg struct {
	Enabled bool
}

// SelectTimezoneMsg picks an entry from the fetched timezone list. Index
// refers to the service-ordered list, not to any filtered view of it.
type SelectTimezoneMsg struct {
	Index int
}

// FaultMsg reports a failed service operation. It carries diagnostic text
// only; folding it never alters the settings state.
type FaultMsg struct {
	Reason string
}

// TickMsg asks the page to resample the clock and rerender the date line.
type TickMsg struct{}

// Info is the result of one full refresh against the time service.
type Info struct {
	// NTPEnabled is the combined "supported and active" answer.
	NTPEnabled bool
	// Timezones preserves the service's own ordering, which callers use as
	// the index space for selections.
	Timezones []string
	// Selection is the position of the current system timezone inside
	// Timezones, or -1 when it was not found there.
	Selection int
}

// RefreshedMsg delivers the outcome of the page activation sequence.
type RefreshedMsg struct {
	Info Info
}

// SettingsReloadedMsg carries settings picked up from an external change to
// the shared settings file.
type SettingsReloadedMsg struct {
	MilitaryTime   bool
	FirstDayOfWeek int
	ShowDate       bool
}

// NoOpMsg is returned by background commands whose outcome needs no state
// change, so their completion still flows through the reducer.
type NoOpMsg struct{}
