package ui

import "strings"

// Strings is the display-string table for the UI. It is built once at
// startup and passed in through Options; nothing in this package reads
// translations from globals. Translation lookup itself happens before the
// program starts, by whoever constructs the table.
type Strings struct {
	Title string

	// Section titles
	SectionSync     string
	SectionFormat   string
	SectionTimezone string

	// Control labels
	AutoSync     string
	MilitaryTime string
	FirstDay     string
	ShowDate     string
	Timezone     string

	// The four start-of-week choices, in dropdown order.
	Weekdays [4]string

	// Placeholder shown while no clock sample exists.
	UnknownTime string

	// Timezone picker
	PickerTitle string
	NoTimezones string

	// Diagnostics pane
	DiagnosticsTitle string
	NoDiagnostics    string
}

// DefaultStrings returns the built-in English table.
func DefaultStrings() Strings {
	return Strings{
		Title: "Date & Time",

		SectionSync:     "Date and time",
		SectionFormat:   "Time format",
		SectionTimezone: "Time zone",

		AutoSync:     "Automatic date and time",
		MilitaryTime: "Military time (24-hour clock)",
		FirstDay:     "First day of the week",
		ShowDate:     "Show the date in the top panel",
		Timezone:     "Time zone",

		Weekdays: [4]string{"Friday", "Saturday", "Sunday", "Monday"},

		UnknownTime: "Unknown",

		PickerTitle: "Select a time zone",
		NoTimezones: "No time zones reported by the system.",

		DiagnosticsTitle: "Diagnostics",
		NoDiagnostics:    "No log entries yet.",
	}
}

// WeekdayLabel returns the label for a dropdown index, guarding against
// out-of-range indexes from unrecognized persisted codes.
func (s Strings) WeekdayLabel(index int) string {
	if index < 0 || index >= len(s.Weekdays) {
		index = 2
	}
	return s.Weekdays[index]
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
