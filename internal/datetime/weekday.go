package datetime

// The page offers four rotating "start of week" choices rather than a full
// seven-day ordering: Friday, Saturday, Sunday, Monday, in that dropdown
// order. The applet config stores the day as a numeric code (0=Monday through
// 6=Sunday), so the two numbering schemes need a translation table.

// FirstDayChoices is the number of entries in the start-of-week dropdown.
const FirstDayChoices = 4

// DecodeFirstDay maps a persisted applet weekday code to the dropdown index.
// Every code outside {4, 5, 0} collapses onto the Sunday entry; the decode
// direction is deliberately lossy.
func DecodeFirstDay(code int) int {
	switch code {
	case 4:
		return 0 // friday
	case 5:
		return 1 // saturday
	case 0:
		return 3 // monday
	default:
		return 2 // sunday
	}
}

// EncodeFirstDay maps a dropdown index back to the applet weekday code.
func EncodeFirstDay(index int) int {
	switch index {
	case 0:
		return 4 // friday
	case 1:
		return 5 // saturday
	case 3:
		return 0 // monday
	default:
		return 6 // sunday
	}
}
