// Package timefmt renders wall-clock samples as localized display strings
// for the settings page preview and the panel clock.
package timefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Catalog carries the localized strings the formatter needs for one language.
// Catalogs are plain data so callers can supply their own table at startup.
type Catalog struct {
	Tag      language.Tag
	Months   [12]string
	AM       string
	PM       string
	DayFirst bool // render "15 juillet 2024" instead of "July 15, 2024"
}

// DefaultCatalogs returns the built-in catalog table. English is first and
// acts as the matcher's fallback for related tags.
func DefaultCatalogs() []Catalog {
	return []Catalog{
		{
			Tag: language.English,
			Months: [12]string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			AM: "AM", PM: "PM",
		},
		{
			Tag: language.German,
			Months: [12]string{
				"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember",
			},
			AM: "AM", PM: "PM",
			DayFirst: true,
		},
		{
			Tag: language.French,
			Months: [12]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			AM: "AM", PM: "PM",
			DayFirst: true,
		},
		{
			Tag: language.Spanish,
			Months: [12]string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			AM: "AM", PM: "PM",
			DayFirst: true,
		},
	}
}

// Formatter renders wall-clock samples as display strings. It resolves the
// catalog for its locale once at construction and is safe to copy.
type Formatter struct {
	matcher  language.Matcher
	catalogs []Catalog
	locale   language.Tag
}

// New builds a Formatter for the given locale. When no catalogs are supplied
// the built-in table is used. A language.Und locale produces a Formatter whose
// Format always returns the empty string.
func New(locale language.Tag, catalogs ...Catalog) Formatter {
	if len(catalogs) == 0 {
		catalogs = DefaultCatalogs()
	}
	tags := make([]language.Tag, len(catalogs))
	for i, c := range catalogs {
		tags[i] = c.Tag
	}
	return Formatter{
		matcher:  language.NewMatcher(tags),
		catalogs: catalogs,
		locale:   locale,
	}
}

// Locale reports the locale the Formatter was built with.
func (f Formatter) Locale() language.Tag {
	return f.locale
}

// Format renders the sample with a numeric year, full month name, numeric
// day-of-month, and an hour:minute clock using the 24-hour cycle when military
// is set. It returns "" when the locale is undetermined or no catalog can
// serve it.
func (f Formatter) Format(sample time.Time, military bool) string {
	if f.matcher == nil || f.locale == language.Und {
		return ""
	}
	_, index, conf := f.matcher.Match(f.locale)
	if conf == language.No {
		return ""
	}
	c := f.catalogs[index]
	return c.render(sample, military)
}

func (c Catalog) render(t time.Time, military bool) string {
	month := c.Months[int(t.Month())-1]
	date := fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	if c.DayFirst {
		date = fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
	return date + ", " + c.clock(t, military)
}

func (c Catalog) clock(t time.Time, military bool) string {
	if military {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	marker := c.AM
	if t.Hour() >= 12 {
		marker = c.PM
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), marker)
}
