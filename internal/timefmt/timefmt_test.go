package timefmt

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

var sample = time.Date(2024, time.July, 15, 13, 5, 0, 0, time.UTC)

func TestFormat_HourCycle(t *testing.T) {
	f := New(language.English)

	got := f.Format(sample, true)
	if got != "July 15, 2024, 13:05" {
		t.Fatalf("military format = %q, want %q", got, "July 15, 2024, 13:05")
	}

	got = f.Format(sample, false)
	if got != "July 15, 2024, 1:05 PM" {
		t.Fatalf("12-hour format = %q, want %q", got, "July 15, 2024, 1:05 PM")
	}
}

func TestFormat_TwelveHourEdges(t *testing.T) {
	f := New(language.English)

	tests := []struct {
		name string
		hour int
		want string
	}{
		{"midnight", 0, "July 15, 2024, 12:05 AM"},
		{"morning", 9, "July 15, 2024, 9:05 AM"},
		{"noon", 12, "July 15, 2024, 12:05 PM"},
		{"afternoon", 13, "July 15, 2024, 1:05 PM"},
		{"evening", 23, "July 15, 2024, 11:05 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2024, time.July, 15, tt.hour, 5, 0, 0, time.UTC)
			if got := f.Format(at, false); got != tt.want {
				t.Fatalf("Format(hour=%d) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestFormat_MilitaryZeroPadsHour(t *testing.T) {
	f := New(language.English)
	at := time.Date(2024, time.July, 15, 7, 5, 0, 0, time.UTC)
	if got := f.Format(at, true); got != "July 15, 2024, 07:05" {
		t.Fatalf("Format = %q, want %q", got, "July 15, 2024, 07:05")
	}
}

func TestFormat_RegionalVariantMatchesBase(t *testing.T) {
	f := New(language.MustParse("en-AU"))
	if got := f.Format(sample, true); got != "July 15, 2024, 13:05" {
		t.Fatalf("Format = %q, want %q", got, "July 15, 2024, 13:05")
	}
}

func TestFormat_DayFirstCatalog(t *testing.T) {
	f := New(language.MustParse("de-DE"))
	if got := f.Format(sample, true); got != "15 Juli 2024, 13:05" {
		t.Fatalf("Format = %q, want %q", got, "15 Juli 2024, 13:05")
	}
}

func TestFormat_UndeterminedLocaleIsEmpty(t *testing.T) {
	f := New(language.Und)
	if got := f.Format(sample, true); got != "" {
		t.Fatalf("Format = %q, want empty string", got)
	}
}

func TestFormat_UnsupportedLocaleIsEmpty(t *testing.T) {
	f := New(language.Japanese)
	if got := f.Format(sample, true); got != "" {
		t.Fatalf("Format = %q, want empty string", got)
	}
}

func TestFormat_ZeroFormatterIsEmpty(t *testing.T) {
	var f Formatter
	if got := f.Format(sample, false); got != "" {
		t.Fatalf("Format = %q, want empty string", got)
	}
}

func TestFormat_CustomCatalog(t *testing.T) {
	custom := Catalog{
		Tag: language.English,
		Months: [12]string{
			"jan", "feb", "mar", "apr", "may", "jun",
			"jul", "aug", "sep", "oct", "nov", "dec",
		},
		AM: "am", PM: "pm",
	}
	f := New(language.English, custom)
	if got := f.Format(sample, false); got != "jul 15, 2024, 1:05 pm" {
		t.Fatalf("Format = %q, want %q", got, "jul 15, 2024, 1:05 pm")
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    language.Tag
		wantErr bool
	}{
		{"posix with encoding", "en_US.UTF-8", language.MustParse("en-US"), false},
		{"posix with modifier", "de_DE@euro", language.MustParse("de-DE"), false},
		{"bcp47", "fr-FR", language.MustParse("fr-FR"), false},
		{"bare language", "es", language.Spanish, false},
		{"padded", "  en_GB.UTF-8  ", language.MustParse("en-GB"), false},
		{"empty", "", language.Und, true},
		{"whitespace", "   ", language.Und, true},
		{"c locale", "C", language.Und, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocale(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLocale(%q) error = nil, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseLocale(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDetectLocale_UsesEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANGUAGE", "")
	t.Setenv("LANG", "fr_FR.UTF-8")

	tag, err := DetectLocale()
	if err != nil {
		t.Fatalf("DetectLocale returned error: %v", err)
	}
	if tag != language.MustParse("fr-FR") {
		t.Fatalf("DetectLocale = %v, want fr-FR", tag)
	}
}
