package timefmt

import (
	"fmt"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// DetectLocale resolves the user's display locale from the process
// environment. It is read once at startup; failures leave the formatter
// without a usable locale rather than aborting the program.
func DetectLocale() (language.Tag, error) {
	raw, err := golocale.GetLocale()
	if err != nil {
		return language.Und, fmt.Errorf("detect locale: %w", err)
	}
	return ParseLocale(raw)
}

// ParseLocale normalizes an environment locale value ("en_US.UTF-8",
// "de_DE@euro", "fr-FR") into a BCP 47 tag.
func ParseLocale(raw string) (language.Tag, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return language.Und, fmt.Errorf("empty locale value")
	}
	trimmed, _, _ = strings.Cut(trimmed, ".")
	trimmed, _, _ = strings.Cut(trimmed, "@")
	trimmed = strings.ReplaceAll(trimmed, "_", "-")

	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	return tag, nil
}
