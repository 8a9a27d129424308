// Package settings persists the date and time display preferences shared
// with the panel clock applet. Preferences are stored in
// ~/.config/timedeck/applet.toml.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Values mirrors the on-disk TOML document. Key names and defaults follow
// the applet's convention and must not change independently of it.
type Values struct {
	MilitaryTime   bool `toml:"military_time"`
	FirstDayOfWeek int  `toml:"first_day_of_week"`
	ShowDate       bool `toml:"show_date_in_top_panel"`
}

// Defaults returns the values assumed when the settings file is missing or
// unreadable: 12-hour clock, week starting Sunday (applet code 6), date
// shown in the panel.
func Defaults() Values {
	return Values{
		MilitaryTime:   false,
		FirstDayOfWeek: 6,
		ShowDate:       true,
	}
}

// Store reads and writes the shared settings file. All access goes through
// an afero filesystem so persistence faults are reproducible in tests, and
// through a single mutex so background writes never interleave.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// New returns a store bound to path on fsys. An empty path selects the
// default location under the user configuration directory.
func New(fsys afero.Fs, path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Store{fs: fsys, path: path}
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "timedeck", "applet.toml")
}

// Path returns the settings file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole settings document. A missing file is the normal
// first-run state and yields defaults silently; an unreadable or malformed
// file degrades to defaults with a logged warning.
func (s *Store) Load() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// MilitaryTime reports whether the 24-hour clock is enabled.
func (s *Store) MilitaryTime() bool {
	return s.Load().MilitaryTime
}

// FirstDayOfWeek returns the applet weekday code for the start of the week.
func (s *Store) FirstDayOfWeek() int {
	return s.Load().FirstDayOfWeek
}

// ShowDate reports whether the panel clock shows the date.
func (s *Store) ShowDate() bool {
	return s.Load().ShowDate
}

// SetMilitaryTime persists the 24-hour clock flag.
func (s *Store) SetMilitaryTime(enabled bool) error {
	return s.mutate(func(v *Values) { v.MilitaryTime = enabled })
}

// SetFirstDayOfWeek persists the applet weekday code for the start of the week.
func (s *Store) SetFirstDayOfWeek(code int) error {
	return s.mutate(func(v *Values) { v.FirstDayOfWeek = code })
}

// SetShowDate persists whether the panel clock shows the date.
func (s *Store) SetShowDate(enabled bool) error {
	return s.mutate(func(v *Values) { v.ShowDate = enabled })
}

func (s *Store) mutate(apply func(*Values)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals := s.load()
	apply(&vals)

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := toml.Marshal(vals)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// load must be called with the mutex held. Missing keys in an otherwise
// valid document keep their defaults.
func (s *Store) load() Values {
	vals := Defaults()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.path).Msg("settings unreadable, using defaults")
		}
		return vals
	}

	if err := toml.Unmarshal(data, &vals); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("settings malformed, using defaults")
		return Defaults()
	}
	return vals
}
