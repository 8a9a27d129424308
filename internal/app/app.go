package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/kelgrand/timedeck/internal/config"
	"github.com/kelgrand/timedeck/internal/datetime"
	"github.com/kelgrand/timedeck/internal/settings"
	"github.com/kelgrand/timedeck/internal/timedated"
	"github.com/kelgrand/timedeck/internal/timefmt"
	"github.com/kelgrand/timedeck/internal/ui"
)

// Options configure the timedeck application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/timedeck/config.toml
	TickSeconds int    // overrides the config's tick cadence when positive
}

// Run boots the timedeck TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.TickSeconds > 0 {
		cfg.TickSeconds = opts.TickSeconds
	}

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	locale := detectLocale(cfg.Locale)
	formatter := timefmt.New(locale, timefmt.DefaultCatalogs()...)

	store := settings.New(afero.NewOsFs(), cfg.SettingsPath)
	client := timedated.New(cfg.CallTimeout())

	strs := ui.DefaultStrings()
	page := datetime.New(client, store, formatter, clockwork.NewRealClock(), strs.UnknownTime)

	m := ui.New(ui.Options{
		Page:      page,
		Strings:   strs,
		ThemeName: cfg.Theme,
		Tick:      cfg.TickInterval(),
		LogFile:   cfg.LogFile,
		LogLines:  cfg.LogLines,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	watchSettings(ctx, store, p)

	// Quit cleanly on SIGINT/SIGTERM delivered through the context.
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Info().
		Str("settings", store.Path()).
		Str("locale", locale.String()).
		Msg("timedeck starting")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// initLogging routes the global logger to a rotating file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
func initLogging(cfg config.Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o750); err != nil {
		return err
	}

	log.Logger = log.Output(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    1,
		MaxBackups: 2,
	}).With().Timestamp().Caller().Logger()

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return nil
}

// detectLocale resolves the display locale once at startup: the config
// override wins, then the environment, then none. An undetermined locale
// leaves the formatter producing empty strings rather than failing startup.
func detectLocale(override string) language.Tag {
	if override != "" {
		tag, err := timefmt.ParseLocale(override)
		if err == nil {
			return tag
		}
		log.Warn().Err(err).Str("locale", override).Msg("config locale override unusable")
	}

	tag, err := timefmt.DetectLocale()
	if err != nil {
		log.Warn().Err(err).Msg("no usable display locale")
		return language.Und
	}
	return tag
}

// watchSettings starts the external-change watcher and forwards reloads
// into the running program. Watch failures only disable the feature; the
// page keeps the values it has.
func watchSettings(ctx context.Context, store *settings.Store, p *tea.Program) {
	err := store.Watch(ctx, func(v settings.Values) {
		p.Send(datetime.SettingsReloadedMsg{
			MilitaryTime:   v.MilitaryTime,
			FirstDayOfWeek: v.FirstDayOfWeek,
			ShowDate:       v.ShowDate,
		})
	})
	if err != nil {
		log.Warn().Err(err).Msg("settings watch disabled")
	}
}
