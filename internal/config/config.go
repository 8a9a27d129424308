package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config carries the application settings read once at startup.
type Config struct {
	// Theme names the color theme the UI starts with.
	Theme string
	// TickSeconds is the cadence of the live clock.
	TickSeconds int
	// CallTimeoutSeconds bounds each system bus call.
	CallTimeoutSeconds int
	// SettingsPath overrides the shared applet settings file location.
	// Empty selects the default under the user configuration directory.
	SettingsPath string
	// Locale forces the display locale. Empty detects it from the
	// process environment.
	Locale string
	// LogFile is where structured log events go. The terminal belongs to
	// the TUI, so this is the only log destination.
	LogFile string
	// LogLines is how many lines the diagnostics pane shows.
	LogLines int
	// Debug lowers the log level threshold to debug.
	Debug bool
}

const (
	defaultConfigPath  = "~/.config/timedeck/config.toml"
	defaultTheme       = "dark"
	defaultTickSeconds = 1
	defaultCallTimeout = 5
	defaultLogLines    = 200
)

func defaults() Config {
	return Config{
		Theme:              defaultTheme,
		TickSeconds:        defaultTickSeconds,
		CallTimeoutSeconds: defaultCallTimeout,
		LogFile:            defaultLogFile(),
		LogLines:           defaultLogLines,
	}
}

func defaultLogFile() string {
	return filepath.Join(xdg.StateHome, "timedeck", "timedeck.log")
}

// Load locates and parses the application config, falling back to defaults
// when the file is missing. A file that exists but does not parse is a
// startup error; running with silently ignored configuration would be
// worse than not starting.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme              string `toml:"theme"`
		TickSeconds        int    `toml:"tick_seconds"`
		CallTimeoutSeconds int    `toml:"call_timeout_seconds"`
		SettingsPath       string `toml:"settings_path"`
		Locale             string `toml:"locale"`
		LogFile            string `toml:"log_file"`
		LogLines           int    `toml:"log_lines"`
		Debug              bool   `toml:"debug"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.TickSeconds > 0 {
		cfg.TickSeconds = raw.TickSeconds
	}
	if raw.CallTimeoutSeconds > 0 {
		cfg.CallTimeoutSeconds = raw.CallTimeoutSeconds
	}
	if raw.LogLines > 0 {
		cfg.LogLines = raw.LogLines
	}
	cfg.SettingsPath = strings.TrimSpace(raw.SettingsPath)
	if cfg.SettingsPath != "" {
		cfg.SettingsPath = mustExpand(cfg.SettingsPath)
	}
	cfg.Locale = strings.TrimSpace(raw.Locale)
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.Debug = raw.Debug

	return cfg, nil
}

// TickInterval returns the live clock cadence as a duration.
func (c Config) TickInterval() time.Duration {
	if c.TickSeconds <= 0 {
		return defaultTickSeconds * time.Second
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// CallTimeout returns the per-call system bus timeout as a duration.
func (c Config) CallTimeout() time.Duration {
	if c.CallTimeoutSeconds <= 0 {
		return defaultCallTimeout * time.Second
	}
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
