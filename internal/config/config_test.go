package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.TickSeconds != defaultTickSeconds {
		t.Fatalf("TickSeconds = %d, want %d", cfg.TickSeconds, defaultTickSeconds)
	}
	if cfg.CallTimeoutSeconds != defaultCallTimeout {
		t.Fatalf("CallTimeoutSeconds = %d, want %d", cfg.CallTimeoutSeconds, defaultCallTimeout)
	}
	if cfg.LogLines != defaultLogLines {
		t.Fatalf("LogLines = %d, want %d", cfg.LogLines, defaultLogLines)
	}
	if cfg.SettingsPath != "" {
		t.Fatalf("SettingsPath = %q, want empty for store default", cfg.SettingsPath)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.FromSlash("timedeck/timedeck.log")) {
		t.Fatalf("LogFile = %q, want it to end with timedeck/timedeck.log", cfg.LogFile)
	}
	if cfg.Debug {
		t.Fatalf("Debug = true, want false by default")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "  light  "
tick_seconds = 5
call_timeout_seconds = 2
settings_path = "  ~/panel/applet.toml  "
locale = " de_DE.UTF-8 "
log_lines = 50
debug = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "light")
	}
	if cfg.TickSeconds != 5 {
		t.Fatalf("TickSeconds = %d, want 5", cfg.TickSeconds)
	}
	if cfg.CallTimeoutSeconds != 2 {
		t.Fatalf("CallTimeoutSeconds = %d, want 2", cfg.CallTimeoutSeconds)
	}
	if want := filepath.Join(home, "panel", "applet.toml"); cfg.SettingsPath != want {
		t.Fatalf("SettingsPath = %q, want %q", cfg.SettingsPath, want)
	}
	if cfg.Locale != "de_DE.UTF-8" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "de_DE.UTF-8")
	}
	if cfg.LogLines != 50 {
		t.Fatalf("LogLines = %d, want 50", cfg.LogLines)
	}
	if !cfg.Debug {
		t.Fatalf("Debug = false, want true")
	}
}

func TestLoad_EmptyAndNonPositiveValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "   "
tick_seconds = 0
call_timeout_seconds = -3
log_lines = 0
log_file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.TickSeconds != defaultTickSeconds {
		t.Fatalf("TickSeconds = %d, want %d", cfg.TickSeconds, defaultTickSeconds)
	}
	if cfg.CallTimeoutSeconds != defaultCallTimeout {
		t.Fatalf("CallTimeoutSeconds = %d, want %d", cfg.CallTimeoutSeconds, defaultCallTimeout)
	}
	if cfg.LogLines != defaultLogLines {
		t.Fatalf("LogLines = %d, want %d", cfg.LogLines, defaultLogLines)
	}
	if cfg.LogFile == "" {
		t.Fatalf("LogFile empty, want default path")
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Config{TickSeconds: 3, CallTimeoutSeconds: 7}
	if got := cfg.TickInterval(); got != 3*time.Second {
		t.Fatalf("TickInterval = %v, want 3s", got)
	}
	if got := cfg.CallTimeout(); got != 7*time.Second {
		t.Fatalf("CallTimeout = %v, want 7s", got)
	}

	var zero Config
	if got := zero.TickInterval(); got != defaultTickSeconds*time.Second {
		t.Fatalf("zero TickInterval = %v, want default", got)
	}
	if got := zero.CallTimeout(); got != defaultCallTimeout*time.Second {
		t.Fatalf("zero CallTimeout = %v, want default", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
