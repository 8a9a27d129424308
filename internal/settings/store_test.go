package settings

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/config/applet.toml")

	got := s.Load()
	want := Defaults()
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := "military_time = true\nfirst_day_of_week = 0\nshow_date_in_top_panel = false\n"
	if err := afero.WriteFile(fs, "/config/applet.toml", []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(fs, "/config/applet.toml")
	got := s.Load()
	want := Values{MilitaryTime: true, FirstDayOfWeek: 0, ShowDate: false}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_MissingKeysKeepDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/config/applet.toml", []byte("military_time = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(fs, "/config/applet.toml")
	got := s.Load()
	if !got.MilitaryTime {
		t.Fatalf("MilitaryTime = false, want true")
	}
	if got.FirstDayOfWeek != 6 {
		t.Fatalf("FirstDayOfWeek = %d, want 6", got.FirstDayOfWeek)
	}
	if !got.ShowDate {
		t.Fatalf("ShowDate = false, want true")
	}
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/config/applet.toml", []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(fs, "/config/applet.toml")
	if got, want := s.Load(), Defaults(); got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestTypedGetters(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := "military_time = true\nfirst_day_of_week = 4\nshow_date_in_top_panel = false\n"
	if err := afero.WriteFile(fs, "/config/applet.toml", []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(fs, "/config/applet.toml")
	if !s.MilitaryTime() {
		t.Fatalf("MilitaryTime = false, want true")
	}
	if got := s.FirstDayOfWeek(); got != 4 {
		t.Fatalf("FirstDayOfWeek = %d, want 4", got)
	}
	if s.ShowDate() {
		t.Fatalf("ShowDate = true, want false")
	}
}

func TestSet_CreatesFileAndDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "/deep/nested/config/applet.toml")

	if err := s.SetMilitaryTime(true); err != nil {
		t.Fatalf("SetMilitaryTime returned error: %v", err)
	}

	got := s.Load()
	if !got.MilitaryTime {
		t.Fatalf("MilitaryTime = false, want true after write")
	}
}

func TestSet_PreservesOtherKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := "military_time = true\nfirst_day_of_week = 4\nshow_date_in_top_panel = true\n"
	if err := afero.WriteFile(fs, "/config/applet.toml", []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(fs, "/config/applet.toml")
	if err := s.SetShowDate(false); err != nil {
		t.Fatalf("SetShowDate returned error: %v", err)
	}

	got := s.Load()
	if !got.MilitaryTime {
		t.Fatalf("MilitaryTime = false, want true preserved")
	}
	if got.FirstDayOfWeek != 4 {
		t.Fatalf("FirstDayOfWeek = %d, want 4 preserved", got.FirstDayOfWeek)
	}
	if got.ShowDate {
		t.Fatalf("ShowDate = true, want false after write")
	}
}

func TestSet_ReadOnlyFilesystemReportsError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := New(fs, "/config/applet.toml")

	if err := s.SetShowDate(true); err == nil {
		t.Fatalf("SetShowDate on read-only filesystem returned nil error")
	}
}

func TestNew_EmptyPathUsesDefault(t *testing.T) {
	s := New(afero.NewMemMapFs(), "")
	if got := filepath.Base(s.Path()); got != "applet.toml" {
		t.Fatalf("Path base = %q, want %q", got, "applet.toml")
	}
}
