package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestWatch_DeliversExternalChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "applet.toml")
	s := New(afero.NewOsFs(), path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Values, 4)
	if err := s.Watch(ctx, func(v Values) { changes <- v }); err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}

	doc := "military_time = true\nfirst_day_of_week = 5\nshow_date_in_top_panel = false\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-changes:
		want := Values{MilitaryTime: true, FirstDayOfWeek: 5, ShowDate: false}
		if got != want {
			t.Fatalf("reloaded values = %+v, want %+v", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload delivered after settings file write")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "applet.toml")
	s := New(afero.NewOsFs(), path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Values, 4)
	if err := s.Watch(ctx, func(v Values) { changes <- v }); err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}

	// A sibling write first, then the real file. The first delivery must
	// reflect the real file, proving the sibling event was filtered out.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("military_time = false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile sibling: %v", err)
	}
	if err := os.WriteFile(path, []byte("military_time = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile target: %v", err)
	}

	select {
	case got := <-changes:
		if !got.MilitaryTime {
			t.Fatalf("first delivery MilitaryTime = false, want true from target file")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload delivered after settings file write")
	}
}
