package settings

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch monitors the settings file for modifications made by other programs
// and invokes onChange with the freshly loaded values. The watch covers the
// parent directory so replace-by-rename writes are seen. Watch returns
// immediately; the background goroutine stops when ctx is cancelled.
//
// The watch observes the real filesystem, so it is only meaningful when the
// store runs on the OS filesystem.
func (s *Store) Watch(ctx context.Context, onChange func(Values)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch settings dir: %w", err)
	}

	target := filepath.Clean(s.path)

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				log.Debug().Str("op", event.Op.String()).Str("path", event.Name).Msg("settings file changed externally")
				onChange(s.Load())
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Msgf("error in settings watcher: %s", watchErr)
			}
		}
	}()

	return nil
}
