package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow absorbs the create/rename event pair an atomic write emits.
const debounceWindow = 50 * time.Millisecond

// Watch observes the live state file and invokes onChange with the new
// contents whenever it is rewritten. The watcher runs until ctx is
// canceled; watcher errors are logged, not fatal.
func (s *Store) Watch(ctx context.Context, onChange func(state string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", s.Dir, err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()

		var timer *time.Timer
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != StateFileName {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
					pending = timer.C
				} else {
					timer.Reset(debounceWindow)
				}
			case <-pending:
				state, err := s.Load()
				if err != nil {
					s.Logger.Error("reload state failed", "error", err)
					continue
				}
				onChange(state)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.Logger.Error("watcher error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.Logger.Error("watch loop terminated", "error", err)
	}))

	return nil
}
