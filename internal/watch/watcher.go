// Package watch observes a content directory and reports settled
// change batches.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches the burst of events editors and generators
// produce for a single logical change.
const DefaultDebounce = 250 * time.Millisecond

// Watch observes dir (recursively) until ctx is done, invoking fn with
// the paths touched in each settled batch. Directories created while
// watching are added to the watch set. fn runs on the watch goroutine;
// a slow fn delays subsequent batches but loses no events.
func Watch(ctx context.Context, dir string, debounce time.Duration, fn func(paths []string)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := addRecursive(w, dir); err != nil {
		return err
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]bool)
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// New subdirectory: watch it too. Errors here mean the
				// path vanished again or is not a directory.
				_ = addRecursive(w, event.Name)
			}
			pending[event.Name] = true
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", dir, err)

		case <-timerC:
			timer = nil
			timerC = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = make(map[string]bool)
			fn(paths)
		}
	}
}

// addRecursive watches path and every directory below it. Non-directory
// paths are ignored.
func addRecursive(w *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(p)
	})
}
