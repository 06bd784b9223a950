package orchestrator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tracker-tv/workflow-linter/internal/service"
)

const DefaultDebounce = 300 * time.Millisecond

// Watch runs the linter once, then again after every burst of workflow
// file changes under paths, until ctx is cancelled. fn receives each
// run's result.
func (l *Linter) Watch(ctx context.Context, paths []string, fn func(Report, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := addWatch(watcher, p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	fn(l.Run(ctx, paths))

	var timer *time.Timer
	trigger := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addWatch(watcher, ev.Name); err != nil {
						l.logger.Warn("cannot watch directory", "path", ev.Name, "error", err)
					}
					continue
				}
			}
			if ev.Has(fsnotify.Chmod) || !service.IsWorkflowFile(ev.Name) {
				continue
			}
			l.logger.Debug("workflow changed", "path", ev.Name, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(l.debounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			fn(l.Run(ctx, paths))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("watch error", "error", err)
		}
	}
}

// addWatch registers p's directory tree, or the parent of a file.
func addWatch(w *fsnotify.Watcher, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.Add(filepath.Dir(p))
	}
	return filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
