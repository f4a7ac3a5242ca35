package ttkconfig

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads Config whenever the config file changes on disk, so a
// long-running desktop session can pick up a theme or font edit without
// restarting.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// Watch starts watching the config file's directory (fsnotify needs a
// directory handle on most platforms to survive editors that replace the
// file via rename-on-save rather than in-place write).
func Watch() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	dir := Path()
	if err := fsw.Add(dirOf(dir)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}
	return &Watcher{fsw: fsw}, nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

// Next blocks until the config file changes, then returns the reloaded
// Config. It returns an error if the watcher is closed or reload fails.
func (w *Watcher) Next() (*Config, error) {
	target := Path()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil, fmt.Errorf("config watcher closed")
			}
			if ev.Name != target {
				continue
			}
			if !(ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create) {
				continue
			}
			return Load()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil, fmt.Errorf("config watcher closed")
			}
			return nil, fmt.Errorf("config watcher: %w", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
