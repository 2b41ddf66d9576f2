package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes, so scoring policy can be
// tuned without restarting the engine.
type Watcher struct {
	path     string
	onReload func(*Config)
	watcher  *fsnotify.Watcher
}

// NewWatcher watches path and invokes onReload with each successfully parsed
// config. Parse failures keep the previous config in effect.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Watch the directory: editors replace files on save, which drops the
	// watch when the file itself is watched.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{path: path, onReload: onReload, watcher: fw}, nil
}

// Run processes events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	// Debounce rapid save sequences.
	var pending *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			if cfg, err := Load(w.path); err == nil {
				w.onReload(cfg)
			}
		case <-w.watcher.Errors:
			// Watch errors are non-fatal; the current config stays active.
		}
	}
}
