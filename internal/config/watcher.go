package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-pomodoro/internal/util"
)

// Watcher reloads the configuration file whenever it changes on disk
type Watcher struct {
	loader  Loader
	watcher *fsnotify.Watcher
	events  chan Config
	done    chan struct{}
}

// NewWatcher watches the directory holding loader.Path. Editors often
// replace files instead of writing them, so the directory is watched and
// events are filtered by name.
func NewWatcher(loader Loader) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(loader.Path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		loader:  loader,
		watcher: fsw,
		events:  make(chan Config, 1),
		done:    make(chan struct{}),
	}

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	defer close(w.done)

	target := filepath.Clean(w.loader.Path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			cfg, err := w.loader.Load()
			if err != nil {
				util.LogWarnf("Config reload failed: %v", err)
				continue
			}
			util.LogInfof("Config reloaded from %s", target)
			w.publish(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogErrorf("Config watch error: %v", err)
		}
	}
}

// publish keeps only the newest configuration in the channel
func (w *Watcher) publish(cfg Config) {
	for {
		select {
		case w.events <- cfg:
			return
		default:
			select {
			case <-w.events:
			default:
			}
		}
	}
}

// Events returns reloaded configurations
func (w *Watcher) Events() <-chan Config {
	return w.events
}

// Close stops watching
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
