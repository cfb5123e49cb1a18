package config

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the config file whenever it changes and delivers the
// result on the returned channel. Stale configs are dropped if the consumer
// lags; only the latest one is kept. The watcher stops when ctx is done.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save,
	// which would drop a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	ch := make(chan Config, 1)
	go func() {
		defer watcher.Close()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if evAbs, err := filepath.Abs(event.Name); err != nil || evAbs != abs {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "err", err)
					continue
				}
				// Latest wins. Both the drain and the retry are
				// non-blocking: a consumer emptying the channel between
				// them must not strand this goroutine.
				select {
				case ch <- cfg:
				default:
					select {
					case <-ch:
					default:
					}
					select {
					case ch <- cfg:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return ch, nil
}
