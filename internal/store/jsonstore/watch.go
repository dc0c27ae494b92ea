package jsonstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/model"
)

// Reload is delivered each time the watched file changes.
// Err is set when the new contents could not be loaded.
type Reload struct {
	Dataset model.Dataset
	Err     error
}

// Watch re-reads path whenever it is written or created.
// The parent directory is watched so editors that replace the file are seen.
// The returned channel is closed once ctx is done.
func Watch(ctx context.Context, path string, log *zap.Logger) (<-chan Reload, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("abs: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				ds, err := Load(abs)
				log.Debug("dataset changed", zap.String("path", abs), zap.String("op", ev.Op.String()), zap.Error(err))
				select {
				case out <- Reload{Dataset: ds, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
