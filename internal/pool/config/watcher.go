package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the policy file into holder whenever it changes, until ctx is done.
// Invalid edits are logged and the previous policy stays in effect.
func Watch(ctx context.Context, path string, holder *Holder, logger *zap.Logger) error {
	if path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create policy watcher: %w", err)
	}
	// editors replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch policy dir: %w", err)
	}

	go func() {
		defer func() {
			_ = watcher.Close()
		}()
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				p, err := Load(path)
				if err != nil {
					logger.Warn("policy reload rejected", zap.String("path", path), zap.Error(err))
					continue
				}
				holder.Set(p)
				logger.Info("policy reloaded", zap.String("path", path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("policy watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
