package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors that write in several steps finish before the
// file is re-read.
const settleDelay = 100 * time.Millisecond

// Watch reloads the config at path whenever it changes on disk and hands
// the result to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so atomic rename-over writes are seen too.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	var lastModTime time.Time
	if stat, err := os.Stat(path); err == nil {
		lastModTime = stat.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			stat, err := os.Stat(path)
			if err != nil || !stat.ModTime().After(lastModTime) {
				continue
			}
			lastModTime = stat.ModTime()

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settleDelay):
			}

			cfg, err := LoadConfigFrom(path)
			if err != nil {
				slog.Warn("config reload failed", "path", path, "error", err)
				continue
			}
			slog.Info("config reloaded", "path", path, "profile", cfg.ActiveProfile)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}
