// Package logger routes slog output to a file, since the terminal belongs
// to the editor while it runs.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileName is the log file created inside the data directory.
const FileName = "zenpad.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
)

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init opens dir/zenpad.log and installs a text handler on it as the
// default slog logger.
func Init(dir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f

	install(f, ParseLevel(level))
	slog.Info("logger initialized", "path", path, "level", levelVar.Level())
	return nil
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level string) {
	levelVar.Set(ParseLevel(level))
}

// Discard silences logging, for commands that never open a log file.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	install(io.Discard, slog.LevelError)
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func install(w io.Writer, level slog.Level) {
	levelVar.Set(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	slog.SetDefault(slog.New(handler))
}
