package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.todo/logs/todo.log.
// Uses text format for human readability. Logging is diagnostics only; all
// user-facing output goes to stdout/stderr, so a failure here falls back to
// a discard handler instead of aborting.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return discard(err)
	}

	logDir := filepath.Join(homeDir, ".todo", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return discard(err)
	}

	logPath := filepath.Join(logDir, "todo.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard(err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	return nil
}

func discard(err error) error {
	Logger = slog.New(slog.DiscardHandler)
	slog.SetDefault(Logger)
	return err
}
