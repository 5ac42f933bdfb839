package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/listman/internal/config"
)

// MaxFileSize is the size past which an existing log is moved to <file>.1 on open
const MaxFileSize = 5 << 20

// Logger is a JSON slog.Logger bound to the file it writes to.
// The terminal belongs to the TUI, so nothing is ever written to stderr.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Open creates the log directory if needed and appends to the configured file.
// An empty file name, "-" or "off" yields a discarding logger.
func Open(cfg *config.LoggingConfig) (*Logger, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.File)) {
	case "", "-", "off":
		return Discard(), nil
	}

	path, err := expandHome(cfg.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	if err := rotate(path, MaxFileSize); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: levelFromString(cfg.Level)})
	return &Logger{Logger: slog.New(h), file: f}, nil
}

// Discard returns a logger that drops every record
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close closes the underlying file. Calling it more than once is harmless.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// rotate keeps a single previous generation once the log grows past limit
func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() < limit {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}

func levelFromString(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
