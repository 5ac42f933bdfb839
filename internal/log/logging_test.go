package log

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/listman/internal/config"
)

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := levelFromString(in); got != want {
			t.Errorf("levelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpen_WritesJSONAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "listman.log")
	logger, err := Open(&config.LoggingConfig{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept", "key", "listItems")

	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line at WARN, got %d: %q", len(lines), data)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "kept" || rec["key"] != "listItems" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestOpen_Disabled(t *testing.T) {
	for _, file := range []string{"", "-", "OFF"} {
		logger, err := Open(&config.LoggingConfig{File: file})
		if err != nil {
			t.Fatalf("Open(%q): %v", file, err)
		}
		logger.Error("nowhere")
		if err := logger.Close(); err != nil {
			t.Fatalf("Close on discard logger: %v", err)
		}
	}
}

func TestOpen_RotatesLargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listman.log")
	if err := os.WriteFile(path, make([]byte, MaxFileSize), 0o644); err != nil {
		t.Fatal(err)
	}

	logger, err := Open(&config.LoggingConfig{File: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("fresh")
	logger.Close()

	old, err := os.Stat(path + ".1")
	if err != nil || old.Size() != MaxFileSize {
		t.Fatalf("previous log should move to .1: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "fresh") || len(data) >= MaxFileSize {
		t.Fatalf("new log should start empty, got %d bytes", len(data))
	}
}
