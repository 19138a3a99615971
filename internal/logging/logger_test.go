package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	config := &Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}

	logPath := logger.LogPath()
	if logPath == "" {
		t.Fatal("LogPath() returned empty string")
	}
	if !strings.HasPrefix(filepath.Base(logPath), "penguins_") {
		t.Errorf("log file name = %q, want penguins_ prefix", filepath.Base(logPath))
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNewWithNilConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(originalDir) }()

	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, ".penguins", "logs")); err != nil {
		t.Errorf("default log dir not created: %v", err)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Fatal("NewNoop() returned nil")
	}

	// Should not panic
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	if logger.LogPath() != "" {
		t.Error("no-op logger should not have a log path")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on no-op logger error = %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelDebug})

	logger.Debug("recomputed", "node", "filtered")

	out := buf.String()
	if !strings.Contains(out, "recomputed") || !strings.Contains(out, "node=filtered") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestLogLevels(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(&Config{Level: LevelDebug, LogDir: tmpDir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(contentStr, msg) {
			t.Errorf("Log file missing %q", msg)
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelWarn})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	contentStr := buf.String()
	if strings.Contains(contentStr, "debug message") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(contentStr, "info message") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(contentStr, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(contentStr, "error message") {
		t.Error("Error message should be present")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelInfo, JSONFormat: true})

	logger.Info("test message", "key", "value")

	contentStr := buf.String()
	if !strings.Contains(contentStr, `"msg"`) {
		t.Error("JSON format should contain 'msg' key")
	}
	if !strings.Contains(contentStr, `"key"`) {
		t.Error("JSON format should contain 'key' key")
	}
}

func TestWith(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(&Config{Level: LevelInfo, LogDir: tmpDir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	widgetLogger := logger.With("widget", "data_grid")
	widgetLogger.Info("rendered")

	if widgetLogger.LogPath() != logger.LogPath() {
		t.Error("With() should keep the parent's log path")
	}
	// Closing the child must not close the parent's file
	if err := widgetLogger.Close(); err != nil {
		t.Errorf("child Close() error = %v", err)
	}
	logger.Info("still writing")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "data_grid") {
		t.Error("Log should contain widget attribute")
	}
	if !strings.Contains(contentStr, "still writing") {
		t.Error("parent logger should still write after child Close()")
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	old := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		name := filepath.Join(tmpDir, fmt.Sprintf("penguins_20240101_0000%02d.log", i))
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test log file: %v", err)
		}
		_ = os.Chtimes(name, old, old)
	}
	// Files from other tools are left alone
	other := filepath.Join(tmpDir, "other.log")
	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	config := &Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "penguins_") {
			count++
		}
	}

	if count > config.MaxLogFiles {
		t.Errorf("Expected at most %d log files, got %d", config.MaxLogFiles, count)
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Error("current log file must survive cleanup")
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("cleanup should not remove foreign files")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{" warning ", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("DefaultConfig().Level = %v, want %v", config.Level, LevelInfo)
	}
	if config.LogDir != ".penguins/logs" {
		t.Errorf("DefaultConfig().LogDir = %v, want %v", config.LogDir, ".penguins/logs")
	}
	if config.MaxLogFiles != 10 {
		t.Errorf("DefaultConfig().MaxLogFiles = %v, want %v", config.MaxLogFiles, 10)
	}
	if config.MaxLogAge != 7*24*time.Hour {
		t.Errorf("DefaultConfig().MaxLogAge = %v, want %v", config.MaxLogAge, 7*24*time.Hour)
	}
	if config.Console {
		t.Error("console logging should be off by default")
	}
}
