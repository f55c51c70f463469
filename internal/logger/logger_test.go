package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Test info message")
	if !strings.Contains(consoleBuffer.String(), "Test info message") {
		t.Errorf("Console output missing info message: %s", consoleBuffer.String())
	}

	logContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logStr := string(logContent)
	if !strings.Contains(logStr, "[INFO]") {
		t.Error("Log file missing INFO level")
	}
	if !strings.Contains(logStr, "Test info message") {
		t.Error("Log file missing info message")
	}
}

func TestLoggerWithoutFile(t *testing.T) {
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, "", false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Info("Console only")
	Warn("Careful")

	if GetLogFilePath() != "" {
		t.Errorf("GetLogFilePath() = %q, expected empty", GetLogFilePath())
	}

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "Console only") {
		t.Error("Console missing info message")
	}
	if !strings.Contains(consoleStr, "⚠️  Careful") {
		t.Errorf("Console missing warning marker: %s", consoleStr)
	}
}

func TestLoggerLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	for _, marker := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, marker) {
			t.Errorf("Log file missing %s level", marker)
		}
	}

	consoleStr := consoleBuffer.String()
	if strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
	if !strings.Contains(consoleStr, "❌ Error message") {
		t.Errorf("Console missing error marker: %s", consoleStr)
	}
}

func TestLoggerVerbose(t *testing.T) {
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, "", true); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should show DEBUG when verbose=true")
	}
	if !strings.Contains(consoleStr, "Debug message") {
		t.Error("Console missing debug message content")
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
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level.String() = %s, expected %s", result, tt.expected)
		}
	}
}

func TestGetLogFilePath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	if err := Init(&bytes.Buffer{}, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if retrievedPath := GetLogFilePath(); retrievedPath != logPath {
		t.Errorf("GetLogFilePath() = %s, expected %s", retrievedPath, logPath)
	}
}

func TestIsVerbose(t *testing.T) {
	if err := Init(&bytes.Buffer{}, "", false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if IsVerbose() {
		t.Error("IsVerbose() should return false when initialized with verbose=false")
	}
	Close()

	if err := Init(&bytes.Buffer{}, "", true); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if !IsVerbose() {
		t.Error("IsVerbose() should return true when initialized with verbose=true")
	}
}
