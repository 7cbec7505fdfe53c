package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func restoreLog(t *testing.T) {
	t.Helper()
	w, flags, prefix := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(w)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	if logFile := setupLogging(false, dir); logFile != nil {
		logFile.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log directory created while disabled")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile := setupLogging(true, dir)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "Test log message") {
		t.Errorf("log file = %q", line)
	}
	id, _, ok := strings.Cut(strings.TrimPrefix(line, "["), "] ")
	if !strings.HasPrefix(line, "[") || !ok {
		t.Fatalf("missing session prefix: %q", line)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("session prefix %q is not a uuid: %v", id, err)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	restoreLog(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile := setupLogging(true, dir)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	restoreLog(t)

	logFile := setupLogging(true, t.TempDir())
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
