package events

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogAppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "t2wizard.jsonl")

	logger, err := NewAuditLogger(logPath, 0)
	if err != nil {
		t.Fatalf("NewAuditLogger() error: %v", err)
	}
	defer logger.Close()

	if err := logger.Log("field_applied", map[string]interface{}{"field": "corporationName"}); err != nil {
		t.Fatalf("Log() error: %v", err)
	}
	if err := logger.Log("advanced", map[string]interface{}{"step": "corporationName", "cursor": 1}); err != nil {
		t.Fatalf("Log() error: %v", err)
	}

	file, err := os.Open(logPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("line is not JSON: %v", err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].EventType != "field_applied" || entries[0].Step != "corporationName" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Step != "corporationName" {
		t.Errorf("step not lifted from details: %+v", entries[1])
	}
	if entries[0].SessionID == "" || entries[0].SessionID != entries[1].SessionID {
		t.Errorf("session ID not stable: %q vs %q", entries[0].SessionID, entries[1].SessionID)
	}
	if entries[0].SessionID != logger.SessionID() {
		t.Errorf("entry session %q != logger session %q", entries[0].SessionID, logger.SessionID())
	}
}

func TestSessionIDsDifferAcrossLoggers(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAuditLogger(filepath.Join(dir, "a.jsonl"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := NewAuditLogger(filepath.Join(dir, "b.jsonl"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if a.SessionID() == b.SessionID() {
		t.Error("two loggers share a session ID")
	}
}

func TestRotationArchivesOldLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "t2wizard.jsonl")

	// Tiny cap forces rotation on the second entry.
	logger, err := NewAuditLogger(logPath, 200)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	for i := 0; i < 5; i++ {
		if err := logger.Log("advanced", map[string]interface{}{"cursor": i}); err != nil {
			t.Fatalf("Log() error: %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, ArchiveDir))
	if err != nil {
		t.Fatalf("no archive dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no archived logs")
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), LogFileExtension) {
			t.Errorf("archive name %q missing %s suffix", e.Name(), LogFileExtension)
		}
	}

	// The active log still exists and stays under the cap.
	stat, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Size() > 200 {
		t.Errorf("active log size %d exceeds cap", stat.Size())
	}
}
