package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"t2wizard/internal/model"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, dir
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, _ := openTestStore(t)
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Answers) != 0 || len(snap.CCAItems) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestLoadUnreadableFileStartsEmpty(t *testing.T) {
	s, _ := openTestStore(t)
	// A directory at the state path makes the read fail outright, which is
	// not the same failure as a parse error on bad contents.
	if err := os.Mkdir(s.Path(), 0755); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Answers) != 0 || len(snap.CCAItems) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	snap := model.Snapshot{
		Answers: model.Answers{
			"corporationName":                  "Northline Tools Inc.",
			"eligibleDividendsPaid":            true,
			"provinceOfPermanentEstablishment": []string{"ON", "QC"},
		},
		CCAItems: []model.CCAItem{{
			ID:          "cca_1718000000_ab12cd34",
			ClassNumber: "8",
			Rate:        "20",
		}},
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Answers.String("corporationName") != "Northline Tools Inc." {
		t.Errorf("corporationName = %q", got.Answers.String("corporationName"))
	}
	if v, ok := got.Answers.Bool("eligibleDividendsPaid"); !ok || !v {
		t.Errorf("eligibleDividendsPaid not restored as boolean: %v", got.Answers["eligibleDividendsPaid"])
	}
	provinces := got.Answers.Strings("provinceOfPermanentEstablishment")
	if len(provinces) != 2 || provinces[0] != "ON" {
		t.Errorf("provinces = %v", provinces)
	}
	if len(got.CCAItems) != 1 || got.CCAItems[0].ClassNumber != "8" {
		t.Errorf("cca items = %+v", got.CCAItems)
	}
}

func TestSaveKeepsBackup(t *testing.T) {
	s, _ := openTestStore(t)
	first := model.Snapshot{Answers: model.Answers{"corporationName": "First"}}
	second := model.Snapshot{Answers: model.Answers{"corporationName": "Second"}}
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	bak, err := os.ReadFile(s.Path() + ".bak")
	if err != nil {
		t.Fatalf("no backup: %v", err)
	}
	if string(bak) == "" {
		t.Error("backup is empty")
	}
}

func TestLoadCorruptRestoresBackup(t *testing.T) {
	s, dir := openTestStore(t)
	if err := s.Save(model.Snapshot{Answers: model.Answers{"corporationName": "Kept"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(model.Snapshot{Answers: model.Answers{"corporationName": "Clobbered"}}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("answers: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Answers.String("corporationName") != "Kept" {
		t.Errorf("corporationName = %q, want backup contents", snap.Answers.String("corporationName"))
	}

	entries, err := os.ReadDir(filepath.Join(dir, "quarantine"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("quarantine entries = %v (err %v), want one", entries, err)
	}
	name := entries[0].Name()
	if filepath.Ext(name) != ".corrupt" {
		t.Errorf("quarantine name = %q, want .corrupt suffix", name)
	}
}

func TestLoadCorruptWithoutBackupStartsEmpty(t *testing.T) {
	s, _ := openTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("\x00\x01garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Answers) != 0 {
		t.Errorf("answers = %v, want empty", snap.Answers)
	}
	// The skeleton left behind parses on the next load.
	if _, err := s.Load(); err != nil {
		t.Errorf("second Load() error: %v", err)
	}
}

func TestRestoreRejectsBackupWithWrongHeader(t *testing.T) {
	s, _ := openTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("answers: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	// Valid YAML, but not a session document. Recovery must skip it and
	// fall back to the skeleton instead of restoring it.
	if err := os.WriteFile(s.Path()+".bak", []byte("file_type: something_else\n"), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Answers) != 0 {
		t.Errorf("answers = %v, want empty", snap.Answers)
	}
	if _, err := s.Load(); err != nil {
		t.Errorf("second Load() error: %v", err)
	}
}

func TestLoadWrongFileTypeRecovers(t *testing.T) {
	s, dir := openTestStore(t)
	content := "schema_version: 1\nfile_type: something_else\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Answers) != 0 {
		t.Errorf("answers = %v, want empty", snap.Answers)
	}
	if _, err := os.ReadDir(filepath.Join(dir, "quarantine")); err != nil {
		t.Errorf("expected quarantine dir: %v", err)
	}
}

func TestClearRemovesStateAndBackup(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Save(model.Snapshot{Answers: model.Answers{"a": "1"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(model.Snapshot{Answers: model.Answers{"a": "2"}}); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("state file still present")
	}
	if _, err := os.Stat(s.Path() + ".bak"); !os.IsNotExist(err) {
		t.Error("backup still present")
	}
	// Clearing an already-clean directory is fine.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}

func TestOpenRejectsSecondWriter(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open() error: %v", err)
	}
	defer first.Close()

	if _, err := Open(dir); err == nil {
		t.Fatal("second Open() succeeded, want lock failure")
	}

	if err := first.Close(); err != nil {
		t.Fatal(err)
	}
	third, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() after release error: %v", err)
	}
	_ = third.Close()
}

func TestWatchSignalsExternalWrite(t *testing.T) {
	s, _ := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	// Give the watcher goroutine time to register.
	time.Sleep(100 * time.Millisecond)
	content := "schema_version: 1\nfile_type: wizard_state\nanswers: {}\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal within 5s")
	}

	cancel()
	select {
	case _, open := <-changes:
		if open {
			// Drain the coalesced signal; the channel must close after.
			if _, open := <-changes; open {
				t.Error("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
