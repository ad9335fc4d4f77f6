// Package store persists the wizard session as a YAML document with atomic
// writes, backup/quarantine recovery for corrupt files, and a flock guard so
// two processes never write the same session.
package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	"t2wizard/internal/model"
)

const (
	CurrentSchemaVersion = 1
	stateFileType        = "wizard_state"
	stateFileName        = "state.yaml"
	lockFileName         = ".lock"
)

type document struct {
	SchemaVersion int             `yaml:"schema_version"`
	FileType      string          `yaml:"file_type"`
	UpdatedAt     string          `yaml:"updated_at"`
	Answers       map[string]any  `yaml:"answers"`
	CCAItems      []model.CCAItem `yaml:"cca_items"`
}

// Store owns one session directory. Open it once per process; the embedded
// file lock rejects a second writer.
type Store struct {
	dir  string
	path string
	lock *FileLock
}

// Open prepares the session directory and takes the writer lock.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	lock := NewFileLock(filepath.Join(dir, lockFileName))
	if err := lock.TryLock(); err != nil {
		return nil, err
	}
	return &Store{
		dir:  dir,
		path: filepath.Join(dir, stateFileName),
		lock: lock,
	}, nil
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Load reads the saved session. A missing file is an empty session; a
// corrupt file is quarantined and recovered from backup where possible, and
// an empty session is the worst case. Load never fails the caller over bad
// file contents.
func (s *Store) Load() (model.Snapshot, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.EmptySnapshot(), nil
	}
	if err != nil {
		log.Printf("state file unreadable, starting empty: %v", err)
		return model.EmptySnapshot(), nil
	}

	doc, err := parseDocument(content)
	if err != nil {
		log.Printf("state file unreadable: %v", err)
		if rerr := RecoverCorruptedFile(s.dir, s.path); rerr != nil {
			log.Printf("state recovery failed, starting empty: %v", rerr)
			return model.EmptySnapshot(), nil
		}
		content, err = os.ReadFile(s.path)
		if err != nil {
			return model.EmptySnapshot(), nil
		}
		doc, err = parseDocument(content)
		if err != nil {
			log.Printf("recovered state still unreadable, starting empty: %v", err)
			return model.EmptySnapshot(), nil
		}
	}

	answers := make(model.Answers, len(doc.Answers))
	for k, v := range doc.Answers {
		answers[k] = v
	}
	return model.Snapshot{
		Answers:  model.NormalizeAnswers(answers),
		CCAItems: doc.CCAItems,
	}, nil
}

func parseDocument(content []byte) (*document, error) {
	var doc document
	if err := yamlv3.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateHeader(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func validateHeader(doc *document) error {
	if doc.SchemaVersion < 1 {
		return fmt.Errorf("invalid schema_version %d (must be >= 1)", doc.SchemaVersion)
	}
	if doc.SchemaVersion > CurrentSchemaVersion {
		return fmt.Errorf("unsupported schema_version %d (max supported: %d)", doc.SchemaVersion, CurrentSchemaVersion)
	}
	if doc.FileType != stateFileType {
		return fmt.Errorf("unknown file_type: %q", doc.FileType)
	}
	return nil
}

// Save writes the snapshot atomically, keeping the previous file as .bak.
func (s *Store) Save(snap model.Snapshot) error {
	doc := document{
		SchemaVersion: CurrentSchemaVersion,
		FileType:      stateFileType,
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
		Answers:       map[string]any(snap.Answers),
		CCAItems:      snap.CCAItems,
	}
	return atomicWriteDocument(s.path, doc)
}

// Clear removes the state file and its backup.
func (s *Store) Clear() error {
	for _, p := range []string{s.path, s.path + ".bak"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

// Close releases the writer lock.
func (s *Store) Close() error {
	return s.lock.Unlock()
}
