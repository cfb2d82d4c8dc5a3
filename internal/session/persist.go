package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tedit/internal/buffer"
	"tedit/internal/logger"
)

// Record is the persisted form of a session.
type Record struct {
	Documents   []DocRecord `json:"documents"`
	ActiveIndex int         `json:"active_index"`
}

type DocRecord struct {
	Filename string `json:"filename"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	ReadOnly bool   `json:"read_only"`
}

// Snapshot records every named document. Scratch documents are skipped and
// the active index is remapped accordingly.
func (s *Session) Snapshot() Record {
	rec := Record{Documents: []DocRecord{}}
	for i, e := range s.entries {
		if e.Doc.Filename() == "" {
			continue
		}
		if i == s.active {
			rec.ActiveIndex = len(rec.Documents)
		}
		rec.Documents = append(rec.Documents, DocRecord{
			Filename: e.Doc.Filename(),
			Row:      e.Cursor.Row,
			Col:      e.Cursor.Col,
			ReadOnly: e.Doc.ReadOnly(),
		})
	}
	return rec
}

// Restore replaces the open documents with those of rec. Documents that
// fail to open are skipped; when none open the session keeps one scratch
// document. It returns the number of documents restored.
func (s *Session) Restore(rec Record) int {
	var entries []*Entry
	active := 0
	for i, d := range rec.Documents {
		doc, err := buffer.Open(d.Filename, d.ReadOnly)
		if err != nil {
			logger.Error("restore %s: %v", d.Filename, err)
			continue
		}
		if i == rec.ActiveIndex {
			active = len(entries)
		}
		e := s.newEntry(doc)
		e.Cursor.Set(buffer.Position{Row: d.Row, Col: d.Col})
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		entries = []*Entry{s.newEntry(buffer.New())}
	}
	s.entries = entries
	s.split = nil
	s.active = active
	logger.Info("restored %d of %d documents", len(entries), len(rec.Documents))
	return len(entries)
}

// Store is the last-session file.
type Store struct {
	path string
}

// NewStore keeps the last session in dir/session.json.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "session.json")}
}

func (st *Store) Path() string { return st.path }

// Load reads the last session. A missing file is ErrSessionNotFound.
func (st *Store) Load() (Record, error) {
	var rec Record
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rec, ErrSessionNotFound
		}
		return rec, fmt.Errorf("failed to read session: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to parse session %s: %w", st.path, err)
	}
	return rec, nil
}

// Save writes rec through a temp file and a rename.
func (st *Store) Save(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	logger.Info("saved session with %d documents to %s", len(rec.Documents), st.path)
	return nil
}
