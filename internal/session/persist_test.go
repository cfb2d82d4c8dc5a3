package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one\ntwo\nthree")
	b := writeFile(t, dir, "b.txt", "b")

	st := NewStore(filepath.Join(dir, "data"))
	if _, err := st.Load(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrSessionNotFound", err)
	}

	s := New(Options{Store: st})
	if _, err := s.Open(a, 2, 3, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Open(b, 0, 0, true); err != nil {
		t.Fatal(err)
	}
	if !s.Execute("q") {
		t.Fatalf("q without pending edits must quit")
	}
	if _, err := os.Stat(st.Path() + ".tmp"); err == nil {
		t.Fatalf("temp file left behind")
	}

	rec, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rec.Documents) != 2 || rec.ActiveIndex != 1 {
		t.Fatalf("record = %+v", rec)
	}
	if d := rec.Documents[0]; d.Filename != a || d.Row != 2 || d.Col != 3 || d.ReadOnly {
		t.Fatalf("first document = %+v", d)
	}
	if !rec.Documents[1].ReadOnly {
		t.Fatalf("read-only flag lost")
	}

	restored := New(Options{})
	if n := restored.Restore(rec); n != 2 {
		t.Fatalf("Restore = %d, want 2", n)
	}
	if restored.ActiveIndex() != 1 || !restored.Active().Doc.ReadOnly() {
		t.Fatalf("active = %d", restored.ActiveIndex())
	}
	c := restored.Entries()[0].Cursor
	if c.Row != 2 || c.Col != 3 {
		t.Fatalf("cursor = %d,%d, want 2,3", c.Row, c.Col)
	}
}

func TestSnapshotSkipsScratchDocuments(t *testing.T) {
	dir := t.TempDir()
	s := New(Options{})
	mustOpen(t, s, writeFile(t, dir, "a.txt", "a"))
	s.New()
	mustOpen(t, s, writeFile(t, dir, "b.txt", "b"))

	rec := s.Snapshot()
	if len(rec.Documents) != 2 || rec.ActiveIndex != 1 {
		t.Fatalf("snapshot = %+v", rec)
	}
}

func TestRestoreSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(Options{})
	n := s.Restore(Record{
		Documents: []DocRecord{
			{Filename: dir},
			{Filename: filepath.Join(dir, "new.txt")},
		},
		ActiveIndex: 1,
	})
	if n != 1 || s.ActiveIndex() != 0 {
		t.Fatalf("restored %d active %d", n, s.ActiveIndex())
	}

	n = s.Restore(Record{Documents: []DocRecord{{Filename: dir}}})
	if n != 1 || s.Active().Doc.Filename() != "" {
		t.Fatalf("an empty restore must leave one scratch document")
	}
}

func TestNamedSessions(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenDB(filepath.Join(dir, "sessions.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	if _, err := db.Load("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Load(missing) = %v", err)
	}

	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")
	s := New(Options{Named: db})
	mustOpen(t, s, a)
	mustOpen(t, s, b)
	s.Execute("session save work")
	if message(s) != `Session "work" saved` {
		t.Fatalf("message = %q", message(s))
	}

	other := New(Options{Named: db})
	other.Execute("session load work")
	if len(other.Entries()) != 2 || other.Active().Doc.Filename() != b {
		t.Fatalf("loaded %d entries, active %q", len(other.Entries()), other.Active().Doc.Filename())
	}
	other.Execute("session load nope")
	if message(other) != `No session named "nope"` {
		t.Fatalf("message = %q", message(other))
	}

	if err := db.Save("work", Record{Documents: []DocRecord{{Filename: a}}}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	rec, err := db.Load("work")
	if err != nil || len(rec.Documents) != 1 {
		t.Fatalf("Load after overwrite = %+v, %v", rec, err)
	}

	names, err := db.List()
	if err != nil || len(names) != 1 || names[0] != "work" {
		t.Fatalf("List = %v, %v", names, err)
	}
	other.Execute("session list")
	if message(other) != "Sessions: work" {
		t.Fatalf("message = %q", message(other))
	}
	other.Execute("session delete work")
	if message(other) != `Session "work" deleted` {
		t.Fatalf("message = %q", message(other))
	}
	if _, err := db.Load("work"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Load after delete = %v", err)
	}
}

func TestNamedSessionRefusesWithPendingEdits(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenDB(filepath.Join(dir, "sessions.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()
	if err := db.Save("x", Record{Documents: []DocRecord{{Filename: writeFile(t, dir, "x.txt", "x")}}}); err != nil {
		t.Fatal(err)
	}

	s := New(Options{Named: db})
	mustOpen(t, s, filepath.Join(dir, "draft.txt"))
	keys(s, "i", "z", "esc")
	s.Execute("session load x")
	if s.Active().Doc.Line(0) != "z" {
		t.Fatalf("session load replaced a document with unsaved edits")
	}
}
