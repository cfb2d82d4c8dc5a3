package completion

import (
	"os"
	"path/filepath"
	"testing"
)

var testCommands = []Item{
	{Text: "w", Description: "write"},
	{Text: "wq", Description: "write and quit"},
	{Text: "wrap", Description: "toggle wrap"},
	{Text: "split", Description: "split"},
	{Text: "vsplit", Description: "vertical split"},
	{Text: "unsplit", Description: "close split"},
}

func TestFuzzyMatchRanksExactThenPrefix(t *testing.T) {
	got := FuzzyMatch("w", testCommands)
	if len(got) < 3 {
		t.Fatalf("matches = %v", got)
	}
	if got[0].Text != "w" || got[1].Text != "wq" || got[2].Text != "wrap" {
		t.Fatalf("order = %v", got)
	}
}

func TestFuzzyMatchSubsequence(t *testing.T) {
	got := FuzzyMatch("vst", testCommands)
	if len(got) != 1 || got[0].Text != "vsplit" {
		t.Fatalf("matches = %v", got)
	}
	if got := FuzzyMatch("zz", testCommands); len(got) != 0 {
		t.Fatalf("unexpected matches %v", got)
	}
}

func TestStateCycles(t *testing.T) {
	st := State{Active: true, Prefix: "e ", Items: []Item{{Text: "a"}, {Text: "b"}}}
	if st.Line() != "e a" {
		t.Fatalf("line = %q", st.Line())
	}
	st.SelectNext()
	st.SelectNext()
	if st.Line() != "e a" {
		t.Fatalf("wrap forward line = %q", st.Line())
	}
	st.SelectPrev()
	if st.Line() != "e b" {
		t.Fatalf("wrap back line = %q", st.Line())
	}
	st.Reset()
	if st.Active || len(st.Items) != 0 {
		t.Fatalf("reset left %+v", st)
	}
}

func seedTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{"main.go", "notes.txt", "internal/buffer/doc.go", ".hidden/x"} {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestEngineCompletesCommands(t *testing.T) {
	e := NewEngine(t.TempDir(), testCommands, "e")
	st := e.Complete("spl")
	if !st.Active || st.Kind != Command || st.Line() != "split" {
		t.Fatalf("state = %+v", st)
	}
	if st := e.Complete("w notes"); st.Active {
		t.Fatalf("non-file command completed: %+v", st)
	}
}

func TestEngineCompletesPaths(t *testing.T) {
	root := seedTree(t)
	e := NewEngine(root, testCommands, "e", "view")

	st := e.Complete("e note")
	if !st.Active || st.Kind != Path || st.Line() != "e notes.txt" {
		t.Fatalf("state = %+v", st)
	}

	st = e.Complete("view internal/buffer/")
	if !st.Active || st.Line() != "view internal/buffer/doc.go" {
		t.Fatalf("dir listing = %+v", st)
	}

	for _, it := range e.Complete("e ").Items {
		if it.Text == ".hidden/" {
			t.Fatalf("hidden directory listed")
		}
	}
}
