package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tedit/internal/buffer"
	"tedit/internal/completion"
	"tedit/internal/config"
	"tedit/internal/cursor"
)

type fixture struct {
	m   *Machine
	doc *buffer.Document
	cur *cursor.Cursor
}

func seed(lines ...string) *fixture {
	doc := buffer.FromLines(lines)
	return &fixture{m: New(Options{}), doc: doc, cur: cursor.New(doc)}
}

// keys feeds each key and returns the last intent.
func (f *fixture) keys(keys ...string) Intent {
	var in Intent
	for _, k := range keys {
		in = f.m.HandleKey(f.doc, f.cur, k)
	}
	return in
}

// typeText feeds text one rune at a time.
func (f *fixture) typeText(text string) {
	for _, r := range text {
		f.m.HandleKey(f.doc, f.cur, string(r))
	}
}

func (f *fixture) command(line string) Intent {
	f.keys(":")
	f.typeText(line)
	return f.keys("enter")
}

func assertLines(t *testing.T, doc *buffer.Document, want ...string) {
	t.Helper()
	got := doc.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestModeTransitions(t *testing.T) {
	f := seed("abc")
	f.keys("i")
	if f.m.Mode() != Insert {
		t.Fatalf("mode = %s, want INSERT", f.m.Mode())
	}
	f.keys("esc")
	if f.m.Mode() != Normal {
		t.Fatalf("mode = %s, want NORMAL", f.m.Mode())
	}

	f.keys("v")
	if f.m.Mode() != Visual || !f.cur.Selecting() {
		t.Fatalf("visual mode without anchor")
	}
	f.keys("v")
	if f.m.Mode() != Normal || f.cur.Selecting() {
		t.Fatalf("second v must leave visual mode and clear the anchor")
	}

	f.keys("v", "esc")
	if f.m.Mode() != Normal || f.cur.Selecting() {
		t.Fatalf("escape must leave visual mode")
	}

	f.keys(":")
	if f.m.Mode() != Command {
		t.Fatalf("mode = %s, want COMMAND", f.m.Mode())
	}
	f.typeText("wq")
	if label, text, ok := f.m.CommandLine(); !ok || label != ":" || text != "wq" {
		t.Fatalf("command line = %q %q %v", label, text, ok)
	}
	f.keys("esc")
	if f.m.Mode() != Normal || f.m.Message() != "Command cancelled" {
		t.Fatalf("mode %s message %q", f.m.Mode(), f.m.Message())
	}
}

func TestInsertTyping(t *testing.T) {
	f := seed("")
	f.keys("i")
	f.typeText("hi")
	f.keys("enter")
	f.typeText("yo")
	f.keys("backspace", "esc")
	assertLines(t, f.doc, "hi", "y")
	if f.cur.Row != 1 || f.cur.Col != 1 {
		t.Fatalf("cursor = %d,%d", f.cur.Row, f.cur.Col)
	}
}

func TestInsertPasteIsOneUndoStep(t *testing.T) {
	f := seed("ab")
	f.cur.Col = 1
	f.keys("i", "x\ny", "esc")
	assertLines(t, f.doc, "ax", "yb")
	if f.doc.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", f.doc.UndoDepth())
	}
	if f.cur.Row != 1 || f.cur.Col != 1 {
		t.Fatalf("cursor = %d,%d", f.cur.Row, f.cur.Col)
	}
}

func TestInsertRejectsEditsOnReadOnly(t *testing.T) {
	f := seed("abc")
	f.doc.SetReadOnly(true)
	f.keys("i", "x")
	if f.m.Message() != "Read-only buffer: cannot modify" {
		t.Fatalf("message = %q", f.m.Message())
	}
	f.keys("backspace", "enter")
	assertLines(t, f.doc, "abc")
	f.keys("right")
	if f.cur.Col != 1 {
		t.Fatalf("movement must still work, col = %d", f.cur.Col)
	}
}

func TestUnhandledKeyKeepsState(t *testing.T) {
	f := seed("abc")
	f.keys("z")
	if f.m.Message() != "Unhandled z" || f.m.Mode() != Normal {
		t.Fatalf("message %q mode %s", f.m.Message(), f.m.Mode())
	}
	assertLines(t, f.doc, "abc")
}

func TestDeleteLineSequence(t *testing.T) {
	f := seed("one", "two", "three")
	f.cur.Row = 2
	f.keys("d")
	if f.m.Pending() != "d" {
		t.Fatalf("pending = %q", f.m.Pending())
	}
	f.keys("d")
	assertLines(t, f.doc, "one", "two")
	if f.cur.Row != 1 || f.doc.Clipboard() != "three" {
		t.Fatalf("row %d clipboard %q", f.cur.Row, f.doc.Clipboard())
	}

	f.keys("d", "esc")
	if f.m.Pending() != "" || f.m.Message() != "" {
		t.Fatalf("escape must cancel silently, message %q", f.m.Message())
	}
	f.keys("d", "x")
	if f.m.Message() != "Unhandled dx" {
		t.Fatalf("message = %q", f.m.Message())
	}
	assertLines(t, f.doc, "one", "two")
}

func TestMarks(t *testing.T) {
	f := seed("alpha", "beta", "gamma")
	f.cur.Row, f.cur.Col = 1, 2
	f.keys("m", "a", "G")
	if f.cur.Row != 2 {
		t.Fatalf("G did not move to last line")
	}
	f.keys("'", "a")
	if f.cur.Row != 1 || f.cur.Col != 2 {
		t.Fatalf("jump landed at %d,%d", f.cur.Row, f.cur.Col)
	}
	f.keys("'", "b")
	if f.m.Message() != "Mark 'b' not set" {
		t.Fatalf("message = %q", f.m.Message())
	}
}

func TestVisualDeleteAcrossLines(t *testing.T) {
	f := seed("abcd", "wxyz")
	f.cur.Col = 1
	f.keys("v", "j", "l", "d")
	assertLines(t, f.doc, "ayz")
	if f.doc.Clipboard() != "bcd\nwx" {
		t.Fatalf("clipboard = %q", f.doc.Clipboard())
	}
	if f.m.Mode() != Normal || f.cur.Selecting() {
		t.Fatalf("delete must end visual mode")
	}
	if f.cur.Row != 0 || f.cur.Col != 1 {
		t.Fatalf("cursor = %d,%d", f.cur.Row, f.cur.Col)
	}
}

func TestVisualYankMirrorsClipboard(t *testing.T) {
	var mirrored string
	f := seed("hello world")
	f.m = New(Options{Clipboard: func(s string) error { mirrored = s; return nil }})
	f.keys("v", "l", "l", "l", "l", "y")
	if f.doc.Clipboard() != "hello" || mirrored != "hello" {
		t.Fatalf("clipboard %q mirrored %q", f.doc.Clipboard(), mirrored)
	}
	if f.m.Mode() != Normal {
		t.Fatalf("yank must end visual mode")
	}
	assertLines(t, f.doc, "hello world")
}

func TestVisualPasteReplacesSelection(t *testing.T) {
	f := seed("one two")
	f.doc.SetClipboard("six")
	f.cur.Col = 4
	f.keys("v", "$", "p")
	assertLines(t, f.doc, "one six")
	if f.doc.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d", f.doc.UndoDepth())
	}
}

func TestUndoRedoKeys(t *testing.T) {
	f := seed("abc")
	f.keys("x", "x")
	assertLines(t, f.doc, "c")
	f.keys("u", "u")
	assertLines(t, f.doc, "abc")
	f.keys("u")
	if f.m.Message() != "Already at oldest change" {
		t.Fatalf("message = %q", f.m.Message())
	}
	f.keys("ctrl+r")
	assertLines(t, f.doc, "bc")
}

func TestYankPasteKeys(t *testing.T) {
	f := seed("ab", "cd")
	f.keys("y", "j", "$", "p")
	assertLines(t, f.doc, "ab", "cdab")
	if f.cur.Col != 4 {
		t.Fatalf("col = %d", f.cur.Col)
	}
}

func TestOpenBelow(t *testing.T) {
	f := seed("first", "last")
	f.keys("o")
	f.typeText("mid")
	assertLines(t, f.doc, "first", "mid", "last")
	if f.m.Mode() != Insert {
		t.Fatalf("mode = %s", f.m.Mode())
	}
}

func TestSearchPromptAndRepeat(t *testing.T) {
	f := seed("hello", "world", "word")
	f.cur.Row = 2
	f.keys("/")
	if label, _, _ := f.m.CommandLine(); label != "Search: " {
		t.Fatalf("label = %q", label)
	}
	f.typeText("wor")
	f.keys("enter")
	if f.cur.Row != 1 || f.cur.Col != 0 {
		t.Fatalf("search from top landed at %d,%d", f.cur.Row, f.cur.Col)
	}
	if f.m.Message() != "Found 'wor' at 2,1" {
		t.Fatalf("message = %q", f.m.Message())
	}
	f.keys("n")
	if f.cur.Row != 2 {
		t.Fatalf("n landed on row %d", f.cur.Row)
	}
	f.keys("n")
	if f.cur.Row != 1 {
		t.Fatalf("n must wrap to the top, row %d", f.cur.Row)
	}
	f.keys("N")
	if f.cur.Row != 2 {
		t.Fatalf("N must wrap to the bottom, row %d", f.cur.Row)
	}
}

func TestExitConfirmation(t *testing.T) {
	f := seed("abc")
	if in := f.keys("esc"); in.Kind != IntentQuit {
		t.Fatalf("clean escape = %s, want quit", in.Kind)
	}

	f.keys("x")
	if in := f.keys("esc"); !in.None() {
		t.Fatalf("escape with edits must ask first, got %s", in.Kind)
	}
	f.keys("n")
	if f.m.Message() != "Exit cancelled" {
		t.Fatalf("message = %q", f.m.Message())
	}
	f.keys("esc")
	if in := f.keys("y"); in.Kind != IntentForceQuit {
		t.Fatalf("confirmed exit = %s", in.Kind)
	}
}

func TestCommandIntents(t *testing.T) {
	cases := []struct {
		line string
		want Intent
	}{
		{"q", Intent{Kind: IntentQuit}},
		{"q!", Intent{Kind: IntentForceQuit}},
		{"e notes.txt", Intent{Kind: IntentOpen, Path: "notes.txt"}},
		{"view notes.txt", Intent{Kind: IntentOpen, Path: "notes.txt", ReadOnly: true}},
		{"bn", Intent{Kind: IntentNext}},
		{"bp", Intent{Kind: IntentPrev}},
		{"bx", Intent{Kind: IntentClose}},
		{"bc", Intent{Kind: IntentNew}},
		{"b3", Intent{Kind: IntentGoto, N: 3}},
		{"split", Intent{Kind: IntentSplit}},
		{"vsplit", Intent{Kind: IntentVSplit}},
		{"unsplit", Intent{Kind: IntentUnsplit}},
		{"focus", Intent{Kind: IntentSwitchFocus}},
		{"theme light", Intent{Kind: IntentTheme, Arg: "light"}},
		{"wrap", Intent{Kind: IntentToggleWrap}},
		{"sidebar", Intent{Kind: IntentToggleSidebar}},
		{"number", Intent{Kind: IntentToggleNumbers}},
		{"session save work", Intent{Kind: IntentSessionSave, Arg: "work"}},
		{"session load work", Intent{Kind: IntentSessionLoad, Arg: "work"}},
		{"session delete work", Intent{Kind: IntentSessionDelete, Arg: "work"}},
		{"session list", Intent{Kind: IntentSessionList}},
		{"!sort -r", Intent{Kind: IntentShell, Arg: "sort -r"}},
		{"help", Intent{Kind: IntentHelp}},
		{"lint", Intent{Kind: IntentLint}},
		{"reload", Intent{Kind: IntentReload}},
	}
	for _, tc := range cases {
		f := seed("abc")
		if got := f.command(tc.line); got != tc.want {
			t.Errorf(":%s = %+v, want %+v", tc.line, got, tc.want)
		}
		if f.m.Mode() != Normal {
			t.Errorf(":%s left mode %s", tc.line, f.m.Mode())
		}
	}
}

func TestCommandErrorsAreMessages(t *testing.T) {
	cases := map[string]string{
		"frobnicate":   "Unknown command: frobnicate",
		"e":            "Usage: e <path>",
		"goto x":       "Usage: goto <line>",
		"session nope": "Usage: session save|load|delete <name> or session list",
		"b0":           "Unknown command: b0",
		"replace":      "Usage: replace <search> <replace>",
	}
	for line, want := range cases {
		f := seed("abc")
		if in := f.command(line); !in.None() {
			t.Errorf(":%s returned %s", line, in.Kind)
		}
		if f.m.Message() != want {
			t.Errorf(":%s message = %q, want %q", line, f.m.Message(), want)
		}
	}
}

func TestGotoAndReplace(t *testing.T) {
	f := seed("banana", "two", "three")
	f.command("goto 3")
	if f.cur.Row != 2 {
		t.Fatalf("row = %d", f.cur.Row)
	}
	f.command("replace a b")
	assertLines(t, f.doc, "bbnbnb", "two", "three")
	if f.m.Message() != "Replaced 3 occurrence(s)" {
		t.Fatalf("message = %q", f.m.Message())
	}
}

func TestWriteWithoutNamePromptsSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f := seed("data")
	if in := f.command("w"); !in.None() {
		t.Fatalf("w returned %s", in.Kind)
	}
	label, _, ok := f.m.CommandLine()
	if !ok || label != "Save as: " {
		t.Fatalf("expected save-as prompt, got %q %v", label, ok)
	}
	f.typeText(path)
	f.keys("enter")
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "data" {
		t.Fatalf("file = %q, %v", data, err)
	}
	if f.doc.Filename() != path {
		t.Fatalf("filename = %q", f.doc.Filename())
	}
}

func TestWriteQuitThroughSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.txt")
	f := seed("x")
	f.command("wq")
	f.typeText(path)
	if in := f.keys("enter"); in.Kind != IntentQuit {
		t.Fatalf("wq after save-as = %s", in.Kind)
	}
}

func TestReadOnlyWriteAndShell(t *testing.T) {
	f := seed("abc")
	f.doc.SetReadOnly(true)
	f.doc.SetFilename("ro.txt")
	f.command("w")
	if !strings.HasPrefix(f.m.Message(), "Read-only buffer") {
		t.Fatalf("message = %q", f.m.Message())
	}
	if in := f.command("!date"); !in.None() {
		t.Fatalf("shell on read-only buffer returned %s", in.Kind)
	}
}

func TestReadOnlyWriteToPathKeepsFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copy.txt")
	f := seed("abc")
	f.doc.SetReadOnly(true)
	f.doc.SetFilename("ro.txt")
	f.command("w " + path)

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "abc" {
		t.Fatalf("copy = %q, %v", data, err)
	}
	if f.doc.Filename() != "ro.txt" {
		t.Fatalf("filename = %q, want ro.txt", f.doc.Filename())
	}
	if !strings.HasSuffix(f.m.Message(), "written (copy)") {
		t.Fatalf("message = %q", f.m.Message())
	}
}

type fakeCompleter struct{ items []completion.Item }

func (c fakeCompleter) Complete(line string) completion.State {
	return completion.State{Active: true, Kind: completion.Command, Items: c.items}
}

func TestTabCompletionCycles(t *testing.T) {
	f := seed("abc")
	f.m = New(Options{Completer: fakeCompleter{items: []completion.Item{{Text: "split"}, {Text: "sidebar"}}}})
	f.keys(":", "s", "tab")
	if _, text, _ := f.m.CommandLine(); text != "split" {
		t.Fatalf("first tab = %q", text)
	}
	f.keys("tab")
	if _, text, _ := f.m.CommandLine(); text != "sidebar" {
		t.Fatalf("second tab = %q", text)
	}
	if !f.m.Completion().Active {
		t.Fatalf("completion cycle must stay active")
	}
	f.keys("x")
	if f.m.Completion().Active {
		t.Fatalf("typing must end the cycle")
	}
}

func TestKeymapOverride(t *testing.T) {
	f := seed("abc")
	f.m = New(Options{Keymap: config.NewKeymap(map[string]string{"insert": "e"})})
	f.keys("e")
	if f.m.Mode() != Insert {
		t.Fatalf("overridden key did not enter insert mode")
	}
	f.keys("esc", "i")
	if f.m.Mode() != Normal || f.m.Message() != "Unhandled i" {
		t.Fatalf("default key still bound: mode %s message %q", f.m.Mode(), f.m.Message())
	}
}
