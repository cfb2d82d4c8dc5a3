package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"tedit/internal/completion"
	"tedit/internal/session"
)

type fixedCompleter struct{}

func (fixedCompleter) Complete(line string) completion.State {
	return completion.State{
		Active: true,
		Kind:   completion.Command,
		Items:  []completion.Item{{Text: "split"}, {Text: "sidebar"}},
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, "a"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, "G"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "alt+x"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted text"), Paste: true}, "pasted text"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, " "},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"},
		{tea.KeyMsg{Type: tea.KeyTab}, "tab"},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, "ctrl+r"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
	}
	for _, tt := range tests {
		if got := keyString(tt.msg); got != tt.want {
			t.Errorf("keyString(%v) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateRoutesKeysToSession(t *testing.T) {
	s := session.New(session.Options{})
	var m tea.Model = NewModel(s)

	m, _ = send(m,
		tea.WindowSizeMsg{Width: 60, Height: 20},
		runes("i"), runes("hi"), tea.KeyMsg{Type: tea.KeyEsc},
	)
	if got := s.Active().Doc.Line(0); got != "hi" {
		t.Fatalf("line = %q, want %q", got, "hi")
	}

	view := m.View()
	if !strings.Contains(view, "NORMAL") || !strings.Contains(view, "[No Name]") {
		t.Fatalf("view is missing the status row:\n%s", view)
	}
	if n := strings.Count(view, "\n") + 1; n != 20 {
		t.Fatalf("view has %d rows, want 20", n)
	}
}

func TestCtrlCQuits(t *testing.T) {
	s := session.New(session.Options{})
	_, cmd := send(NewModel(s), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestQuitCommand(t *testing.T) {
	s := session.New(session.Options{})
	m, cmd := send(NewModel(s), tea.WindowSizeMsg{Width: 40, Height: 10}, runes(":"), runes("q"))
	if cmd != nil {
		t.Fatalf("typing must not quit yet")
	}
	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf(":q on a clean session must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf(":q did not quit")
	}
}

func TestHelpOverlay(t *testing.T) {
	s := session.New(session.Options{})
	m, _ := send(NewModel(s), tea.WindowSizeMsg{Width: 100, Height: 40})
	s.Execute("help")
	if view := m.View(); !strings.Contains(view, "tedit help") {
		t.Fatalf("help overlay not shown")
	}
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if s.View().Help {
		t.Fatalf("esc did not close the help overlay")
	}
}

func TestCompletionPopup(t *testing.T) {
	s := session.New(session.Options{Completer: fixedCompleter{}})
	m, _ := send(NewModel(s), tea.WindowSizeMsg{Width: 60, Height: 20}, runes(":"), runes("s"), tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "> split") || !strings.Contains(view, "  sidebar") {
		t.Fatalf("completion popup missing:\n%s", view)
	}
}

func TestStatuslineShowsLineDiagnostic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("abc  \nok"), 0644); err != nil {
		t.Fatal(err)
	}
	s := session.New(session.Options{})
	if _, err := s.Open(path, 0, 0, false); err != nil {
		t.Fatal(err)
	}
	m, _ := send(NewModel(s), tea.WindowSizeMsg{Width: 60, Height: 20})
	s.Execute("lint")
	m, _ = send(m, runes("l"))
	if view := m.View(); !strings.Contains(view, "warning: trailing whitespace") {
		t.Fatalf("line diagnostic not shown:\n%s", view)
	}
}
