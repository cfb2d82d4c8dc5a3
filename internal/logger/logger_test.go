package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer Close()

	Command("w notes.txt")
	data, err := os.ReadFile(filepath.Join(dir, "logs", "commands.log"))
	if err != nil {
		t.Fatalf("read command log: %v", err)
	}
	if !strings.Contains(string(data), ":w notes.txt") {
		t.Fatalf("command log = %q", data)
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	Info("opened %s", "a.go")
	Error("boom")
	Plugin("lint", ".go")
	out := buf.String()
	for _, want := range []string{"[INFO] opened a.go", "[ERROR] boom", "[PLUGIN] lint(.go)", "logger_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
