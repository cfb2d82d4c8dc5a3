package plugin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tedit/internal/buffer"
	"tedit/internal/logger"
)

// Shell runs command lines through a shell with an optional timeout.
type Shell struct {
	Path    string
	Timeout time.Duration
}

// Run executes command with stdin as its input and returns the combined
// output. A non-zero exit is an error, but the output is still returned.
func (s Shell) Run(ctx context.Context, command, stdin string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", errors.New("empty command")
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	path := s.Path
	if path == "" {
		path = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, path, "-c", command)
	cmd.Stdin = strings.NewReader(stdin)
	logger.Info("running %q", command)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return string(out), fmt.Errorf("%q timed out after %s", command, s.Timeout)
	}
	if err != nil {
		return string(out), fmt.Errorf("%q: %w", command, err)
	}
	return string(out), nil
}

// Matches "path:line:col: message", "line:col: message" and
// "line: message". An optional "error"/"warning"/"info" word after the
// position sets the severity.
var diagLine = regexp.MustCompile(`^(?:[^:\s]*[^\d:\s][^:\s]*:)?(\d+):(?:(\d+):)?\s*(?:(error|warning|info|note)\s*:?\s*)?(.*)$`)

// ExternalLinter pipes the document to command and parses the
// diagnostics it prints. Exit status is ignored when diagnostics were
// produced since most linters exit non-zero on findings.
func ExternalLinter(sh Shell, command string) FileLintFunc {
	return func(ctx context.Context, lines []string, filetype string) (map[int][]buffer.Diagnostic, error) {
		out, err := sh.Run(ctx, command, strings.Join(lines, "\n")+"\n")
		diags := ParseDiagnostics(out, len(lines))
		if err != nil && len(diags) == 0 {
			return nil, err
		}
		return diags, nil
	}
}

// ParseDiagnostics reads linter output into diagnostics by 0-based row.
// Rows outside [0, lineCount) are dropped.
func ParseDiagnostics(out string, lineCount int) map[int][]buffer.Diagnostic {
	diags := map[int][]buffer.Diagnostic{}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		m := diagLine.FindStringSubmatch(strings.TrimSpace(sc.Text()))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > lineCount {
			continue
		}
		msg := strings.TrimSpace(m[4])
		if m[2] != "" {
			msg = "col " + m[2] + ": " + msg
		}
		diags[n-1] = append(diags[n-1], buffer.Diagnostic{Severity: severity(m[3]), Message: msg})
	}
	return diags
}

func severity(word string) buffer.Severity {
	switch word {
	case "warning":
		return buffer.SeverityWarning
	case "info", "note":
		return buffer.SeverityInfo
	}
	return buffer.SeverityError
}
