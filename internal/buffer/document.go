package buffer

import (
	"path/filepath"
	"strings"
)

// Document is one opened file or scratch buffer. Columns are rune
// indexes. The line slice is never empty.
type Document struct {
	lines       []string
	filename    string
	readOnly    bool
	clipboard   string
	undo        history
	redo        history
	diagnostics map[int][]Diagnostic

	version      int
	savedVersion int
}

// New returns an empty scratch document.
func New() *Document {
	return &Document{lines: []string{""}}
}

// FromLines returns a scratch document holding a copy of lines.
func FromLines(lines []string) *Document {
	d := New()
	if len(lines) > 0 {
		d.lines = cloneLines(lines)
	}
	return d
}

func (d *Document) LineCount() int { return len(d.lines) }

func (d *Document) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return d.lines[row]
}

func (d *Document) LineLen(row int) int {
	return runeLen(d.Line(row))
}

// Lines returns a copy of the line array.
func (d *Document) Lines() []string { return cloneLines(d.lines) }

// String joins the lines the way they are written to disk.
func (d *Document) String() string { return strings.Join(d.lines, "\n") }

func (d *Document) Filename() string { return d.filename }

func (d *Document) SetFilename(name string) { d.filename = name }

// Name is the display name, "[No Name]" for scratch documents.
func (d *Document) Name() string {
	if d.filename == "" {
		return "[No Name]"
	}
	return d.filename
}

// Ext is the lower-cased file extension including the dot.
func (d *Document) Ext() string {
	return strings.ToLower(filepath.Ext(d.filename))
}

func (d *Document) ReadOnly() bool { return d.readOnly }

func (d *Document) SetReadOnly(ro bool) { d.readOnly = ro }

func (d *Document) Clipboard() string { return d.clipboard }

func (d *Document) SetClipboard(s string) { d.clipboard = s }

// Modified reports whether the content changed since the last save.
func (d *Document) Modified() bool { return d.version != d.savedVersion }

// HasPendingEdits reports whether undo history exists that was not saved.
func (d *Document) HasPendingEdits() bool {
	return d.undo.len() > 0 && d.Modified()
}

// Diagnostics returns the diagnostics attached to row.
func (d *Document) Diagnostics(row int) []Diagnostic {
	return d.diagnostics[row]
}

// DiagnosticCount returns the total number of diagnostics.
func (d *Document) DiagnosticCount() int {
	n := 0
	for _, ds := range d.diagnostics {
		n += len(ds)
	}
	return n
}

// SetDiagnostics replaces all diagnostics.
func (d *Document) SetDiagnostics(diags map[int][]Diagnostic) {
	d.diagnostics = diags
}

func (d *Document) ClearDiagnostics() {
	d.diagnostics = nil
}

func (d *Document) writable() error {
	if d.readOnly {
		return ErrReadOnly
	}
	return nil
}

// InsertChar inserts ch at col of row. The caller guarantees col is
// within the line.
func (d *Document) InsertChar(ch rune, row, col int) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.saveUndo()
	r := []rune(d.lines[row])
	col = clamp(col, 0, len(r))
	d.lines[row] = string(r[:col]) + string(ch) + string(r[col:])
	return nil
}

// Backspace deletes the rune left of (row, col), joining lines at column
// zero, and returns the new cursor position.
func (d *Document) Backspace(row, col int) (Position, error) {
	pos := Position{Row: row, Col: col}
	if col == 0 && row == 0 {
		return pos, nil
	}
	if err := d.writable(); err != nil {
		return pos, err
	}
	d.saveUndo()
	if col == 0 {
		prev := d.lines[row-1]
		d.lines[row-1] = prev + d.lines[row]
		d.removeLines(row, row+1)
		return Position{Row: row - 1, Col: runeLen(prev)}, nil
	}
	r := []rune(d.lines[row])
	col = clamp(col, 1, len(r))
	d.lines[row] = string(r[:col-1]) + string(r[col:])
	return Position{Row: row, Col: col - 1}, nil
}

// DeleteCharForward deletes the rune under the cursor, joining the next
// line when the cursor sits at the end of a non-last line.
func (d *Document) DeleteCharForward(row, col int) error {
	r := []rune(d.lines[row])
	if col >= len(r) && row == len(d.lines)-1 {
		return nil
	}
	if err := d.writable(); err != nil {
		return err
	}
	d.saveUndo()
	if col >= len(r) {
		d.lines[row] += d.lines[row+1]
		d.removeLines(row+1, row+2)
		return nil
	}
	d.lines[row] = string(r[:col]) + string(r[col+1:])
	return nil
}

// Newline splits row at col.
func (d *Document) Newline(row, col int) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.saveUndo()
	r := []rune(d.lines[row])
	col = clamp(col, 0, len(r))
	d.lines[row] = string(r[:col])
	d.insertLines(row+1, string(r[col:]))
	return nil
}

// YankLine copies row into the clipboard.
func (d *Document) YankLine(row int) {
	d.clipboard = d.Line(row)
}

// DeleteLine removes row into the clipboard. A single-line document keeps
// its one line and only loses the content.
func (d *Document) DeleteLine(row int) error {
	if err := d.writable(); err != nil {
		return err
	}
	if len(d.lines) == 1 {
		d.clipboard = d.lines[0]
		if d.lines[0] != "" {
			d.saveUndo()
			d.lines[0] = ""
		}
		return nil
	}
	d.saveUndo()
	d.clipboard = d.lines[row]
	d.removeLines(row, row+1)
	return nil
}

// Paste inserts the clipboard at (row, col) and returns the position just
// after the inserted text.
func (d *Document) Paste(row, col int) (Position, error) {
	if err := d.writable(); err != nil {
		return Position{Row: row, Col: col}, err
	}
	d.saveUndo()
	return d.insertText(row, col, d.clipboard), nil
}

// InsertText inserts text at (row, col) in one undoable step. It is used
// for bracketed pastes from the terminal.
func (d *Document) InsertText(row, col int, text string) (Position, error) {
	if err := d.writable(); err != nil {
		return Position{Row: row, Col: col}, err
	}
	d.saveUndo()
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	return d.insertText(row, col, text), nil
}

// SetContent replaces the whole document in one undoable step.
func (d *Document) SetContent(text string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.saveUndo()
	d.lines = splitLines(text)
	d.diagnostics = nil
	return nil
}

// ReplaceAll substitutes every occurrence of search and returns the
// number of occurrences. A snapshot is taken even when nothing matches.
func (d *Document) ReplaceAll(search, replace string) (int, error) {
	if search == "" {
		return 0, ErrEmptyPattern
	}
	if err := d.writable(); err != nil {
		return 0, err
	}
	d.saveUndo()
	count := 0
	for i, line := range d.lines {
		n := strings.Count(line, search)
		if n > 0 {
			d.lines[i] = strings.ReplaceAll(line, search, replace)
			count += n
		}
	}
	return count, nil
}

// insertText splices text (which may contain newlines) at (row, col).
func (d *Document) insertText(row, col int, text string) Position {
	r := []rune(d.lines[row])
	col = clamp(col, 0, len(r))
	head, tail := string(r[:col]), string(r[col:])
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		d.lines[row] = head + text + tail
		return Position{Row: row, Col: col + runeLen(text)}
	}
	last := parts[len(parts)-1]
	d.lines[row] = head + parts[0]
	middle := make([]string, 0, len(parts)-1)
	middle = append(middle, parts[1:len(parts)-1]...)
	middle = append(middle, last+tail)
	d.insertLines(row+1, middle...)
	return Position{Row: row + len(parts) - 1, Col: runeLen(last)}
}

func (d *Document) insertLines(at int, lines ...string) {
	out := make([]string, 0, len(d.lines)+len(lines))
	out = append(out, d.lines[:at]...)
	out = append(out, lines...)
	out = append(out, d.lines[at:]...)
	d.lines = out
}

// removeLines drops lines [from, to) and keeps at least one line.
func (d *Document) removeLines(from, to int) {
	d.lines = append(d.lines[:from:from], d.lines[to:]...)
	if len(d.lines) == 0 {
		d.lines = []string{""}
	}
}

func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func runeLen(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
