package buffer

import "errors"

var (
	ErrReadOnly     = errors.New("document is read-only")
	ErrNoFilename   = errors.New("no file name")
	ErrEmptyPattern = errors.New("empty search pattern")
)

// maxHistory bounds both the undo and the redo stack.
const maxHistory = 100

type Position struct {
	Row int
	Col int
}

// Before reports whether p sorts strictly before o (row major).
func (p Position) Before(o Position) bool {
	return p.Row < o.Row || (p.Row == o.Row && p.Col < o.Col)
}

// Range is an inclusive selection with Start never after End.
type Range struct {
	Start Position
	End   Position
}

// NormalizeRange orders two endpoints so the earlier one comes first.
func NormalizeRange(y1, x1, y2, x2 int) Range {
	a := Position{Row: y1, Col: x1}
	b := Position{Row: y2, Col: x2}
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

type Diagnostic struct {
	Severity Severity
	Message  string
}

// Text is the read side of a document that cursors and viewports clamp
// against.
type Text interface {
	LineCount() int
	Line(row int) string
	LineLen(row int) int
}

// Contains reports whether (row, col) lies inside the range, using the
// same endpoint rules as VisualText.
func (r Range) Contains(row, col int) bool {
	s, e := r.Start, r.End
	switch {
	case row < s.Row || row > e.Row:
		return false
	case s.Row == e.Row:
		return col >= s.Col && col <= e.Col
	case row == s.Row:
		return col >= s.Col
	case row == e.Row:
		return col < e.Col
	default:
		return true
	}
}
