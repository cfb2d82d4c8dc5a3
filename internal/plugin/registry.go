package plugin

import (
	"context"
	"fmt"
	"sort"

	"tedit/internal/buffer"
	"tedit/internal/logger"
)

// TokenKind classifies a highlighted run of text.
type TokenKind int

const (
	Text TokenKind = iota
	Keyword
	String
	Comment
	Number
	Operator
	Name
)

func (k TokenKind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Name:
		return "name"
	}
	return "text"
}

// Token is a run of one line. Concatenating the tokens of a line gives
// the line back.
type Token struct {
	Text string
	Kind TokenKind
}

// HighlightFunc splits one line into tokens. filetype is the file
// extension including the dot.
type HighlightFunc func(line, filetype string) ([]Token, error)

// LintFunc checks a single line.
type LintFunc func(line, filetype string) ([]buffer.Diagnostic, error)

// FileLintFunc checks a whole document and returns diagnostics by row.
type FileLintFunc func(ctx context.Context, lines []string, filetype string) (map[int][]buffer.Diagnostic, error)

// Highlighter is a named highlight function.
type Highlighter struct {
	Name string
	Func HighlightFunc
}

// Linter is a named linter. Exactly one of Line and File is set.
type Linter struct {
	Name string
	Line LintFunc
	File FileLintFunc
}

// Registry holds highlighters and linters keyed by file extension. The
// empty extension holds the built-in fallbacks used for unknown file
// types and when a registered plugin fails.
type Registry struct {
	highlighters map[string]Highlighter
	linters      map[string]Linter
	chroma       *Chroma
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		highlighters: make(map[string]Highlighter),
		linters:      make(map[string]Linter),
	}
}

// RegisterHighlighter binds h to ext, replacing any earlier binding.
func (r *Registry) RegisterHighlighter(ext string, h Highlighter) {
	r.highlighters[ext] = h
}

// RegisterLinter binds l to ext, replacing any earlier binding.
func (r *Registry) RegisterLinter(ext string, l Linter) {
	r.linters[ext] = l
}

// UseChroma highlights every extension without a dedicated highlighter
// for which ch has a lexer.
func (r *Registry) UseChroma(ch *Chroma) {
	r.chroma = ch
}

// Highlighter returns the highlighter for ext: a registered one, then
// chroma, then the default one.
func (r *Registry) Highlighter(ext string) (Highlighter, bool) {
	if h, ok := r.highlighters[ext]; ok {
		return h, true
	}
	if r.chroma != nil && r.chroma.Supports(ext) {
		return Highlighter{Name: "chroma", Func: r.chroma.Highlight}, true
	}
	h, ok := r.highlighters[""]
	return h, ok
}

// Linter returns the linter for ext, falling back to the default one.
func (r *Registry) Linter(ext string) (Linter, bool) {
	if l, ok := r.linters[ext]; ok {
		return l, true
	}
	l, ok := r.linters[""]
	return l, ok
}

// Extensions lists the extensions with a dedicated linter.
func (r *Registry) Extensions() []string {
	var out []string
	for ext := range r.linters {
		if ext != "" {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// Highlight tokenizes line. A failing highlighter is logged and the line
// is highlighted by the default one instead, or returned as plain text.
func (r *Registry) Highlight(line, ext string) []Token {
	h, ok := r.Highlighter(ext)
	if !ok {
		return []Token{{Text: line}}
	}
	toks, err := h.Func(line, ext)
	if err == nil {
		return toks
	}
	logger.Error("highlighter %s failed: %v", h.Name, err)
	if fb, ok := r.highlighters[""]; ok && fb.Name != h.Name {
		if toks, err := fb.Func(line, ext); err == nil {
			return toks
		}
	}
	return []Token{{Text: line}}
}

// Lint runs the linter for ext over lines. When it fails the default
// rules are applied instead and the failure is returned alongside their
// result so the caller can report it.
func (r *Registry) Lint(ctx context.Context, lines []string, ext string) (map[int][]buffer.Diagnostic, error) {
	l, ok := r.Linter(ext)
	if !ok {
		return map[int][]buffer.Diagnostic{}, nil
	}
	logger.Plugin(l.Name, ext)
	diags, err := run(ctx, l, lines, ext)
	if err == nil {
		return diags, nil
	}
	logger.Error("linter %s failed: %v", l.Name, err)
	fb, ok := r.linters[""]
	if !ok || fb.Name == l.Name {
		return map[int][]buffer.Diagnostic{}, fmt.Errorf("%s: %w", l.Name, err)
	}
	diags, fbErr := run(ctx, fb, lines, ext)
	if fbErr != nil {
		diags = map[int][]buffer.Diagnostic{}
	}
	return diags, fmt.Errorf("%s: %w", l.Name, err)
}

func run(ctx context.Context, l Linter, lines []string, ext string) (map[int][]buffer.Diagnostic, error) {
	if l.File != nil {
		return l.File(ctx, lines, ext)
	}
	out := map[int][]buffer.Diagnostic{}
	for row, line := range lines {
		d, err := l.Line(line, ext)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row+1, err)
		}
		if len(d) > 0 {
			out[row] = d
		}
	}
	return out, nil
}
