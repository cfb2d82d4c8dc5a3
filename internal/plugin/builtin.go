package plugin

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"tedit/internal/buffer"
)

// Builtin highlighter: line comments, quoted strings and numbers.
func builtinHighlight(line, filetype string) ([]Token, error) {
	var toks []Token
	emit := func(text string, kind TokenKind) {
		if text == "" {
			return
		}
		if n := len(toks); n > 0 && toks[n-1].Kind == kind {
			toks[n-1].Text += text
			return
		}
		toks = append(toks, Token{Text: text, Kind: kind})
	}

	prefix := commentPrefix(filetype)
	runes := []rune(line)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case prefix != "" && strings.HasPrefix(string(runes[i:]), prefix):
			emit(string(runes[i:]), Comment)
			return toks, nil
		case r == '"' || r == '\'' || r == '`':
			j := i + 1
			for j < len(runes) && runes[j] != r {
				if runes[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(runes))
			emit(string(runes[i:j]), String)
			i = j
		case unicode.IsDigit(r) && (i == 0 || !isIdent(runes[i-1])):
			j := i
			for j < len(runes) && (isIdent(runes[j]) || runes[j] == '.') {
				j++
			}
			emit(string(runes[i:j]), Number)
			i = j
		case strings.ContainsRune("+-*/%=<>!&|^~", r):
			emit(string(r), Operator)
			i++
		default:
			emit(string(r), Text)
			i++
		}
	}
	if toks == nil {
		toks = []Token{{Text: ""}}
	}
	return toks, nil
}

func commentPrefix(filetype string) string {
	switch filetype {
	case ".py", ".sh", ".bash", ".rb", ".yaml", ".yml", ".toml", ".conf", ".pl", ".r":
		return "#"
	case ".lua", ".sql", ".hs":
		return "--"
	case ".vim":
		return "\""
	case ".txt", ".md", "":
		return ""
	}
	return "//"
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Rules is the built-in line linter.
type Rules struct {
	MaxLineLength int
}

func (rl Rules) Lint(line, filetype string) ([]buffer.Diagnostic, error) {
	var out []buffer.Diagnostic
	if strings.TrimRight(line, " \t") != line {
		out = append(out, buffer.Diagnostic{Severity: buffer.SeverityWarning, Message: "trailing whitespace"})
	}
	if rl.MaxLineLength > 0 {
		if n := utf8.RuneCountInString(line); n > rl.MaxLineLength {
			out = append(out, buffer.Diagnostic{
				Severity: buffer.SeverityInfo,
				Message:  fmt.Sprintf("line is %d characters (max %d)", n, rl.MaxLineLength),
			})
		}
	}
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	if strings.Contains(indent, " ") && strings.Contains(indent, "\t") {
		out = append(out, buffer.Diagnostic{Severity: buffer.SeverityWarning, Message: "mixed tabs and spaces in indentation"})
	}
	if strings.Contains(line, "<<<<<<<") || strings.Contains(line, ">>>>>>>") {
		out = append(out, buffer.Diagnostic{Severity: buffer.SeverityError, Message: "merge conflict marker"})
	}
	return out, nil
}

// RegisterBuiltins installs the fallback highlighter and linter under the
// empty extension.
func RegisterBuiltins(r *Registry, rules Rules) {
	r.RegisterHighlighter("", Highlighter{Name: "builtin", Func: builtinHighlight})
	r.RegisterLinter("", Linter{Name: "builtin", Line: rules.Lint})
}
