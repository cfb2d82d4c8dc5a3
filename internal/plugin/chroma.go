package plugin

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

const maxCached = 2000

// Chroma highlights lines with the chroma lexer matching the file
// extension. Lexers are looked up once per extension and tokenized lines
// are cached until the cache grows past maxCached entries.
type Chroma struct {
	lexers map[string]chroma.Lexer
	cache  map[string][]Token
}

func NewChroma() *Chroma {
	return &Chroma{
		lexers: map[string]chroma.Lexer{},
		cache:  map[string][]Token{},
	}
}

// Supports reports whether chroma has a lexer for ext.
func (c *Chroma) Supports(ext string) bool {
	return c.lexer(ext) != nil
}

func (c *Chroma) lexer(ext string) chroma.Lexer {
	if ext == "" {
		return nil
	}
	if l, ok := c.lexers[ext]; ok {
		return l
	}
	l := lexers.Match("file" + ext)
	if l != nil {
		l = chroma.Coalesce(l)
	}
	c.lexers[ext] = l
	return l
}

// Highlight implements HighlightFunc.
func (c *Chroma) Highlight(line, filetype string) ([]Token, error) {
	key := filetype + "\x00" + line
	if toks, ok := c.cache[key]; ok {
		return toks, nil
	}
	l := c.lexer(filetype)
	if l == nil {
		return nil, fmt.Errorf("no lexer for %q", filetype)
	}
	it, err := l.Tokenise(nil, line)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}
	var toks []Token
	for _, t := range it.Tokens() {
		// Lexers append a newline to the input; keep the line intact.
		text := strings.TrimRight(t.Value, "\n")
		if text == "" {
			continue
		}
		kind := kindOf(t.Type)
		if n := len(toks); n > 0 && toks[n-1].Kind == kind {
			toks[n-1].Text += text
			continue
		}
		toks = append(toks, Token{Text: text, Kind: kind})
	}
	if joined(toks) != line {
		return nil, fmt.Errorf("tokens do not cover line")
	}
	if toks == nil {
		toks = []Token{{Text: ""}}
	}
	if len(c.cache) >= maxCached {
		c.cache = map[string][]Token{}
	}
	c.cache[key] = toks
	return toks, nil
}

func kindOf(t chroma.TokenType) TokenKind {
	switch {
	case t.InCategory(chroma.Keyword):
		return Keyword
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InSubCategory(chroma.LiteralNumber):
		return Number
	case t.InCategory(chroma.Comment):
		return Comment
	case t.InCategory(chroma.Operator):
		return Operator
	case t == chroma.NameFunction || t == chroma.NameClass || t == chroma.NameBuiltin:
		return Name
	}
	return Text
}

func joined(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}
