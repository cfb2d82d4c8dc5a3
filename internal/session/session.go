package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"tedit/internal/buffer"
	"tedit/internal/config"
	"tedit/internal/cursor"
	"tedit/internal/editor"
	"tedit/internal/plugin"
	"tedit/internal/viewport"
)

var (
	ErrLastDocument    = errors.New("cannot close the last document")
	ErrSessionNotFound = errors.New("session not found")
	ErrNeedTwoBuffers  = errors.New("split needs at least two buffers")
)

// Entry is one open document with its cursor and input state.
type Entry struct {
	ID     string
	Doc    *buffer.Document
	Cursor *cursor.Cursor
	Editor *editor.Machine
}

// Split pairs two entries by index. Focus selects the pane receiving
// input.
type Split struct {
	Orientation viewport.Orientation
	Panes       [2]int
	Focus       int
}

// View holds the display toggles.
type View struct {
	Theme       string
	Wrap        bool
	Sidebar     bool
	LineNumbers bool
	Help        bool
}

// NamedStore keeps sessions saved under a name.
type NamedStore interface {
	Save(name string, rec Record) error
	Load(name string) (Record, error)
	List() ([]string, error)
	Delete(name string) error
}

type Options struct {
	Config     *config.Config
	ConfigPath string
	Plugins    *plugin.Registry
	// Store receives the last session on clean quit. Nil disables it.
	Store *Store
	Named NamedStore
	// Completer completes the command line; nil disables completion.
	Completer editor.Completer
	// Clipboard mirrors yanks to the system clipboard when set.
	Clipboard func(string) error
	Now       func() time.Time
}

// Session is the whole running editor. It is driven by one key at a time
// and is not safe for concurrent use.
type Session struct {
	cfg        *config.Config
	configPath string
	keymap     *config.Keymap
	plugins    *plugin.Registry
	shell      plugin.Shell
	store      *Store
	named      NamedStore
	completer  editor.Completer
	clipboard  func(string) error
	now        func() time.Time

	entries []*Entry
	active  int
	split   *Split
	view    View

	width, height int
	lastAutosave  time.Time
}

// New creates a session holding one empty scratch document.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := opts.Plugins
	if reg == nil {
		reg = plugin.Load(cfg)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Session{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		keymap:     cfg.Keymap(),
		plugins:    reg,
		shell:      plugin.ShellFor(cfg),
		store:      opts.Store,
		named:      opts.Named,
		completer:  opts.Completer,
		clipboard:  opts.Clipboard,
		now:        now,
		view:       viewFromConfig(cfg),
		width:      80,
		height:     24,
	}
	s.lastAutosave = now()
	s.entries = []*Entry{s.newEntry(buffer.New())}
	return s
}

func viewFromConfig(cfg *config.Config) View {
	return View{
		Theme:       cfg.Theme,
		Wrap:        cfg.Wrap,
		Sidebar:     cfg.Sidebar,
		LineNumbers: cfg.LineNumbers,
	}
}

func (s *Session) newEntry(doc *buffer.Document) *Entry {
	return &Entry{
		ID:     newEntryID(),
		Doc:    doc,
		Cursor: cursor.New(doc),
		Editor: editor.New(editor.Options{
			Keymap:    s.keymap,
			Completer: s.completer,
			Clipboard: s.clipboard,
		}),
	}
}

// newEntryID creates a UUIDv7-based entry ID.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("entry_fallback_%d", time.Now().UnixNano())
	}
	return id.String()
}

func (s *Session) Config() *config.Config { return s.cfg }

func (s *Session) View() View { return s.view }

func (s *Session) Entries() []*Entry { return s.entries }

func (s *Session) ActiveIndex() int { return s.active }

// Active returns the entry receiving input.
func (s *Session) Active() *Entry { return s.entries[s.active] }

// Split returns the split state, or nil.
func (s *Session) Split() *Split {
	if s.split == nil {
		return nil
	}
	sp := *s.split
	return &sp
}

// Resize records the terminal size.
func (s *Session) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 3)
}

// Open loads filename (or an empty named document when it does not
// exist), appends it and makes it active. A file that is already open is
// activated instead with its cursor left where it was, and the untouched
// startup scratch document is replaced.
func (s *Session) Open(filename string, row, col int, readOnly bool) (*Entry, error) {
	if filename != "" {
		for i, e := range s.entries {
			if samePath(e.Doc.Filename(), filename) {
				s.activate(i)
				return e, nil
			}
		}
	}

	doc, err := buffer.Open(filename, readOnly)
	if err != nil {
		return nil, err
	}
	e := s.newEntry(doc)
	e.Cursor.Set(buffer.Position{Row: row, Col: col})

	if len(s.entries) == 1 && isPristineScratch(s.entries[0].Doc) {
		s.entries[0] = e
		s.activate(0)
		return e, nil
	}
	s.entries = append(s.entries, e)
	s.activate(len(s.entries) - 1)
	return e, nil
}

func isPristineScratch(d *buffer.Document) bool {
	return d.Filename() == "" && d.UndoDepth() == 0 && d.LineCount() == 1 && d.Line(0) == ""
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return aa == bb
}

// New appends an empty scratch document and activates it.
func (s *Session) New() *Entry {
	e := s.newEntry(buffer.New())
	s.entries = append(s.entries, e)
	s.activate(len(s.entries) - 1)
	return e
}

// Close removes the entry at index. The last document cannot be closed.
func (s *Session) Close(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("no buffer %d", index+1)
	}
	if len(s.entries) == 1 {
		return ErrLastDocument
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	if s.split != nil {
		if s.split.Panes[0] == index || s.split.Panes[1] == index {
			s.split = nil
		} else {
			for i, p := range s.split.Panes {
				if p > index {
					s.split.Panes[i] = p - 1
				}
			}
		}
	}
	if s.split != nil {
		s.active = s.split.Panes[s.split.Focus]
		return nil
	}
	if s.active > index || s.active >= len(s.entries) {
		s.active--
	}
	return nil
}

func (s *Session) Next() { s.activate((s.active + 1) % len(s.entries)) }

func (s *Session) Prev() { s.activate((s.active - 1 + len(s.entries)) % len(s.entries)) }

// Goto activates the 1-based buffer n.
func (s *Session) Goto(n int) error {
	if n < 1 || n > len(s.entries) {
		return fmt.Errorf("no buffer %d", n)
	}
	s.activate(n - 1)
	return nil
}

// activate makes index the active entry. In split view the focused pane
// shows it.
func (s *Session) activate(index int) {
	s.active = index
	if s.split != nil {
		s.split.Panes[s.split.Focus] = index
	}
}

// SplitView pairs the active entry with the next one.
func (s *Session) SplitView(o viewport.Orientation) error {
	if len(s.entries) < 2 {
		return ErrNeedTwoBuffers
	}
	s.split = &Split{
		Orientation: o,
		Panes:       [2]int{s.active, (s.active + 1) % len(s.entries)},
	}
	return nil
}

func (s *Session) Unsplit() { s.split = nil }

// ToggleFocus moves input to the other pane of the split.
func (s *Session) ToggleFocus() bool {
	if s.split == nil {
		return false
	}
	s.split.Focus ^= 1
	s.active = s.split.Panes[s.split.Focus]
	return true
}

// notify sets the status message of the active entry.
func (s *Session) notify(format string, args ...interface{}) {
	s.Active().Editor.SetMessage(format, args...)
}

// PendingDocuments lists the names of documents with unsaved edits.
func (s *Session) PendingDocuments() []string {
	var out []string
	for _, e := range s.entries {
		if e.Doc.HasPendingEdits() {
			out = append(out, e.Doc.Name())
		}
	}
	return out
}
