package editor

type Mode int

const (
	Normal Mode = iota
	Insert
	Visual
	Command
)

func (m Mode) String() string {
	switch m {
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	}
	return "NORMAL"
}

// IntentKind names a request the machine cannot serve on its own
// document and hands to the session.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentQuit
	IntentForceQuit
	IntentOpen
	IntentNext
	IntentPrev
	IntentGoto
	IntentClose
	IntentNew
	IntentSplit
	IntentVSplit
	IntentUnsplit
	IntentSwitchFocus
	IntentTheme
	IntentToggleWrap
	IntentToggleSidebar
	IntentToggleNumbers
	IntentSessionSave
	IntentSessionLoad
	IntentSessionList
	IntentSessionDelete
	IntentShell
	IntentHelp
	IntentLint
	IntentReload
)

var intentNames = map[IntentKind]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentForceQuit:     "force-quit",
	IntentOpen:          "open",
	IntentNext:          "next",
	IntentPrev:          "prev",
	IntentGoto:          "goto",
	IntentClose:         "close",
	IntentNew:           "new",
	IntentSplit:         "split",
	IntentVSplit:        "vsplit",
	IntentUnsplit:       "unsplit",
	IntentSwitchFocus:   "focus",
	IntentTheme:         "theme",
	IntentToggleWrap:    "wrap",
	IntentToggleSidebar: "sidebar",
	IntentToggleNumbers: "number",
	IntentSessionSave:   "session-save",
	IntentSessionLoad:   "session-load",
	IntentSessionList:   "session-list",
	IntentSessionDelete: "session-delete",
	IntentShell:         "shell",
	IntentHelp:          "help",
	IntentLint:          "lint",
	IntentReload:        "reload",
}

func (k IntentKind) String() string {
	if s, ok := intentNames[k]; ok {
		return s
	}
	return "unknown"
}

// Intent is the result of one key. Path and ReadOnly are used by
// IntentOpen, N by IntentGoto (1-based) and Arg by the intents taking a
// name or a command.
type Intent struct {
	Kind     IntentKind
	Path     string
	ReadOnly bool
	N        int
	Arg      string
}

func (i Intent) None() bool { return i.Kind == IntentNone }
