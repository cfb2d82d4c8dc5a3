package editor

import "tedit/internal/completion"

// Commands lists the ex commands for completion and the help overlay.
var Commands = []completion.Item{
	{Text: "w", Description: "write (w <path> writes to path)"},
	{Text: "q", Description: "quit, refused with unsaved changes"},
	{Text: "q!", Description: "quit without saving"},
	{Text: "wq", Description: "write and quit"},
	{Text: "e", Description: "open a file (e <path>)"},
	{Text: "view", Description: "open a file read-only (view <path>)"},
	{Text: "bn", Description: "next buffer"},
	{Text: "bp", Description: "previous buffer"},
	{Text: "bx", Description: "close buffer"},
	{Text: "bc", Description: "create an empty buffer"},
	{Text: "b", Description: "switch to buffer N (b<N>)"},
	{Text: "goto", Description: "go to line (goto <N>)"},
	{Text: "search", Description: "search forward (search <term>)"},
	{Text: "n", Description: "next match"},
	{Text: "N", Description: "previous match"},
	{Text: "replace", Description: "replace all (replace <search> <replace>)"},
	{Text: "theme", Description: "switch theme (theme <name>)"},
	{Text: "wrap", Description: "toggle line wrap"},
	{Text: "sidebar", Description: "toggle buffer sidebar"},
	{Text: "number", Description: "toggle line numbers"},
	{Text: "split", Description: "split horizontally with the next buffer"},
	{Text: "vsplit", Description: "split vertically with the next buffer"},
	{Text: "unsplit", Description: "close the split"},
	{Text: "focus", Description: "switch split focus"},
	{Text: "session", Description: "session save|load|delete <name>, session list"},
	{Text: "!", Description: "replace buffer with shell output (!<cmd>)"},
	{Text: "help", Description: "toggle help"},
	{Text: "lint", Description: "lint the buffer"},
	{Text: "reload", Description: "reload configuration"},
}

// FileCommands take a path argument.
var FileCommands = []string{"e", "view", "w"}
