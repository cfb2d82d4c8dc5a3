package completion

import (
	"strings"
)

// Engine completes ex command lines: the command word against a fixed
// command list, and the argument of file commands against the file
// system.
type Engine struct {
	workingDir string
	commands   []Item
	fileCmds   map[string]bool
}

func NewEngine(workingDir string, commands []Item, fileCmds ...string) *Engine {
	e := &Engine{
		workingDir: workingDir,
		commands:   commands,
		fileCmds:   map[string]bool{},
	}
	for _, c := range fileCmds {
		e.fileCmds[c] = true
	}
	return e
}

func (e *Engine) WorkingDir() string {
	return e.workingDir
}

// Complete returns the completion state for line. The state is inactive
// when nothing matches.
func (e *Engine) Complete(line string) State {
	st := State{}
	if name, arg, ok := strings.Cut(line, " "); ok {
		if !e.fileCmds[name] {
			return st
		}
		st.Kind = Path
		st.Prefix = name + " "
		st.Items = Paths(e.workingDir, strings.TrimLeft(arg, " "))
	} else {
		st.Kind = Command
		st.Items = FuzzyMatch(line, e.commands)
	}
	st.Active = len(st.Items) > 0
	return st
}
