package config

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"tedit/internal/logger"
)

type Action string

const (
	ActionInsert       Action = "insert"
	ActionAppend       Action = "append"
	ActionOpenBelow    Action = "open_below"
	ActionVisual       Action = "visual"
	ActionCommand      Action = "command"
	ActionLeft         Action = "left"
	ActionDown         Action = "down"
	ActionUp           Action = "up"
	ActionRight        Action = "right"
	ActionWordForward  Action = "word_forward"
	ActionWordBackward Action = "word_backward"
	ActionLineStart    Action = "line_start"
	ActionLineEnd      Action = "line_end"
	ActionLastLine     Action = "last_line"
	ActionYankLine     Action = "yank_line"
	ActionDelete       Action = "delete"
	ActionDeleteChar   Action = "delete_char"
	ActionPaste        Action = "paste"
	ActionUndo         Action = "undo"
	ActionRedo         Action = "redo"
	ActionSearch       Action = "search"
	ActionSearchNext   Action = "search_next"
	ActionSearchPrev   Action = "search_prev"
	ActionMark         Action = "mark"
	ActionJumpMark     Action = "jump_mark"
	ActionExit         Action = "exit"
	ActionVisualYank   Action = "visual_yank"
	ActionVisualDelete Action = "visual_delete"
	ActionVisualPaste  Action = "visual_paste"
	ActionExitInsert   Action = "exit_insert"
	ActionCancel       Action = "cancel"
)

type actionSpec struct {
	action Action
	key    string
	alt    []string
	desc   string
}

// Per-mode tables in lookup order. Alternate keys are fixed.
var (
	normalSpecs = []actionSpec{
		{ActionInsert, "i", nil, "insert mode"},
		{ActionAppend, "a", nil, "append after cursor"},
		{ActionOpenBelow, "o", nil, "open line below"},
		{ActionVisual, "v", nil, "visual mode"},
		{ActionCommand, ":", nil, "command line"},
		{ActionLeft, "h", []string{"left"}, "left"},
		{ActionDown, "j", []string{"down"}, "down"},
		{ActionUp, "k", []string{"up"}, "up"},
		{ActionRight, "l", []string{"right"}, "right"},
		{ActionWordForward, "w", nil, "next word"},
		{ActionWordBackward, "b", nil, "previous word"},
		{ActionLineStart, "0", []string{"home"}, "line start"},
		{ActionLineEnd, "$", []string{"end"}, "line end"},
		{ActionLastLine, "G", nil, "last line"},
		{ActionYankLine, "y", nil, "yank line"},
		{ActionDelete, "d", nil, "delete (dd deletes line)"},
		{ActionDeleteChar, "x", []string{"delete"}, "delete character"},
		{ActionPaste, "p", nil, "paste"},
		{ActionUndo, "u", nil, "undo"},
		{ActionRedo, "r", []string{"ctrl+r"}, "redo"},
		{ActionSearch, "/", nil, "search from top"},
		{ActionSearchNext, "n", nil, "next match"},
		{ActionSearchPrev, "N", nil, "previous match"},
		{ActionMark, "m", nil, "set mark (m<letter>)"},
		{ActionJumpMark, "'", nil, "jump to mark ('<letter>)"},
		{ActionExit, "esc", nil, "exit editor"},
	}
	visualSpecs = []actionSpec{
		{ActionVisual, "v", nil, "leave visual mode"},
		{ActionCancel, "esc", nil, "leave visual mode"},
		{ActionLeft, "h", []string{"left"}, "left"},
		{ActionDown, "j", []string{"down"}, "down"},
		{ActionUp, "k", []string{"up"}, "up"},
		{ActionRight, "l", []string{"right"}, "right"},
		{ActionWordForward, "w", nil, "next word"},
		{ActionWordBackward, "b", nil, "previous word"},
		{ActionLineStart, "0", []string{"home"}, "line start"},
		{ActionLineEnd, "$", []string{"end"}, "line end"},
		{ActionVisualYank, "y", nil, "yank selection"},
		{ActionVisualDelete, "d", []string{"x"}, "delete selection"},
		{ActionVisualPaste, "p", nil, "replace selection"},
	}
	insertSpecs = []actionSpec{
		{ActionExitInsert, "esc", nil, "normal mode"},
	}
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

// Keymap resolves keys to actions per mode.
type Keymap struct {
	tables map[Mode][]binding
}

type binding struct {
	action Action
	key.Binding
}

// NewKeymap overlays overrides (action name to key) on the defaults.
// Unknown action names are ignored and logged.
func NewKeymap(overrides map[string]string) *Keymap {
	known := map[Action]bool{}
	for _, specs := range [][]actionSpec{normalSpecs, visualSpecs, insertSpecs} {
		for _, s := range specs {
			known[s.action] = true
		}
	}
	for name := range overrides {
		if !known[Action(name)] {
			logger.Error("keymap: ignoring unknown action %q", name)
		}
	}

	build := func(specs []actionSpec) []binding {
		out := make([]binding, 0, len(specs))
		for _, s := range specs {
			primary := s.key
			if k, ok := overrides[string(s.action)]; ok && k != "" {
				primary = k
			}
			keys := append([]string{primary}, s.alt...)
			out = append(out, binding{
				action:  s.action,
				Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(primary, s.desc)),
			})
		}
		return out
	}

	return &Keymap{tables: map[Mode][]binding{
		ModeNormal: build(normalSpecs),
		ModeVisual: build(visualSpecs),
		ModeInsert: build(insertSpecs),
	}}
}

// Lookup returns the action bound to k in mode.
func (km *Keymap) Lookup(mode Mode, k string) (Action, bool) {
	for _, b := range km.tables[mode] {
		if !b.Enabled() {
			continue
		}
		for _, bk := range b.Keys() {
			if bk == k {
				return b.action, true
			}
		}
	}
	return "", false
}

// Key returns the primary key bound to action in mode.
func (km *Keymap) Key(mode Mode, action Action) string {
	for _, b := range km.tables[mode] {
		if b.action == action {
			return b.Help().Key
		}
	}
	return ""
}

// HelpEntry is one line of the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// Help lists the bindings of mode sorted by key.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	var out []HelpEntry
	for _, b := range km.tables[mode] {
		h := b.Help()
		out = append(out, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
