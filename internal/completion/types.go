package completion

type Item struct {
	Text        string
	Description string
	Score       int
}

type Kind int

const (
	None Kind = iota
	Command
	Path
)

// State tracks one tab-completion cycle on the command line. Prefix is
// the part of the line kept in front of the completed word.
type State struct {
	Active   bool
	Kind     Kind
	Prefix   string
	Items    []Item
	Selected int
}

func (s *State) Reset() {
	*s = State{}
}

func (s *State) SelectNext() {
	if len(s.Items) > 0 {
		s.Selected = (s.Selected + 1) % len(s.Items)
	}
}

func (s *State) SelectPrev() {
	if len(s.Items) > 0 {
		s.Selected = (s.Selected - 1 + len(s.Items)) % len(s.Items)
	}
}

func (s *State) Current() (Item, bool) {
	if s.Selected >= 0 && s.Selected < len(s.Items) {
		return s.Items[s.Selected], true
	}
	return Item{}, false
}

// Line is the command line with the selected item applied.
func (s *State) Line() string {
	it, ok := s.Current()
	if !ok {
		return s.Prefix
	}
	return s.Prefix + it.Text
}
