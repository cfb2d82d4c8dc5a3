package config

// Theme holds lipgloss color strings (ANSI numbers or hex).
type Theme struct {
	Text        string `yaml:"text" json:"text,omitempty"`
	Gutter      string `yaml:"gutter" json:"gutter,omitempty"`
	CurrentLine string `yaml:"current_line" json:"current_line,omitempty"`
	Keyword     string `yaml:"keyword" json:"keyword,omitempty"`
	String      string `yaml:"string" json:"string,omitempty"`
	Comment     string `yaml:"comment" json:"comment,omitempty"`
	Number      string `yaml:"number" json:"number,omitempty"`
	Operator    string `yaml:"operator" json:"operator,omitempty"`
	Name        string `yaml:"name" json:"name,omitempty"`
	Selection   string `yaml:"selection" json:"selection,omitempty"`
	StatusFg    string `yaml:"status_fg" json:"status_fg,omitempty"`
	StatusBg    string `yaml:"status_bg" json:"status_bg,omitempty"`
	Sidebar     string `yaml:"sidebar" json:"sidebar,omitempty"`
	Border      string `yaml:"border" json:"border,omitempty"`
	Error       string `yaml:"error" json:"error,omitempty"`
	Warning     string `yaml:"warning" json:"warning,omitempty"`
	Info        string `yaml:"info" json:"info,omitempty"`
}

func builtinThemes() map[string]Theme {
	return map[string]Theme{
		"default": {
			Text:        "252",
			Gutter:      "240",
			CurrentLine: "86",
			Keyword:     "204",
			String:      "114",
			Comment:     "244",
			Number:      "215",
			Operator:    "81",
			Name:        "252",
			Selection:   "238",
			StatusFg:    "0",
			StatusBg:    "86",
			Sidebar:     "245",
			Border:      "240",
			Error:       "196",
			Warning:     "226",
			Info:        "39",
		},
		"light": {
			Text:        "235",
			Gutter:      "248",
			CurrentLine: "25",
			Keyword:     "125",
			String:      "28",
			Comment:     "245",
			Number:      "130",
			Operator:    "24",
			Name:        "235",
			Selection:   "153",
			StatusFg:    "255",
			StatusBg:    "25",
			Sidebar:     "240",
			Border:      "250",
			Error:       "160",
			Warning:     "136",
			Info:        "25",
		},
		"mono": {
			Text:        "7",
			Gutter:      "8",
			CurrentLine: "15",
			Keyword:     "15",
			String:      "7",
			Comment:     "8",
			Number:      "7",
			Operator:    "7",
			Name:        "7",
			Selection:   "8",
			StatusFg:    "0",
			StatusBg:    "7",
			Sidebar:     "7",
			Border:      "8",
			Error:       "15",
			Warning:     "15",
			Info:        "7",
		},
	}
}

// withFallback fills empty colors from base.
func (t Theme) withFallback(base Theme) Theme {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Theme{
		Text:        pick(t.Text, base.Text),
		Gutter:      pick(t.Gutter, base.Gutter),
		CurrentLine: pick(t.CurrentLine, base.CurrentLine),
		Keyword:     pick(t.Keyword, base.Keyword),
		String:      pick(t.String, base.String),
		Comment:     pick(t.Comment, base.Comment),
		Number:      pick(t.Number, base.Number),
		Operator:    pick(t.Operator, base.Operator),
		Name:        pick(t.Name, base.Name),
		Selection:   pick(t.Selection, base.Selection),
		StatusFg:    pick(t.StatusFg, base.StatusFg),
		StatusBg:    pick(t.StatusBg, base.StatusBg),
		Sidebar:     pick(t.Sidebar, base.Sidebar),
		Border:      pick(t.Border, base.Border),
		Error:       pick(t.Error, base.Error),
		Warning:     pick(t.Warning, base.Warning),
		Info:        pick(t.Info, base.Info),
	}
}
