package viewport

type Rect struct {
	X, Y          int
	Width, Height int
}

type Orientation int

const (
	// Vertical places the two panes side by side.
	Vertical Orientation = iota
	// Horizontal stacks the two panes.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

type LayoutOptions struct {
	Sidebar      bool
	SidebarWidth int
	Split        bool
	Orientation  Orientation
}

// Layout is the screen split into regions. The last two rows are the
// status line and the command/message line.
type Layout struct {
	Sidebar Rect
	Panes   []Rect
	// Divider is the column (vertical split) or row (horizontal split)
	// between the panes.
	Divider Rect
	Status  Rect
	Command Rect
}

// Compute lays out a width x height screen.
func Compute(width, height int, opt LayoutOptions) Layout {
	width, height = max(width, 1), max(height, 3)
	var l Layout
	l.Status = Rect{X: 0, Y: height - 2, Width: width, Height: 1}
	l.Command = Rect{X: 0, Y: height - 1, Width: width, Height: 1}

	body := Rect{Width: width, Height: height - 2}
	if opt.Sidebar && width > opt.SidebarWidth+10 {
		l.Sidebar = Rect{Width: opt.SidebarWidth, Height: body.Height}
		body.X = opt.SidebarWidth + 1
		body.Width = width - body.X
	}

	if !opt.Split {
		l.Panes = []Rect{body}
		return l
	}

	if opt.Orientation == Vertical {
		left := (body.Width - 1) / 2
		right := body.Width - 1 - left
		l.Panes = []Rect{
			{X: body.X, Y: body.Y, Width: max(left, 1), Height: body.Height},
			{X: body.X + left + 1, Y: body.Y, Width: max(right, 1), Height: body.Height},
		}
		l.Divider = Rect{X: body.X + left, Y: body.Y, Width: 1, Height: body.Height}
		return l
	}

	top := (body.Height - 1) / 2
	bottom := body.Height - 1 - top
	l.Panes = []Rect{
		{X: body.X, Y: body.Y, Width: body.Width, Height: max(top, 1)},
		{X: body.X, Y: body.Y + top + 1, Width: body.Width, Height: max(bottom, 1)},
	}
	l.Divider = Rect{X: body.X, Y: body.Y + top, Width: body.Width, Height: 1}
	return l
}
