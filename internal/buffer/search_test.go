package buffer

import "testing"

func TestSearchFromTop(t *testing.T) {
	d := FromLines([]string{"alpha", "beta", "alphabet"})
	pos, ok := d.Search("bet")
	if !ok || pos != (Position{1, 0}) {
		t.Fatalf("search = %v,%v want (1,0)", pos, ok)
	}
	if _, ok := d.Search("zeta"); ok {
		t.Fatalf("search for missing term must fail")
	}
}

func TestSearchNext(t *testing.T) {
	d := FromLines([]string{"foo bar foo", "bar", "foo"})
	tests := []struct {
		row, col int
		want     Position
	}{
		{0, 0, Position{0, 8}},
		{0, 8, Position{2, 0}},
		{2, 0, Position{0, 0}},
	}
	for _, tt := range tests {
		got, ok := d.SearchNext("foo", tt.row, tt.col)
		if !ok || got != tt.want {
			t.Errorf("SearchNext from (%d,%d) = %v,%v want %v", tt.row, tt.col, got, ok, tt.want)
		}
	}
}

func TestSearchNextWrapsToTop(t *testing.T) {
	d := FromLines([]string{"needle", "hay", "hay"})
	got, ok := d.SearchNext("needle", 2, 1)
	if !ok || got != (Position{0, 0}) {
		t.Fatalf("wrap = %v,%v want (0,0)", got, ok)
	}
	got, ok = d.SearchNext("needle", 0, 0)
	if !ok || got != (Position{0, 0}) {
		t.Fatalf("single occurrence must wrap onto itself, got %v,%v", got, ok)
	}
}

func TestSearchPrev(t *testing.T) {
	d := FromLines([]string{"foo", "x foo foo", "bar"})
	tests := []struct {
		row, col int
		want     Position
	}{
		{1, 6, Position{1, 2}},
		{1, 2, Position{0, 0}},
		{0, 0, Position{1, 6}},
		{2, 1, Position{1, 6}},
	}
	for _, tt := range tests {
		got, ok := d.SearchPrev("foo", tt.row, tt.col)
		if !ok || got != tt.want {
			t.Errorf("SearchPrev from (%d,%d) = %v,%v want %v", tt.row, tt.col, got, ok, tt.want)
		}
	}
}

func TestSearchUsesRuneColumns(t *testing.T) {
	d := FromLines([]string{"ééx"})
	pos, ok := d.Search("x")
	if !ok || pos.Col != 2 {
		t.Fatalf("pos = %v, want col 2", pos)
	}
}
