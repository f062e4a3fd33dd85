package braille

import "testing"

func TestFromMask(t *testing.T) {
	if r := FromMask(0); r != '⠀' {
		t.Errorf("empty cell = %q", r)
	}
	if r := FromMask(0xFF); r != '⣿' {
		t.Errorf("full cell = %q", r)
	}
}

func TestGridSetAndMask(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0)
	g.Set(1, 3)
	if got := g.Mask(0, 0); got != 0x01|0x80 {
		t.Errorf("mask = %#x", got)
	}
	if got := g.Mask(1, 0); got != 0 {
		t.Errorf("untouched cell mask = %#x", got)
	}
	// Out of range is a no-op.
	g.Set(-1, 0)
	g.Set(100, 100)
	if got := g.Mask(5, 5); got != 0 {
		t.Errorf("out-of-range mask = %#x", got)
	}
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("cells = %dx%d", g.Width(), g.Height())
	}
	if g.DotWidth() != 6 || g.DotHeight() != 8 {
		t.Errorf("dots = %dx%d", g.DotWidth(), g.DotHeight())
	}
}

func TestLineEndpoints(t *testing.T) {
	g := NewGrid(4, 4)
	var visited [][2]int
	g.Line(0, 0, 7, 15, func(x, y int) {
		visited = append(visited, [2]int{x, y})
		g.Set(x, y)
	})
	if len(visited) == 0 {
		t.Fatal("no dots visited")
	}
	first, last := visited[0], visited[len(visited)-1]
	if first != [2]int{0, 0} || last != [2]int{7, 15} {
		t.Errorf("endpoints: first=%v last=%v", first, last)
	}
	if g.Mask(0, 0) == 0 || g.Mask(3, 3) == 0 {
		t.Error("endpoint cells not set")
	}
}

func TestLineHorizontal(t *testing.T) {
	g := NewGrid(4, 1)
	g.Line(0, 1, 7, 1, nil)
	for cx := 0; cx < 4; cx++ {
		if g.Mask(cx, 0) == 0 {
			t.Errorf("cell %d not set", cx)
		}
	}
}
