package tui

import (
	"strings"
	"testing"

	"github.com/benjaminbelloeil/CursiveWorld/internal/engine"
	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
)

func TestCanvasUnitSize(t *testing.T) {
	c := NewCanvas(40, 20)
	w, h := c.UnitSize()
	if w != 320 || h != 320 {
		t.Errorf("unit size = %fx%f, want 320x320", w, h)
	}
}

func TestCellToPointCenters(t *testing.T) {
	c := NewCanvas(40, 20)
	p := c.CellToPoint(0, 0)
	if p.X != 4 || p.Y != 8 {
		t.Errorf("cell (0,0) center = %v, want (4, 8)", p)
	}
	p = c.CellToPoint(3, 2)
	if p.X != 28 || p.Y != 40 {
		t.Errorf("cell (3,2) center = %v, want (28, 40)", p)
	}
}

func TestCanvasContains(t *testing.T) {
	c := NewCanvas(10, 5)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{10, 4, false},
		{9, 5, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		if got := c.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCanvasClampsTinySizes(t *testing.T) {
	c := NewCanvas(0, -3)
	if c.Cols() != 1 || c.Rows() != 1 {
		t.Errorf("cells = %dx%d, want 1x1", c.Cols(), c.Rows())
	}
}

func TestRenderShowsSkeletonAndDimensions(t *testing.T) {
	c := NewCanvas(30, 15)
	w, h := c.UnitSize()
	sess := engine.NewSession('a', w, h)

	out := c.Render(sess, engine.Drawing{}, false, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("got %d lines, want 15", len(lines))
	}
	if !containsBraille(out) {
		t.Error("skeleton should draw braille dots")
	}
}

func TestRenderMarksViolation(t *testing.T) {
	c := NewCanvas(30, 15)
	w, h := c.UnitSize()
	sess := engine.NewSession('a', w, h)
	at := geom.Pt(w/2, h/2)

	out := c.Render(sess, engine.Drawing{}, false, &at)
	if !strings.Contains(out, "✕") {
		t.Error("violation marker missing")
	}
}

func TestRenderShowsGuideMarker(t *testing.T) {
	c := NewCanvas(30, 15)
	w, h := c.UnitSize()
	sess := engine.NewSession('a', w, h)

	out := c.Render(sess, engine.Drawing{}, true, nil)
	if !strings.Contains(out, "◎") {
		t.Error("guide marker missing with guides enabled")
	}
	out = c.Render(sess, engine.Drawing{}, false, nil)
	if strings.Contains(out, "◎") {
		t.Error("guide marker present with guides disabled")
	}
}

func containsBraille(s string) bool {
	for _, r := range s {
		if r >= 0x2801 && r <= 0x28FF {
			return true
		}
	}
	return false
}
