// Package tui provides the Bubble Tea tracing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benjaminbelloeil/CursiveWorld/internal/braille"
	"github.com/benjaminbelloeil/CursiveWorld/internal/engine"
	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
	"github.com/benjaminbelloeil/CursiveWorld/internal/letters"
)

// Canvas coordinates are measured in logical units. Every terminal
// cell covers an 8x16 unit block so a unit is a quarter braille dot,
// which keeps checkpoint radii meaningful at typical terminal sizes.
const (
	cellUnitsX = 8
	cellUnitsY = 16
	dotUnits   = 4
)

var (
	skeletonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A"))
	inkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	guideStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	violationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Canvas maps between terminal cells and the unit coordinate space
// the tracing engine works in.
type Canvas struct {
	cols int
	rows int
}

// NewCanvas returns a canvas covering cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{cols: cols, rows: rows}
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// UnitSize returns the canvas dimensions in logical units.
func (c *Canvas) UnitSize() (width, height float64) {
	return float64(c.cols * cellUnitsX), float64(c.rows * cellUnitsY)
}

// CellToPoint maps a terminal cell to the unit point at its center.
func (c *Canvas) CellToPoint(cellX, cellY int) geom.Point {
	return geom.Pt(
		float64(cellX)*cellUnitsX+cellUnitsX/2,
		float64(cellY)*cellUnitsY+cellUnitsY/2,
	)
}

// Contains reports whether a terminal cell lies on the canvas.
func (c *Canvas) Contains(cellX, cellY int) bool {
	return cellX >= 0 && cellX < c.cols && cellY >= 0 && cellY < c.rows
}

// Render draws the letter skeleton, the learner's ink, and the
// optional guide and violation markers into a cols x rows block.
func (c *Canvas) Render(sess *engine.Session, d engine.Drawing, showGuides bool, violation *geom.Point) string {
	unitW, unitH := c.UnitSize()

	skeleton := braille.NewGrid(c.cols, c.rows)
	for _, path := range letters.PathFor(sess.Letter(), unitW, unitH) {
		c.plotPolyline(skeleton, path)
	}

	ink := braille.NewGrid(c.cols, c.rows)
	for _, stroke := range d.Strokes {
		points := make([]geom.Point, len(stroke.Samples))
		for i, s := range stroke.Samples {
			points[i] = s.Pos
		}
		c.plotPolyline(ink, points)
	}

	type marker struct {
		glyph string
		style lipgloss.Style
	}
	markers := map[[2]int]marker{}
	if showGuides && !sess.Completed() {
		if next, ok := sess.NextCheckpoint(); ok {
			markers[c.unitToCell(next)] = marker{glyph: "◎", style: guideStyle}
		}
	}
	if violation != nil {
		markers[c.unitToCell(*violation)] = marker{glyph: "✕", style: violationStyle}
	}

	var sb strings.Builder
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			if m, ok := markers[[2]int{cx, cy}]; ok {
				sb.WriteString(m.style.Render(m.glyph))
				continue
			}
			if mask := ink.Mask(cx, cy); mask != 0 {
				sb.WriteString(inkStyle.Render(string(braille.FromMask(mask))))
				continue
			}
			if mask := skeleton.Mask(cx, cy); mask != 0 {
				sb.WriteString(skeletonStyle.Render(string(braille.FromMask(mask))))
				continue
			}
			sb.WriteByte(' ')
		}
		if cy < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) plotPolyline(grid *braille.Grid, points []geom.Point) {
	if len(points) == 1 {
		x, y := c.unitToDot(points[0])
		grid.Set(x, y)
		return
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := c.unitToDot(points[i-1])
		x1, y1 := c.unitToDot(points[i])
		grid.Line(x0, y0, x1, y1, nil)
	}
}

func (c *Canvas) unitToDot(p geom.Point) (x, y int) {
	x = int(p.X / dotUnits)
	y = int(p.Y / dotUnits)
	maxX, maxY := c.cols*2-1, c.rows*4-1
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	}
	if y > maxY {
		y = maxY
	}
	return x, y
}

func (c *Canvas) unitToCell(p geom.Point) [2]int {
	cx := int(p.X / cellUnitsX)
	cy := int(p.Y / cellUnitsY)
	if cx < 0 {
		cx = 0
	}
	if cx >= c.cols {
		cx = c.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= c.rows {
		cy = c.rows - 1
	}
	return [2]int{cx, cy}
}
