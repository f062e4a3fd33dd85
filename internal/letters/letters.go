// Package letters holds the static stroke reference data for the
// supported cursive glyphs.
package letters

import (
	"sort"

	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
)

// Checkpoint is a reference point along a stroke in unit-square
// coordinates. Start marks the first checkpoint of a stroke.
type Checkpoint struct {
	X, Y  float64
	Start bool
}

// At scales the checkpoint to a canvas of the given size.
func (c Checkpoint) At(width, height float64) geom.Point {
	return geom.Pt(c.X*width, c.Y*height)
}

// Stroke is one continuous pen-down-to-pen-up segment of a letterform.
// Number is 1-based and used for display ordering only.
type Stroke struct {
	Number int
	Points []Checkpoint
}

// StrokesFor returns the ordered stroke list for a letter. It is total:
// unsupported runes yield a single-stroke diagonal fallback.
func StrokesFor(letter rune) []Stroke {
	if strokes, ok := table[letter]; ok {
		return strokes
	}
	return fallback
}

// IsSupported reports whether the letter has a real stroke definition.
func IsSupported(letter rune) bool {
	_, ok := table[letter]
	return ok
}

// Supported returns the supported letters in sorted rune order.
func Supported() []rune {
	out := make([]rune, 0, len(table))
	for r := range table {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ck builds a checkpoint; stroke starts are marked by def.
func ck(x, y float64) Checkpoint {
	return Checkpoint{X: x, Y: y}
}

// def assembles a letter definition, assigning 1-based stroke numbers
// and marking each stroke's first checkpoint as a start.
func def(strokes ...[]Checkpoint) []Stroke {
	out := make([]Stroke, 0, len(strokes))
	for i, points := range strokes {
		pts := make([]Checkpoint, len(points))
		copy(pts, points)
		pts[0].Start = true
		out = append(out, Stroke{Number: i + 1, Points: pts})
	}
	return out
}

// fallback is returned for unrecognized input: a single diagonal
// stroke across the canvas.
var fallback = def([]Checkpoint{
	ck(0.20, 0.20), ck(0.40, 0.40), ck(0.60, 0.60), ck(0.80, 0.80),
})
