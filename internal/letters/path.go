package letters

import "github.com/benjaminbelloeil/CursiveWorld/internal/geom"

// quadSteps is the number of line segments each quadratic arc is
// flattened into for display.
const quadSteps = 8

// PathFor returns one smoothed polyline per stroke of the letter,
// scaled to the given canvas size. The curve threads quadratic arcs
// through the scaled checkpoints, using each checkpoint as a control
// point and the midpoints between neighbours as arc endpoints. This
// is a rendering helper only; matching works on raw checkpoints.
func PathFor(letter rune, width, height float64) [][]geom.Point {
	strokes := StrokesFor(letter)
	out := make([][]geom.Point, 0, len(strokes))
	for _, stroke := range strokes {
		out = append(out, smoothStroke(stroke, width, height))
	}
	return out
}

func smoothStroke(stroke Stroke, width, height float64) []geom.Point {
	scaled := make([]geom.Point, len(stroke.Points))
	for i, cp := range stroke.Points {
		scaled[i] = cp.At(width, height)
	}
	if len(scaled) < 3 {
		return scaled
	}

	path := []geom.Point{scaled[0]}
	prev := scaled[0]
	for i := 1; i < len(scaled)-1; i++ {
		ctrl := scaled[i]
		end := ctrl.Midpoint(scaled[i+1])
		path = appendQuad(path, prev, ctrl, end)
		prev = end
	}
	return appendQuad(path, prev, scaled[len(scaled)-1], scaled[len(scaled)-1])
}

// appendQuad flattens the quadratic arc from p0 through control c to
// p1 into quadSteps line segments appended to path.
func appendQuad(path []geom.Point, p0, c, p1 geom.Point) []geom.Point {
	for i := 1; i <= quadSteps; i++ {
		t := float64(i) / quadSteps
		a := p0.Lerp(c, t)
		b := c.Lerp(p1, t)
		path = append(path, a.Lerp(b, t))
	}
	return path
}
