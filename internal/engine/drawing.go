// Package engine implements the tracing core: the boundary detector,
// the checkpoint progress matcher, and the session controller that
// drives them on every drawing update.
package engine

import (
	"time"

	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
)

// Sample is one timestamped input point in canvas coordinates.
type Sample struct {
	Pos geom.Point
	At  time.Time
}

// PenStroke is one continuous pen-down-to-pen-up run of samples.
type PenStroke struct {
	Samples []Sample
}

// Drawing is the full current drawing state. Callers pass the whole
// snapshot on every update; the engine never assumes incremental diffs.
type Drawing struct {
	Strokes []PenStroke
}

// SampleCount returns the total number of samples across all pen strokes.
func (d Drawing) SampleCount() int {
	n := 0
	for _, s := range d.Strokes {
		n += len(s.Samples)
	}
	return n
}

// LastStroke returns the most recent pen stroke, if any.
func (d Drawing) LastStroke() (PenStroke, bool) {
	if len(d.Strokes) == 0 {
		return PenStroke{}, false
	}
	return d.Strokes[len(d.Strokes)-1], true
}

// Append adds a sample to the drawing, opening a new pen stroke when
// penDown starts a fresh run.
func (d *Drawing) Append(p geom.Point, at time.Time, penDown bool) {
	if penDown || len(d.Strokes) == 0 {
		d.Strokes = append(d.Strokes, PenStroke{})
	}
	last := &d.Strokes[len(d.Strokes)-1]
	last.Samples = append(last.Samples, Sample{Pos: p, At: at})
}

// Clear removes all ink.
func (d *Drawing) Clear() {
	d.Strokes = nil
}
