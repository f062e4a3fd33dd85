package engine

import (
	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
	"github.com/benjaminbelloeil/CursiveWorld/internal/letters"
)

const (
	// BoundsTolerance is the maximum distance from the skeleton before
	// a drawn point is judged out of bounds. Fixed, independent of the
	// checkpoint radius.
	BoundsTolerance = 80.0

	// boundaryTailSamples bounds how many trailing samples of the
	// latest pen stroke are checked per batch. Earlier ink has already
	// been accepted; re-checking it would re-flag old violations and
	// make each batch cost O(all ink x skeleton).
	boundaryTailSamples = 10
)

// BoundaryDetector classifies drawn points against a tolerance band
// around the letter's full skeleton (all strokes pooled).
type BoundaryDetector struct {
	letter rune
	width  float64
	height float64

	points   []geom.Point
	segments [][2]geom.Point

	outOfBounds bool
	violation   geom.Point
}

// Configure rebinds the detector to a letter skeleton scaled to the
// canvas. Idempotent: reconfiguring with the same letter and size is
// a no-op.
func (b *BoundaryDetector) Configure(letter rune, width, height float64) {
	if b.letter == letter && b.width == width && b.height == height && b.points != nil {
		return
	}
	b.letter = letter
	b.width = width
	b.height = height
	b.points = nil
	b.segments = nil
	b.Reset()
	if width <= 0 || height <= 0 {
		return
	}
	for _, stroke := range letters.StrokesFor(letter) {
		var prev geom.Point
		for i, cp := range stroke.Points {
			p := cp.At(width, height)
			b.points = append(b.points, p)
			if i > 0 {
				// Segments never span stroke boundaries.
				b.segments = append(b.segments, [2]geom.Point{prev, p})
			}
			prev = p
		}
	}
}

// Reset clears transient violation state. The skeleton is kept.
func (b *BoundaryDetector) Reset() {
	b.outOfBounds = false
	b.violation = geom.Point{}
}

// DistanceToSkeleton returns the minimum distance from p to any
// skeleton checkpoint or same-stroke connecting segment.
func (b *BoundaryDetector) DistanceToSkeleton(p geom.Point) float64 {
	best := -1.0
	for _, sp := range b.points {
		if d := p.Distance(sp); best < 0 || d < best {
			best = d
		}
	}
	for _, seg := range b.segments {
		if d := geom.SegmentDistance(p, seg[0], seg[1]); d < best {
			best = d
		}
	}
	return best
}

// WithinBounds reports whether p lies inside the tolerance band.
// An unconfigured or empty skeleton is treated as within bounds so
// setup races never flag the user.
func (b *BoundaryDetector) WithinBounds(p geom.Point) bool {
	if len(b.points) == 0 {
		return true
	}
	return b.DistanceToSkeleton(p) <= BoundsTolerance
}

// EvaluateBatch checks the tail of the latest pen stroke against the
// tolerance band and reports whether a violation was detected. The
// first violating sample latches the flag, records the point, and
// short-circuits the rest of the batch. Nothing is evaluated until
// the drawing holds at least one pen stroke, so initial pen-down
// placement never trips the detector.
func (b *BoundaryDetector) EvaluateBatch(d Drawing) bool {
	if len(b.points) == 0 {
		return false
	}
	last, ok := d.LastStroke()
	if !ok || len(last.Samples) < 2 {
		// A lone pen-down placement is not a stroke yet; judging it
		// would flag users before they have drawn anything.
		return false
	}
	samples := last.Samples
	if len(samples) > boundaryTailSamples {
		samples = samples[len(samples)-boundaryTailSamples:]
	}
	for _, s := range samples {
		if !b.WithinBounds(s.Pos) {
			b.outOfBounds = true
			b.violation = s.Pos
			return true
		}
	}
	return false
}

// OutOfBounds reports the transient violation flag.
func (b *BoundaryDetector) OutOfBounds() bool {
	return b.outOfBounds
}

// ViolationPoint returns the first violating sample of the last
// violating batch. Only meaningful while OutOfBounds is true.
func (b *BoundaryDetector) ViolationPoint() geom.Point {
	return b.violation
}
