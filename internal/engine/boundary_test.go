package engine

import (
	"testing"

	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
)

func TestBoundaryWithinBounds(t *testing.T) {
	var b BoundaryDetector
	b.Configure('a', 300, 400)

	on := scaledCheckpoints('a', 0, 300, 400)[0]
	if !b.WithinBounds(on) {
		t.Fatalf("point on a checkpoint must be within bounds")
	}
	if !b.WithinBounds(on.Add(geom.Pt(BoundsTolerance-1, 0))) {
		t.Fatalf("point just inside the tolerance band must pass")
	}
	if b.WithinBounds(geom.Pt(5, 395)) {
		t.Fatalf("far corner point must be out of bounds")
	}
}

func TestBoundaryDistanceUsesSegments(t *testing.T) {
	var b BoundaryDetector
	b.Configure('?', 300, 400)

	// Fallback diagonal runs (60,80)-(240,320); a point beside the
	// middle of a segment is closer to the segment than to any
	// checkpoint.
	mid := geom.Pt(90, 120) // midpoint of the first segment
	probe := mid.Add(geom.Pt(-8, 6))
	d := b.DistanceToSkeleton(probe)
	if d > 10.001 {
		t.Fatalf("expected segment distance <= 10, got %v", d)
	}
}

func TestEvaluateBatchChecksOnlyTail(t *testing.T) {
	var b BoundaryDetector
	b.Configure('?', 300, 400)

	bad := geom.Pt(290, 10)
	good := scaledCheckpoints('?', 0, 300, 400)[0]
	if b.WithinBounds(bad) {
		t.Fatalf("probe point unexpectedly within bounds")
	}

	// The violating sample is buried beyond the 10-sample tail.
	points := []geom.Point{bad}
	for i := 0; i < 10; i++ {
		points = append(points, good)
	}
	if b.EvaluateBatch(drawingOf(points...)) {
		t.Fatalf("accepted ink outside the tail must not re-flag")
	}
	if b.OutOfBounds() {
		t.Fatalf("flag set without a tail violation")
	}

	// The same sample inside the tail is flagged and recorded.
	if !b.EvaluateBatch(drawingOf(good, good, bad)) {
		t.Fatalf("expected a violation")
	}
	if !b.OutOfBounds() {
		t.Fatalf("violation flag not latched for the batch")
	}
	if b.ViolationPoint() != bad {
		t.Fatalf("expected violating point %v, got %v", bad, b.ViolationPoint())
	}
}

func TestEvaluateBatchShortCircuits(t *testing.T) {
	var b BoundaryDetector
	b.Configure('?', 300, 400)

	first := geom.Pt(290, 10)
	second := geom.Pt(10, 390)
	good := scaledCheckpoints('?', 0, 300, 400)[0]
	if !b.EvaluateBatch(drawingOf(good, first, second)) {
		t.Fatalf("expected a violation")
	}
	if b.ViolationPoint() != first {
		t.Fatalf("expected the first violating sample, got %v", b.ViolationPoint())
	}
}

func TestEvaluateBatchIgnoresPenDownPlacement(t *testing.T) {
	var b BoundaryDetector
	b.Configure('?', 300, 400)

	// A lone pen-down sample, even far off the skeleton, is not judged.
	if b.EvaluateBatch(drawingOf(geom.Pt(290, 10))) {
		t.Fatalf("single pen-down placement must not be evaluated")
	}
	if b.EvaluateBatch(Drawing{}) {
		t.Fatalf("empty drawing must not be evaluated")
	}
}

func TestBoundaryReset(t *testing.T) {
	var b BoundaryDetector
	b.Configure('?', 300, 400)
	b.EvaluateBatch(drawingOf(geom.Pt(290, 10), geom.Pt(290, 10)))
	if !b.OutOfBounds() {
		t.Fatalf("expected a violation before reset")
	}
	b.Reset()
	if b.OutOfBounds() {
		t.Fatalf("reset must clear the violation flag")
	}
	// Skeleton survives reset.
	if b.WithinBounds(geom.Pt(5, 395)) {
		t.Fatalf("skeleton lost across reset")
	}
}

func TestBoundaryEmptyCanvasNeutral(t *testing.T) {
	var b BoundaryDetector
	b.Configure('a', 0, 0)
	if !b.WithinBounds(geom.Pt(1000, 1000)) {
		t.Fatalf("unconfigured skeleton must report within bounds")
	}
	if b.EvaluateBatch(drawingOf(geom.Pt(1000, 1000), geom.Pt(2000, 2000))) {
		t.Fatalf("unconfigured skeleton must never flag")
	}
}

func TestBoundaryConfigureIdempotent(t *testing.T) {
	var b BoundaryDetector
	b.Configure('a', 300, 400)
	before := len(b.points)
	b.Configure('a', 300, 400)
	if len(b.points) != before {
		t.Fatalf("reconfiguring with identical inputs rebuilt the skeleton")
	}
	b.Configure('b', 300, 400)
	if len(b.points) == 0 {
		t.Fatalf("rebinding to a new letter must rebuild the skeleton")
	}
}
