package engine

import (
	"testing"
	"time"

	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
	"github.com/benjaminbelloeil/CursiveWorld/internal/letters"
)

// drawingOf builds a single-pen-stroke drawing from points.
func drawingOf(points ...geom.Point) Drawing {
	return drawingOfStrokes(points)
}

func drawingOfStrokes(strokes ...[]geom.Point) Drawing {
	var d Drawing
	at := time.Unix(0, 0)
	for _, points := range strokes {
		var ps PenStroke
		for _, p := range points {
			ps.Samples = append(ps.Samples, Sample{Pos: p, At: at})
			at = at.Add(10 * time.Millisecond)
		}
		d.Strokes = append(d.Strokes, ps)
	}
	return d
}

// scaledCheckpoints returns the checkpoint positions of one stroke of
// a letter at the given canvas size.
func scaledCheckpoints(letter rune, strokeIdx int, w, h float64) []geom.Point {
	stroke := letters.StrokesFor(letter)[strokeIdx]
	out := make([]geom.Point, len(stroke.Points))
	for i, cp := range stroke.Points {
		out[i] = cp.At(w, h)
	}
	return out
}

// fillerAt returns n copies of p, used to satisfy the minimum-ink
// gate without touching any checkpoint.
func fillerAt(p geom.Point, n int) []geom.Point {
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = p
	}
	return out
}

// fallbackFiller sits 65 units from the fallback diagonal's first
// checkpoint at 300x400: inside the tolerance band, outside the
// checkpoint radius.
func fallbackFiller(n int) []geom.Point {
	return fillerAt(geom.Pt(21, 132), n)
}

// stemFiller sits 65 units below the 't' stem's first checkpoint at
// 600x800, likewise in bounds but off every checkpoint.
func stemFiller(n int) []geom.Point {
	return fillerAt(geom.Pt(192, 561), n)
}

// The fallback diagonal has four checkpoints 100 units apart at
// 300x400, comfortably beyond the 50-unit radius, which makes
// touch ordering fully controllable in tests.
func fallbackCheckpoints() []geom.Point {
	return scaledCheckpoints('?', 0, 300, 400)
}

func TestCheckProgressOrderedTouch(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	points := append(fallbackFiller(7), cps[0], cps[1], cps[2])
	if m.CheckProgress(drawingOf(points...)) {
		t.Fatalf("letter should not complete with final checkpoint missing")
	}
	if got := m.TouchedCount(); got != 3 {
		t.Fatalf("expected 3 touched checkpoints, got %d", got)
	}
}

func TestCheckProgressSkipTolerance(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	// Visits 0, 1, then 3 while 2 is unmet: 3 must stay untouched.
	points := append(fallbackFiller(7), cps[0], cps[1], cps[3])
	if m.CheckProgress(drawingOf(points...)) {
		t.Fatalf("letter should not complete")
	}
	if got := m.TouchedCount(); got != 2 {
		t.Fatalf("expected checkpoints 0 and 1 only, got %d touched", got)
	}
}

func TestCheckProgressMinimumInkGate(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	// Nine samples sitting right on checkpoints must not register.
	points := []geom.Point{
		cps[0], cps[0], cps[0], cps[1], cps[1], cps[1], cps[2], cps[2], cps[3],
	}
	if m.CheckProgress(drawingOf(points...)) {
		t.Fatalf("gated batch must not complete")
	}
	if m.TouchedCount() != 0 {
		t.Fatalf("gated batch must not mutate state, got %d touched", m.TouchedCount())
	}
	if m.Progress() != 0 {
		t.Fatalf("gated batch must not change progress, got %v", m.Progress())
	}
}

func TestCheckProgressCompletionLatch(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	points := append(fallbackFiller(6), cps...)
	d := drawingOf(points...)
	if !m.CheckProgress(d) {
		t.Fatalf("expected completion")
	}
	if !m.Completed() {
		t.Fatalf("completion latch not set")
	}

	// Re-feeding the same drawing never re-signals or mutates.
	idx, touched := m.StrokeIndex(), m.TouchedCount()
	if m.CheckProgress(d) {
		t.Fatalf("latched matcher must not re-signal completion")
	}
	if m.StrokeIndex() != idx || m.TouchedCount() != touched {
		t.Fatalf("latched matcher mutated state")
	}
	if !m.Completed() {
		t.Fatalf("completion latch cleared")
	}
}

func TestCheckProgressMonotonicity(t *testing.T) {
	var m ProgressMatcher
	m.Setup('t', 600, 800)

	stem := scaledCheckpoints('t', 0, 600, 800)
	prevTouched, prevStroke := 0, 0
	for i := range stem {
		d := drawingOf(append(stemFiller(9), stem[:i+1]...)...)
		m.CheckProgress(d)
		if m.StrokeIndex() < prevStroke {
			t.Fatalf("stroke index decreased")
		}
		if m.StrokeIndex() == prevStroke && m.TouchedCount() < prevTouched {
			t.Fatalf("touched count decreased within a stroke")
		}
		prevTouched, prevStroke = m.TouchedCount(), m.StrokeIndex()
	}
}

func TestCheckProgressLetterAEndToEnd(t *testing.T) {
	var m ProgressMatcher
	m.Setup('a', 300, 400)

	cps := scaledCheckpoints('a', 0, 300, 400)
	if len(cps) != 11 {
		t.Fatalf("expected 11 checkpoints for 'a', got %d", len(cps))
	}
	if !m.CheckProgress(drawingOf(cps...)) {
		t.Fatalf("tracing all 11 checkpoints in order must complete the letter")
	}
	if m.StrokeIndex() != 0 {
		t.Fatalf("'a' has a single stroke; index must stay 0, got %d", m.StrokeIndex())
	}
	if !m.Completed() {
		t.Fatalf("completion latch not set")
	}
}

func TestCheckProgressLetterTTwoStrokes(t *testing.T) {
	var m ProgressMatcher
	m.Setup('t', 600, 800)
	stem := scaledCheckpoints('t', 0, 600, 800)
	cross := scaledCheckpoints('t', 1, 600, 800)

	// A partial stem must not advance the stroke index.
	if m.CheckProgress(drawingOf(append(stemFiller(7), stem[:3]...)...)) {
		t.Fatalf("partial stem must not complete")
	}
	if m.StrokeIndex() != 0 {
		t.Fatalf("stroke advanced before stem was covered")
	}

	m.Reset()
	if m.CheckProgress(drawingOfStrokes(append(stemFiller(2), stem...))) {
		t.Fatalf("stem alone must not complete the letter")
	}
	if m.StrokeIndex() != 1 {
		t.Fatalf("expected advance to the crossbar, got stroke %d", m.StrokeIndex())
	}
	if m.TouchedCount() != 0 {
		t.Fatalf("touched set not reset on stroke advance")
	}

	full := drawingOfStrokes(append(stemFiller(2), stem...), cross)
	if !m.CheckProgress(full) {
		t.Fatalf("covering both strokes must complete the letter")
	}
	if m.StrokeIndex() != 1 {
		t.Fatalf("stroke index must stay on the last stroke, got %d", m.StrokeIndex())
	}
}

func TestCheckProgressProgressFraction(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	m.CheckProgress(drawingOf(append(fallbackFiller(8), cps[0], cps[1])...))
	if got := m.Progress(); got != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", got)
	}
}

func TestNextCheckpointGuides(t *testing.T) {
	var m ProgressMatcher
	m.Setup('?', 300, 400)
	cps := fallbackCheckpoints()

	p, ok := m.NextCheckpoint()
	if !ok || p != cps[0] {
		t.Fatalf("expected first checkpoint as guide, got %v ok=%v", p, ok)
	}
	m.CheckProgress(drawingOf(append(fallbackFiller(9), cps[0])...))
	p, ok = m.NextCheckpoint()
	if !ok || p != cps[1] {
		t.Fatalf("expected second checkpoint as guide, got %v ok=%v", p, ok)
	}
	m.CheckProgress(drawingOf(append(fallbackFiller(6), cps...)...))
	if _, ok := m.NextCheckpoint(); ok {
		t.Fatalf("completed letter must not offer a next checkpoint")
	}
}
