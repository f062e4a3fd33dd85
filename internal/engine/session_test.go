package engine

import (
	"testing"

	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
)

func TestSessionViolationSkipsMatcher(t *testing.T) {
	s := NewSession('?', 300, 400)
	cps := fallbackCheckpoints()

	// Enough ink to pass the gate, ending on an out-of-bounds sample.
	points := append(fallbackFiller(7), cps[0], cps[1], geom.Pt(290, 10))
	u := s.Observe(drawingOf(points...))
	if !u.OutOfBounds {
		t.Fatalf("expected an out-of-bounds update")
	}
	if u.ViolationAt != geom.Pt(290, 10) {
		t.Fatalf("unexpected violation point %v", u.ViolationAt)
	}
	if u.LetterCompleted || u.StrokeAdvanced {
		t.Fatalf("violating batch must not report progress events")
	}
	if s.Progress() != 0 {
		t.Fatalf("violating batch must not register checkpoint progress")
	}
}

func TestSessionCompletionFlow(t *testing.T) {
	s := NewSession('?', 300, 400)
	cps := fallbackCheckpoints()

	u := s.Observe(drawingOf(append(fallbackFiller(8), cps[0], cps[1])...))
	if u.OutOfBounds || u.LetterCompleted {
		t.Fatalf("unexpected events mid-trace: %+v", u)
	}
	if u.Progress != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", u.Progress)
	}

	u = s.Observe(drawingOf(append(fallbackFiller(6), cps...)...))
	if !u.LetterCompleted {
		t.Fatalf("expected completion")
	}
	if !s.Completed() {
		t.Fatalf("completion latch not visible on the session")
	}

	// Further input on the finished drawing never re-signals.
	u = s.Observe(drawingOf(append(fallbackFiller(6), cps...)...))
	if u.LetterCompleted {
		t.Fatalf("duplicate completion signal")
	}
}

func TestSessionStrokeAdvanceEvent(t *testing.T) {
	s := NewSession('t', 600, 800)
	stem := scaledCheckpoints('t', 0, 600, 800)

	u := s.Observe(drawingOfStrokes(append(stemFiller(2), stem...)))
	if !u.StrokeAdvanced || u.StrokeIndex != 1 {
		t.Fatalf("expected advance to stroke 1, got %+v", u)
	}
	if u.LetterCompleted {
		t.Fatalf("letter must not complete after the stem alone")
	}
	if s.StrokeCount() != 2 {
		t.Fatalf("expected 2 strokes for 't', got %d", s.StrokeCount())
	}
}

func TestSessionOutOfBoundsIsTransient(t *testing.T) {
	s := NewSession('?', 300, 400)
	cps := fallbackCheckpoints()

	s.Observe(drawingOf(cps[0], geom.Pt(290, 10)))
	if !s.OutOfBounds() {
		t.Fatalf("expected the violation flag after a violating batch")
	}
	s.Observe(drawingOf(append(fallbackFiller(9), cps[0])...))
	if s.OutOfBounds() {
		t.Fatalf("violation flag must be recomputed per batch")
	}
}

func TestSessionSetupAndResetClearState(t *testing.T) {
	s := NewSession('?', 300, 400)
	cps := fallbackCheckpoints()
	s.Observe(drawingOf(append(fallbackFiller(8), cps[0], cps[1])...))
	if s.Progress() == 0 {
		t.Fatalf("expected progress before reset")
	}

	s.Reset()
	if s.Progress() != 0 || s.StrokeIndex() != 0 || s.Completed() {
		t.Fatalf("reset left residual state")
	}

	s.Observe(drawingOf(append(fallbackFiller(8), cps[0], cps[1])...))
	s.Setup('a', 300, 400)
	if s.Progress() != 0 || s.StrokeIndex() != 0 || s.Completed() || s.OutOfBounds() {
		t.Fatalf("setup left residual state from the previous letter")
	}
	if s.Letter() != 'a' {
		t.Fatalf("expected rebinding to 'a'")
	}
	if s.StrokeCount() != 1 {
		t.Fatalf("expected stroke count for 'a'")
	}
}
