package letters

import "testing"

func TestStrokesForAllSupported(t *testing.T) {
	supported := Supported()
	if len(supported) != 52 {
		t.Fatalf("expected 52 supported letters, got %d", len(supported))
	}
	for _, letter := range supported {
		strokes := StrokesFor(letter)
		if len(strokes) == 0 {
			t.Fatalf("letter %q has no strokes", letter)
		}
		for i, stroke := range strokes {
			if stroke.Number != i+1 {
				t.Fatalf("letter %q stroke %d has number %d", letter, i, stroke.Number)
			}
			if len(stroke.Points) == 0 {
				t.Fatalf("letter %q stroke %d is empty", letter, stroke.Number)
			}
			if !stroke.Points[0].Start {
				t.Fatalf("letter %q stroke %d first checkpoint not marked start", letter, stroke.Number)
			}
			for _, cp := range stroke.Points {
				if cp.X < 0 || cp.X > 1 || cp.Y < 0 || cp.Y > 1 {
					t.Fatalf("letter %q checkpoint (%v,%v) outside unit square", letter, cp.X, cp.Y)
				}
			}
		}
	}
}

func TestStrokesForUnsupportedFallsBack(t *testing.T) {
	strokes := StrokesFor('?')
	if len(strokes) != 1 {
		t.Fatalf("expected single fallback stroke, got %d", len(strokes))
	}
	if len(strokes[0].Points) == 0 {
		t.Fatalf("fallback stroke is empty")
	}
	if IsSupported('?') {
		t.Fatalf("'?' should not be supported")
	}
}

func TestLetterAHasElevenCheckpoints(t *testing.T) {
	strokes := StrokesFor('a')
	if len(strokes) != 1 {
		t.Fatalf("expected single stroke for 'a', got %d", len(strokes))
	}
	if got := len(strokes[0].Points); got != 11 {
		t.Fatalf("expected 11 checkpoints for 'a', got %d", got)
	}
}

func TestMultiStrokeLetters(t *testing.T) {
	for _, letter := range []rune{'i', 'j', 't', 'x', 'F', 'H', 'K', 'T', 'X'} {
		if got := len(StrokesFor(letter)); got < 2 {
			t.Fatalf("expected multiple strokes for %q, got %d", letter, got)
		}
	}
}

func TestPathForScalesAndSmooths(t *testing.T) {
	paths := PathFor('t', 300, 400)
	if len(paths) != 2 {
		t.Fatalf("expected 2 stroke paths for 't', got %d", len(paths))
	}
	for si, path := range paths {
		if len(path) < len(StrokesFor('t')[si].Points) {
			t.Fatalf("smoothed path shorter than checkpoint list")
		}
		for _, p := range path {
			if p.X < 0 || p.X > 300 || p.Y < 0 || p.Y > 400 {
				t.Fatalf("path point %v outside canvas", p)
			}
		}
	}
	// Endpoints stay pinned to the first and last checkpoints.
	stroke := StrokesFor('t')[0]
	first := stroke.Points[0].At(300, 400)
	last := stroke.Points[len(stroke.Points)-1].At(300, 400)
	if paths[0][0].Distance(first) > 1e-9 {
		t.Fatalf("path does not start at first checkpoint")
	}
	if paths[0][len(paths[0])-1].Distance(last) > 1e-9 {
		t.Fatalf("path does not end at last checkpoint")
	}
}
