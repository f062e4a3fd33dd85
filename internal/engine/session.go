package engine

import "github.com/benjaminbelloeil/CursiveWorld/internal/geom"

// Update is the outcome of one drawing-changed event.
type Update struct {
	OutOfBounds     bool
	ViolationAt     geom.Point
	StrokeAdvanced  bool
	StrokeIndex     int
	Progress        float64
	LetterCompleted bool
}

// Session orchestrates the boundary detector and the progress matcher
// for one active letter practice. One event is handled at a time;
// the session is never shared across goroutines.
type Session struct {
	letter rune
	width  float64
	height float64

	boundary BoundaryDetector
	matcher  ProgressMatcher
}

// NewSession returns a session bound to a letter and canvas size.
func NewSession(letter rune, width, height float64) *Session {
	s := &Session{}
	s.Setup(letter, width, height)
	return s
}

// Setup fully reinitializes both detectors for a letter and canvas
// size. Must be called whenever the letter or canvas changes; no
// state leaks across setups.
func (s *Session) Setup(letter rune, width, height float64) {
	s.letter = letter
	s.width = width
	s.height = height
	s.boundary.Configure(letter, width, height)
	s.boundary.Reset()
	s.matcher.Setup(letter, width, height)
}

// Reset clears all session progress and transient flags, keeping the
// bound letter and canvas size.
func (s *Session) Reset() {
	s.boundary.Reset()
	s.matcher.Reset()
}

// Observe handles one drawing-changed event. The boundary detector
// runs first: a violating batch reports out-of-bounds and never
// reaches the matcher, so a stray stroke cannot also register
// checkpoint progress.
func (s *Session) Observe(d Drawing) Update {
	s.boundary.Reset()
	if s.boundary.EvaluateBatch(d) {
		return Update{
			OutOfBounds: true,
			ViolationAt: s.boundary.ViolationPoint(),
			StrokeIndex: s.matcher.StrokeIndex(),
			Progress:    s.matcher.Progress(),
		}
	}

	before := s.matcher.StrokeIndex()
	completed := s.matcher.CheckProgress(d)
	return Update{
		StrokeAdvanced:  s.matcher.StrokeIndex() != before,
		StrokeIndex:     s.matcher.StrokeIndex(),
		Progress:        s.matcher.Progress(),
		LetterCompleted: completed,
	}
}

// Letter returns the bound letter.
func (s *Session) Letter() rune {
	return s.letter
}

// StrokeIndex returns the active stroke index.
func (s *Session) StrokeIndex() int {
	return s.matcher.StrokeIndex()
}

// StrokeCount returns the stroke count of the bound letter.
func (s *Session) StrokeCount() int {
	return s.matcher.StrokeCount()
}

// Progress returns the touched fraction of the active stroke.
func (s *Session) Progress() float64 {
	return s.matcher.Progress()
}

// NextCheckpoint returns the next required checkpoint position.
func (s *Session) NextCheckpoint() (geom.Point, bool) {
	return s.matcher.NextCheckpoint()
}

// Completed reports the sticky letter-completion latch.
func (s *Session) Completed() bool {
	return s.matcher.Completed()
}

// OutOfBounds reports whether the last observed batch violated the
// tolerance band. Not sticky; recomputed per batch.
func (s *Session) OutOfBounds() bool {
	return s.boundary.OutOfBounds()
}
