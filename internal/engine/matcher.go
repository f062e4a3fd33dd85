package engine

import (
	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
	"github.com/benjaminbelloeil/CursiveWorld/internal/letters"
)

const (
	// CheckpointRadius is the maximum distance from a checkpoint
	// before a sample is judged to have touched it.
	CheckpointRadius = 50.0

	// minInkSamples gates progress matching: drawings with fewer total
	// samples are ignored so a single tap cannot register progress.
	minInkSamples = 10

	// retouchBehind and retouchAhead bound the out-of-order touch
	// window [next-retouchBehind, next+retouchAhead). Tunable; the
	// prerequisite rule (index 0 or predecessor touched) must hold
	// for any window size.
	retouchBehind = 2
	retouchAhead  = 2
)

// ProgressMatcher advances a next-required-checkpoint pointer through
// the active stroke as samples land near checkpoints, with bounded
// reordering tolerance for jittery input.
type ProgressMatcher struct {
	letter rune
	width  float64
	height float64

	strokes     []letters.Stroke
	strokeIndex int
	touched     map[int]struct{}
	segment     int
	progress    float64
	completed   bool
}

// Setup binds the matcher to a letter scaled to the canvas and resets
// all session state.
func (m *ProgressMatcher) Setup(letter rune, width, height float64) {
	m.letter = letter
	m.width = width
	m.height = height
	m.strokes = letters.StrokesFor(letter)
	m.Reset()
}

// Reset returns the matcher to the first stroke with no touches. The
// bound letter and canvas size are kept.
func (m *ProgressMatcher) Reset() {
	m.strokeIndex = 0
	m.touched = map[int]struct{}{}
	m.segment = -1
	m.progress = 0
	m.completed = false
}

// CheckProgress feeds a full drawing snapshot through the matcher and
// reports whether the letter just completed. Once completed the
// matcher is latched: further calls change nothing and return false,
// so a finished drawing cannot re-signal completion.
func (m *ProgressMatcher) CheckProgress(d Drawing) bool {
	if m.completed || len(m.strokes) == 0 || m.width <= 0 || m.height <= 0 {
		return false
	}
	if d.SampleCount() < minInkSamples {
		return false
	}

	checkpoints := m.strokes[m.strokeIndex].Points
	for _, stroke := range d.Strokes {
		for _, sample := range stroke.Samples {
			m.matchSample(sample.Pos, checkpoints)
		}
	}

	if len(checkpoints) > 0 {
		m.progress = float64(len(m.touched)) / float64(len(checkpoints))
	}
	if len(m.touched) < len(checkpoints) {
		return false
	}

	if m.strokeIndex+1 < len(m.strokes) {
		m.strokeIndex++
		m.touched = map[int]struct{}{}
		m.segment = -1
		m.progress = 0
		return false
	}
	m.completed = true
	return true
}

// matchSample marks any checkpoint the sample touches. The primary
// path is strict in-order progression on the next required index; the
// clipped window around it tolerates samples that skip or overshoot a
// checkpoint, but an index is never touched ahead of an untouched
// predecessor.
func (m *ProgressMatcher) matchSample(p geom.Point, checkpoints []letters.Checkpoint) {
	next := len(m.touched)
	if next < len(checkpoints) && m.near(p, checkpoints[next]) {
		m.touched[next] = struct{}{}
		m.segment = next
	}

	lo := next - retouchBehind
	if lo < 0 {
		lo = 0
	}
	hi := next + retouchAhead
	if hi > len(checkpoints) {
		hi = len(checkpoints)
	}
	for i := lo; i < hi; i++ {
		if _, ok := m.touched[i]; ok {
			continue
		}
		if !m.near(p, checkpoints[i]) {
			continue
		}
		if i == 0 {
			m.touched[i] = struct{}{}
			continue
		}
		if _, ok := m.touched[i-1]; ok {
			m.touched[i] = struct{}{}
		}
	}
}

func (m *ProgressMatcher) near(p geom.Point, cp letters.Checkpoint) bool {
	return p.Distance(cp.At(m.width, m.height)) <= CheckpointRadius
}

// StrokeIndex returns the index of the active stroke.
func (m *ProgressMatcher) StrokeIndex() int {
	return m.strokeIndex
}

// StrokeCount returns the number of strokes in the bound letter.
func (m *ProgressMatcher) StrokeCount() int {
	return len(m.strokes)
}

// TouchedCount returns how many checkpoints of the active stroke have
// been confirmed touched.
func (m *ProgressMatcher) TouchedCount() int {
	return len(m.touched)
}

// Progress returns the touched fraction of the active stroke.
func (m *ProgressMatcher) Progress() float64 {
	return m.progress
}

// Completed reports the sticky letter-completion latch.
func (m *ProgressMatcher) Completed() bool {
	return m.completed
}

// NextCheckpoint returns the scaled position of the next required
// checkpoint of the active stroke, for guide rendering. ok is false
// once the letter is complete or the matcher is unbound.
func (m *ProgressMatcher) NextCheckpoint() (geom.Point, bool) {
	if m.completed || len(m.strokes) == 0 {
		return geom.Point{}, false
	}
	checkpoints := m.strokes[m.strokeIndex].Points
	next := len(m.touched)
	if next >= len(checkpoints) {
		return geom.Point{}, false
	}
	return checkpoints[next].At(m.width, m.height), true
}
