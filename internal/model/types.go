// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Letters    string
	Shuffle    bool
	ShowGuides bool
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Letter      string
	Since       *time.Time
	Last        int
	CurveWindow int
	Letters     string
}

// PracticeStats captures one finished letter practice.
type PracticeStats struct {
	StartedAt    time.Time
	EndedAt      time.Time
	Letter       string
	Completed    bool
	Violations   int
	Resets       int
	StrokeCount  int
	CanvasWidth  int
	CanvasHeight int
	DurationMs   int64
}

// LetterAggregate aggregates practice outcomes per letter.
type LetterAggregate struct {
	Letter      string
	Attempts    int
	Completions int
	Violations  int
	DurationMs  int64
}

// PracticeAggregate summarizes a practice for reporting.
type PracticeAggregate struct {
	PracticeID int64
	EndedAt    time.Time
	Letter     string
	Completed  bool
	Violations int
	DurationMs int64
}
