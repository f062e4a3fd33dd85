// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"

	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
	"github.com/benjaminbelloeil/CursiveWorld/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Practices         []model.PracticeAggregate
	WindowPracticeIDs []int64
	LetterAggsAll     []model.LetterAggregate
	LetterAggsWindow  []model.LetterAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	practices, err := st.ListPractices(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(practices) > cfg.Last {
		practices = practices[len(practices)-cfg.Last:]
	}

	allIDs := practiceIDs(practices)
	windowIDs := lastPracticeIDs(practices, cfg.CurveWindow)
	letterAggsAll, err := st.ListLetterAggregatesForPractices(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	letterAggsWindow, err := st.ListLetterAggregatesForPractices(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Practices:         practices,
		WindowPracticeIDs: windowIDs,
		LetterAggsAll:     letterAggsAll,
		LetterAggsWindow:  letterAggsWindow,
	}, nil
}

func practiceIDs(practices []model.PracticeAggregate) []int64 {
	ids := make([]int64, len(practices))
	for i, p := range practices {
		ids[i] = p.PracticeID
	}
	return ids
}

func lastPracticeIDs(practices []model.PracticeAggregate, window int) []int64 {
	if window <= 0 || len(practices) <= window {
		return practiceIDs(practices)
	}
	return practiceIDs(practices[len(practices)-window:])
}
