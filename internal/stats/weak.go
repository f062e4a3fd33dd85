package stats

import (
	"sort"

	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
)

// SelectWeakLetters selects the lowest-completion-rate letters from
// aggregates.
func SelectWeakLetters(aggs []model.LetterAggregate, top int) map[rune]struct{} {
	weakSet := map[rune]struct{}{}
	if len(aggs) == 0 {
		return weakSet
	}
	candidates := make([]model.LetterAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		ri := completionRate(candidates[i])
		rj := completionRate(candidates[j])
		if ri == rj {
			return candidates[i].Letter < candidates[j].Letter
		}
		return ri < rj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		runes := []rune(candidates[i].Letter)
		if len(runes) > 0 {
			weakSet[runes[0]] = struct{}{}
		}
	}
	return weakSet
}

func completionRate(agg model.LetterAggregate) float64 {
	if agg.Attempts == 0 {
		return 1.0
	}
	return float64(agg.Completions) / float64(agg.Attempts)
}
