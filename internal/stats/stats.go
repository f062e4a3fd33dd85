// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
)

const sparkChars = " .:-=+*#%@"

// PracticeMetrics computes completion rate and average practice
// duration in seconds.
func PracticeMetrics(completions, attempts int, durationMs int64) (rate, avgSeconds float64) {
	if attempts <= 0 {
		return 0, 0
	}
	rate = float64(completions) / float64(attempts)
	avgSeconds = float64(durationMs) / float64(attempts) / 1000.0
	return rate, avgSeconds
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary table for practices.
func RenderSummary(w io.Writer, practices []model.PracticeAggregate) error {
	if len(practices) == 0 {
		_, err := fmt.Fprintln(w, "No practices found.")
		return err
	}
	completions := 0
	violations := 0
	var totalDuration int64
	letterSet := map[string]struct{}{}
	for _, p := range practices {
		if p.Completed {
			completions++
			letterSet[p.Letter] = struct{}{}
		}
		violations += p.Violations
		totalDuration += p.DurationMs
	}
	rate, avgSec := PracticeMetrics(completions, len(practices), totalDuration)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Practices: %d\n", len(practices)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Completed: %d (%.1f%%)\n", completions, rate*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Letters mastered: %d\n", len(letterSet)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Boundary violations: %d\n", violations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg duration: %.1fs\n", avgSec); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurves prints learning curves for completion rate and duration.
func RenderCurves(w io.Writer, practices []model.PracticeAggregate, window int) error {
	return RenderCurvesWithSize(w, practices, window, 0, 10, false)
}

// RenderCurvesWithSize prints learning curves sized to a given total width.
func RenderCurvesWithSize(w io.Writer, practices []model.PracticeAggregate, window, totalWidth, height int, useColor bool) error {
	if len(practices) == 0 {
		return nil
	}
	rates := make([]float64, len(practices))
	durations := make([]float64, len(practices))
	for i, p := range practices {
		if p.Completed {
			rates[i] = 100
		}
		durations[i] = float64(p.DurationMs) / 1000.0
	}
	rates = MovingAverage(rates, window)
	durations = MovingAverage(durations, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Learning Curves", []Series{
		{Name: "Completion %", Values: rates},
		{Name: "Duration (s)", Values: durations},
	}, width, height, useColor)
}

// RenderLetterTable prints per-letter aggregates, weakest first.
func RenderLetterTable(w io.Writer, aggs []model.LetterAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No letter stats found.")
		return err
	}
	rows := buildLetterRows(aggs)
	if _, err := fmt.Fprintln(w, "Per-Letter (Windowed)"); err != nil {
		return err
	}
	headers := []string{"Letter", "Completion", "Avg Duration (s)", "Attempts", "Violations"}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLetterCurves prints per-letter learning curves.
func RenderLetterCurves(w io.Writer, practices []model.PracticeAggregate, letters []string, window int) error {
	return RenderLetterCurvesWithSize(w, practices, letters, window, 0, 10, false)
}

// RenderLetterCurvesWithSize prints per-letter curves sized to a given total width.
func RenderLetterCurvesWithSize(w io.Writer, practices []model.PracticeAggregate, letters []string, window, totalWidth, height int, useColor bool) error {
	if len(letters) == 0 || len(practices) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Per-Letter Curves"); err != nil {
		return err
	}
	for _, letter := range letters {
		var rates, durations []float64
		for _, p := range practices {
			if p.Letter != letter {
				continue
			}
			rate := 0.0
			if p.Completed {
				rate = 100
			}
			rates = append(rates, rate)
			durations = append(durations, float64(p.DurationMs)/1000.0)
		}
		if len(rates) == 0 {
			continue
		}
		rates = MovingAverage(rates, window)
		durations = MovingAverage(durations, window)
		width := 0
		if totalWidth > 0 {
			width = PlotWidthFor(totalWidth)
		}
		if err := PlotSeriesWithColor(w, fmt.Sprintf("Letter %s", letter), []Series{
			{Name: "Completion %", Values: rates},
			{Name: "Duration (s)", Values: durations},
		}, width, height, useColor); err != nil {
			return err
		}
	}
	return nil
}

func buildLetterRows(aggs []model.LetterAggregate) [][]string {
	type row struct {
		letter     string
		rate       float64
		avgSec     float64
		attempts   int
		violations int
	}
	rows := make([]row, 0, len(aggs))
	for _, agg := range aggs {
		rate, avgSec := PracticeMetrics(agg.Completions, agg.Attempts, agg.DurationMs)
		rows = append(rows, row{
			letter:     agg.Letter,
			rate:       rate,
			avgSec:     avgSec,
			attempts:   agg.Attempts,
			violations: agg.Violations,
		})
	}
	// Sort by lowest completion rate.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].rate == rows[j].rate {
			return rows[i].letter < rows[j].letter
		}
		return rows[i].rate < rows[j].rate
	})

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.letter,
			fmt.Sprintf("%.1f%%", r.rate*100),
			fmt.Sprintf("%.1f", r.avgSec),
			fmt.Sprintf("%d", r.attempts),
			fmt.Sprintf("%d", r.violations),
		})
	}
	return out
}
