package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
	"github.com/benjaminbelloeil/CursiveWorld/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return st
}

func insertPractices(t *testing.T, st *store.Store, n int, letter string, completedEvery int) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		started := base.Add(time.Duration(i) * time.Minute)
		_, err := st.InsertPractice(ctx, model.PracticeStats{
			StartedAt:   started,
			EndedAt:     started.Add(20 * time.Second),
			Letter:      letter,
			Completed:   completedEvery > 0 && i%completedEvery == 0,
			Violations:  i % 3,
			StrokeCount: 1,
			CanvasWidth: 300, CanvasHeight: 400,
			DurationMs: 20000,
		})
		if err != nil {
			t.Fatalf("InsertPractice: %v", err)
		}
	}
}

func TestBuildReport(t *testing.T) {
	st := openTestStore(t)
	insertPractices(t, st, 6, "a", 2)
	insertPractices(t, st, 2, "b", 1)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{CurveWindow: 4})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Practices) != 8 {
		t.Errorf("practices = %d, want 8", len(report.Practices))
	}
	if len(report.WindowPracticeIDs) != 4 {
		t.Errorf("window ids = %d, want 4", len(report.WindowPracticeIDs))
	}
	if len(report.LetterAggsAll) != 2 {
		t.Errorf("letter aggregates = %d, want 2", len(report.LetterAggsAll))
	}
	for _, agg := range report.LetterAggsAll {
		switch agg.Letter {
		case "a":
			if agg.Attempts != 6 || agg.Completions != 3 {
				t.Errorf("a: attempts=%d completions=%d", agg.Attempts, agg.Completions)
			}
		case "b":
			if agg.Attempts != 2 || agg.Completions != 2 {
				t.Errorf("b: attempts=%d completions=%d", agg.Attempts, agg.Completions)
			}
		default:
			t.Errorf("unexpected letter %q", agg.Letter)
		}
	}
}

func TestBuildReportLastLimit(t *testing.T) {
	st := openTestStore(t)
	insertPractices(t, st, 5, "c", 1)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{Last: 2, CurveWindow: 10})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Practices) != 2 {
		t.Errorf("practices = %d, want 2", len(report.Practices))
	}
	if len(report.WindowPracticeIDs) != 2 {
		t.Errorf("window ids = %d, want 2", len(report.WindowPracticeIDs))
	}
	// The kept practices must be the newest two.
	if !report.Practices[0].EndedAt.Before(report.Practices[1].EndedAt) {
		t.Error("practices should stay in chronological order")
	}
}

func TestBuildReportLetterFilter(t *testing.T) {
	st := openTestStore(t)
	insertPractices(t, st, 3, "a", 1)
	insertPractices(t, st, 3, "b", 1)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{Letter: "a"})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Practices) != 3 {
		t.Fatalf("practices = %d, want 3", len(report.Practices))
	}
	for _, p := range report.Practices {
		if p.Letter != "a" {
			t.Errorf("unexpected letter %q", p.Letter)
		}
	}
}

func TestBuildReportEmptyStore(t *testing.T) {
	st := openTestStore(t)
	report, err := BuildReport(context.Background(), st, model.StatsConfig{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Practices) != 0 || len(report.LetterAggsAll) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
