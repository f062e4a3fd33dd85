package stats

import (
	"math"
	"strings"
	"testing"
)

func TestPlotWidthFor(t *testing.T) {
	if got := PlotWidthFor(80); got != 70 {
		t.Errorf("PlotWidthFor(80) = %d, want 70", got)
	}
	if got := PlotWidthFor(5); got != 16 {
		t.Errorf("narrow terminals should clamp to 16, got %d", got)
	}
}

func TestResample(t *testing.T) {
	up := resample([]float64{0, 10}, 5)
	if len(up) != 5 {
		t.Fatalf("len = %d, want 5", len(up))
	}
	if up[0] != 0 || up[4] != 10 {
		t.Errorf("endpoints not preserved: %v", up)
	}
	if math.Abs(up[2]-5) > 1e-9 {
		t.Errorf("midpoint = %f, want 5", up[2])
	}

	single := resample([]float64{7}, 3)
	for _, v := range single {
		if v != 7 {
			t.Errorf("single-value resample: %v", single)
			break
		}
	}

	if resample([]float64{1, 2}, 0) != nil {
		t.Error("n = 0 should return nil")
	}
}

func TestValueRangeFlatPadding(t *testing.T) {
	lo, hi := valueRange([]Series{{Name: "x", Values: []float64{3, 3, 3}}})
	if lo >= hi {
		t.Errorf("flat series needs a padded range, got [%f, %f]", lo, hi)
	}
	if lo > 3 || hi < 3 {
		t.Errorf("range must bracket the value: [%f, %f]", lo, hi)
	}
}

func TestPlotSeriesWithColorLayout(t *testing.T) {
	var sb strings.Builder
	series := []Series{
		{Name: "up", Values: []float64{0, 1, 2, 3}},
		{Name: "down", Values: []float64{3, 2, 1, 0}},
	}
	if err := PlotSeriesWithColor(&sb, "Trend", series, 30, 8, false); err != nil {
		t.Fatalf("PlotSeriesWithColor: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// title + 8 plot rows + legend
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), sb.String())
	}
	if lines[0] != "Trend" {
		t.Errorf("title line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "3.0") {
		t.Errorf("top row should carry the max label: %q", lines[1])
	}
	if !strings.Contains(lines[8], "0.0") {
		t.Errorf("bottom row should carry the min label: %q", lines[8])
	}
	if !strings.Contains(lines[9], "up") || !strings.Contains(lines[9], "down") {
		t.Errorf("legend missing series names: %q", lines[9])
	}
	if strings.Contains(sb.String(), "\x1b[") {
		t.Error("useColor=false must not emit escape codes")
	}
}

func TestPlotSeriesWithColorEmitsColor(t *testing.T) {
	var sb strings.Builder
	series := []Series{{Name: "x", Values: []float64{1, 2}}}
	if err := PlotSeriesWithColor(&sb, "", series, 20, 4, true); err != nil {
		t.Fatalf("PlotSeriesWithColor: %v", err)
	}
	if !strings.Contains(sb.String(), "\x1b[") {
		t.Error("useColor=true should emit escape codes")
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var sb strings.Builder
	if err := PlotSeriesWithColor(&sb, "Nothing", []Series{{Name: "empty"}}, 20, 4, false); err != nil {
		t.Fatalf("PlotSeriesWithColor: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("empty series should produce no output, got %q", sb.String())
	}
}
