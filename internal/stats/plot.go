package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/benjaminbelloeil/CursiveWorld/internal/braille"
)

// Series is a named value sequence drawn as one plot line.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 10
	axisLabelWidth    = 8
	fallbackColumns   = 80
)

var seriesColors = []string{
	"\x1b[36m", // cyan
	"\x1b[33m", // yellow
	"\x1b[35m", // magenta
	"\x1b[32m", // green
}

const colorReset = "\x1b[0m"

// PlotWidthFor returns the plot body width that fits a terminal of
// totalWidth columns once the axis label gutter is accounted for.
func PlotWidthFor(totalWidth int) int {
	w := totalWidth - axisLabelWidth - 2
	if w < 16 {
		w = 16
	}
	return w
}

func autoPlotWidth() int {
	cols := fallbackColumns
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if c, _, err := term.GetSize(fd); err == nil && c > 0 {
			cols = c
		}
	}
	return PlotWidthFor(cols)
}

func shouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PlotSeries draws the series as braille line charts, auto-detecting
// terminal width and color support.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, shouldUseColor())
}

// PlotSeriesWithColor draws the series as braille line charts. A
// non-positive width or height selects a default.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, useColor bool) error {
	drawable := series[:0:0]
	for _, s := range series {
		if len(s.Values) > 0 {
			drawable = append(drawable, s)
		}
	}
	if len(drawable) == 0 {
		return nil
	}
	if width <= 0 {
		width = autoPlotWidth()
	}
	if height <= 0 {
		height = defaultPlotHeight
	}

	lo, hi := valueRange(drawable)
	grids := make([]*braille.Grid, len(drawable))
	for i, s := range drawable {
		grids[i] = plotPolyline(s.Values, width, height, lo, hi)
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for cy := 0; cy < height; cy++ {
		var sb strings.Builder
		sb.WriteString(axisLabel(cy, height, lo, hi))
		for cx := 0; cx < width; cx++ {
			sb.WriteString(cellRune(grids, cx, cy, useColor))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	if err := writeLegend(w, drawable, useColor); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// valueRange returns the min and max across all series, padded when
// the data is flat so the line lands mid-plot instead of on an edge.
func valueRange(series []Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		lo -= 1
		hi += 1
	}
	return lo, hi
}

// plotPolyline renders one series onto its own grid so overlapping
// lines keep distinct colors during composition.
func plotPolyline(values []float64, width, height int, lo, hi float64) *braille.Grid {
	grid := braille.NewGrid(width, height)
	dotsW, dotsH := grid.DotWidth(), grid.DotHeight()
	points := resample(values, dotsW)
	prevX, prevY := -1, -1
	for x, v := range points {
		frac := (v - lo) / (hi - lo)
		y := int(math.Round(float64(dotsH-1) * (1 - frac)))
		if y < 0 {
			y = 0
		}
		if y >= dotsH {
			y = dotsH - 1
		}
		if prevX >= 0 {
			grid.Line(prevX, prevY, x, y, nil)
		} else {
			grid.Set(x, y)
		}
		prevX, prevY = x, y
	}
	return grid
}

// resample stretches or shrinks values to n points with linear
// interpolation.
func resample(values []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := range out {
		pos := float64(i) * float64(len(values)-1) / float64(n-1)
		j := int(pos)
		if j >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		t := pos - float64(j)
		out[i] = values[j]*(1-t) + values[j+1]*t
	}
	return out
}

// cellRune composes one cell across all series grids. Later series
// win ties so every legend entry stays visible somewhere.
func cellRune(grids []*braille.Grid, cx, cy int, useColor bool) string {
	mask := uint8(0)
	owner := -1
	for i, g := range grids {
		if m := g.Mask(cx, cy); m != 0 {
			mask |= m
			owner = i
		}
	}
	if mask == 0 {
		return " "
	}
	r := string(braille.FromMask(mask))
	if !useColor || owner < 0 {
		return r
	}
	return seriesColor(owner) + r + colorReset
}

func seriesColor(i int) string {
	return seriesColors[i%len(seriesColors)]
}

// axisLabel prints the range extremes beside the first and last rows.
func axisLabel(row, height int, lo, hi float64) string {
	switch row {
	case 0:
		return fmt.Sprintf("%*.1f ", axisLabelWidth, hi)
	case height - 1:
		return fmt.Sprintf("%*.1f ", axisLabelWidth, lo)
	default:
		return strings.Repeat(" ", axisLabelWidth+1)
	}
}

func writeLegend(w io.Writer, series []Series, useColor bool) error {
	parts := make([]string, len(series))
	for i, s := range series {
		marker := "⣿"
		if useColor {
			marker = seriesColor(i) + marker + colorReset
		}
		parts[i] = fmt.Sprintf("%s %s", marker, s.Name)
	}
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", axisLabelWidth+1), strings.Join(parts, "   "))
	return err
}
