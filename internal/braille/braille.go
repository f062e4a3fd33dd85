// Package braille renders dot graphics on the 2x4 braille cell grid.
package braille

// Each terminal cell carries a 2-wide, 4-tall dot matrix addressed by
// the braille pattern block starting at U+2800.

// dotMasks[x][y] is the bit for dot (x,y) within a cell.
var dotMasks = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// FromMask returns the braille rune for a cell's dot mask.
func FromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

// Grid is a dot canvas backed by braille cells.
type Grid struct {
	cells  [][]uint8
	width  int // cells
	height int // cells
}

// NewGrid allocates a grid of the given cell dimensions.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// DotWidth returns the grid width in dots.
func (g *Grid) DotWidth() int { return g.width * 2 }

// DotHeight returns the grid height in dots.
func (g *Grid) DotHeight() int { return g.height * 4 }

// Set turns on the dot at dot coordinates (x, y). Out-of-range dots
// are ignored.
func (g *Grid) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cy >= g.height || cx >= g.width {
		return
	}
	g.cells[cy][cx] |= dotMasks[x%2][y%4]
}

// Mask returns the dot mask of the cell at cell coordinates (cx, cy).
func (g *Grid) Mask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cy >= g.height || cx >= g.width {
		return 0
	}
	return g.cells[cy][cx]
}

// Line draws a dot line from (x0, y0) to (x1, y1) in dot coordinates
// using Bresenham's algorithm, invoking plot for every dot. A nil
// plot sets dots on the grid directly.
func (g *Grid) Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	if plot == nil {
		plot = g.Set
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
