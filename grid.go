package textel

import "fmt"

// Glyphs used by the conversion engine. Cells are general and may hold any
// glyph, but the sampler only ever emits full blocks and the blank
// constructor only ever emits spaces.
const (
	BlockGlyph = '█'
	EmptyGlyph = ' '
)

// Cell is a single grid position's visual content: one display glyph and its
// foreground color as 8-bit RGB channels.
type Cell struct {
	Glyph rune
	Color [3]uint8
}

// Grid is a fixed-size two-dimensional array of Cells, row-major with the
// origin at the top left. Dimensions are fixed at construction and the grid
// is never resized afterwards.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// Blank returns a w by h grid where every cell is an empty glyph with black
// color. It panics if either dimension is not positive.
func Blank(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("textel: Blank: invalid grid dimensions %dx%d", w, h))
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Cell, w*h),
	}

	for i := range g.cells {
		g.cells[i] = Cell{Glyph: EmptyGlyph}
	}

	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at column x, row y. It panics if the position is
// outside the grid.
func (g *Grid) At(x, y int) Cell {
	g.check(x, y)
	return g.cells[y*g.width+x]
}

// Set replaces the cell at column x, row y. It panics if the position is
// outside the grid.
func (g *Grid) Set(x, y int, c Cell) {
	g.check(x, y)
	g.cells[y*g.width+x] = c
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("textel: position (%d, %d) out of range of %dx%d grid",
			x, y, g.width, g.height))
	}
}

// Equal reports whether two grids have the same dimensions and identical
// cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}

	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}

	return true
}
