package textel

import (
	"bufio"
	"fmt"
	"io"
)

const sgrReset = "\x1b[0m"

// Renderer writes grids to a character-cell surface as ANSI escape
// sequences: each cell's stored color becomes a direct 24-bit foreground,
// over one shared background color, with a reset at the end of every row so
// color never bleeds into whatever follows.
//
// A Renderer holds no state between calls, so the same grid can be rendered
// repeatedly, for example on redraw.
type Renderer struct {
	// Background is the shared background color. The zero value is black.
	Background [3]uint8

	// Palette, when non-nil, replaces direct-color sequences with indexed
	// ones, mapping every color to its nearest palette entry. For
	// terminals without true-color support.
	Palette *Palette
}

// Render writes the grid at the surface's current write position, one line
// per grid row. The only failure mode is a write error from the underlying
// surface, which is returned as-is; the grid itself is never modified.
func (r Renderer) Render(g *Grid, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for y := 0; y < g.height; y++ {
		r.writeRow(bw, g, y)
		bw.WriteString(sgrReset)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// RenderAt writes the grid anchored at the given zero-based column and row of
// the surface, advancing one row per grid row beneath the anchor. It moves
// the cursor explicitly instead of emitting newlines, so it can draw over an
// existing screen region.
func (r Renderer) RenderAt(g *Grid, w io.Writer, col, row int) error {
	bw := bufio.NewWriter(w)

	for y := 0; y < g.height; y++ {
		// Cursor positioning is 1-based.
		fmt.Fprintf(bw, "\x1b[%d;%dH", row+y+1, col+1)
		r.writeRow(bw, g, y)
		bw.WriteString(sgrReset)
	}

	return bw.Flush()
}

// writeRow arms the shared background, then writes each cell's foreground
// and glyph. The reset at the end of every row clears the background too, so
// the next row re-arms it.
func (r Renderer) writeRow(bw *bufio.Writer, g *Grid, y int) {
	if r.Palette != nil {
		fmt.Fprintf(bw, "\x1b[48;5;%dm", r.Palette.Index(r.Background))
	} else {
		fmt.Fprintf(bw, "\x1b[48;2;%d;%d;%dm", r.Background[0], r.Background[1], r.Background[2])
	}

	for x := 0; x < g.width; x++ {
		c := g.cells[y*g.width+x]
		if r.Palette != nil {
			fmt.Fprintf(bw, "\x1b[38;5;%dm", r.Palette.Index(c.Color))
		} else {
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm", c.Color[0], c.Color[1], c.Color[2])
		}
		bw.WriteRune(c.Glyph)
	}
}
