package textel

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrGridTruncated is returned by UnmarshalJSON when the data contains fewer
// rows than the grid's height. The rows that were present are loaded and the
// remainder stay blank, so callers may treat this as recoverable or discard
// the grid and substitute a blank one.
var ErrGridTruncated = errors.New("textel: grid data has fewer rows than expected")

// cellJSON is the persisted form of a single cell. The shape is part of the
// collection file format and must stay stable. Color is a plain int slice
// rather than a byte slice so it encodes as an array of numbers, not base64.
type cellJSON struct {
	Glyph string `json:"glyph"`
	Color []int  `json:"color"`
}

// MarshalJSON encodes the grid as an array of height rows, each an array of
// width cells.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]cellJSON, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]cellJSON, g.width)
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			row[x] = cellJSON{
				Glyph: string(c.Glyph),
				Color: []int{int(c.Color[0]), int(c.Color[1]), int(c.Color[2])},
			}
		}
		rows[y] = row
	}

	return json.Marshal(rows)
}

// UnmarshalJSON decodes rows into the grid's existing dimensions, so the
// target must be constructed first (typically with Blank). Any row that does
// not contain exactly width cells, or any cell whose glyph is not a single
// character or whose color is not three channels, is a structural decode
// error and the grid is left unchanged. Fewer rows than the grid's height
// loads the rows present and returns ErrGridTruncated.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]cellJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("textel: invalid grid data: %w", err)
	}

	if len(rows) > g.height {
		return fmt.Errorf("textel: grid data has %d rows, expected at most %d",
			len(rows), g.height)
	}

	cells := make([]Cell, g.width*g.height)
	for i := range cells {
		cells[i] = Cell{Glyph: EmptyGlyph}
	}

	for y, row := range rows {
		if len(row) != g.width {
			return fmt.Errorf("textel: row %d has %d cells, expected %d",
				y, len(row), g.width)
		}

		for x, c := range row {
			if utf8.RuneCountInString(c.Glyph) != 1 {
				return fmt.Errorf("textel: row %d cell %d has glyph %q, expected a single character",
					y, x, c.Glyph)
			}
			if len(c.Color) != 3 {
				return fmt.Errorf("textel: row %d cell %d has %d color channels, expected 3",
					y, x, len(c.Color))
			}
			for _, channel := range c.Color {
				if channel < 0 || channel > 255 {
					return fmt.Errorf("textel: row %d cell %d has color channel %d out of range",
						y, x, channel)
				}
			}

			glyph, _ := utf8.DecodeRuneInString(c.Glyph)
			cells[y*g.width+x] = Cell{
				Glyph: glyph,
				Color: [3]uint8{uint8(c.Color[0]), uint8(c.Color[1]), uint8(c.Color[2])},
			}
		}
	}

	g.cells = cells

	if len(rows) < g.height {
		return ErrGridTruncated
	}

	return nil
}
