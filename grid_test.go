package textel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlank(t *testing.T) {
	g := Blank(45, 20)

	assert.Equal(t, 45, g.Width())
	assert.Equal(t, 20, g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, Cell{Glyph: EmptyGlyph, Color: [3]uint8{0, 0, 0}}, g.At(x, y))
		}
	}
}

func TestBlankInvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { Blank(0, 20) })
	assert.Panics(t, func() { Blank(45, 0) })
	assert.Panics(t, func() { Blank(-1, 20) })
}

func TestSetAt(t *testing.T) {
	g := Blank(3, 2)
	c := Cell{Glyph: BlockGlyph, Color: [3]uint8{10, 20, 30}}

	g.Set(2, 1, c)

	assert.Equal(t, c, g.At(2, 1))
	assert.Equal(t, Cell{Glyph: EmptyGlyph}, g.At(0, 0))
}

func TestOutOfRange(t *testing.T) {
	g := Blank(3, 2)

	assert.Panics(t, func() { g.At(-1, 0) })
	assert.Panics(t, func() { g.At(3, 0) })
	assert.Panics(t, func() { g.At(0, 2) })
	assert.Panics(t, func() { g.Set(0, -1, Cell{}) })
	assert.Panics(t, func() { g.Set(3, 1, Cell{}) })
}

func TestEqual(t *testing.T) {
	a := Blank(3, 2)
	b := Blank(3, 2)

	assert.True(t, a.Equal(b))

	b.Set(1, 1, Cell{Glyph: BlockGlyph, Color: [3]uint8{1, 2, 3}})
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(Blank(2, 3)))
}
