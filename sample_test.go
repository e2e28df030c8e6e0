package textel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestSampleUniform(t *testing.T) {
	img := uniformImage(30, 30, color.RGBA{R: 12, G: 200, B: 3, A: 255})

	g, err := Sample(img, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())

	// Averaging 9 identical samples is lossless.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, Cell{Glyph: BlockGlyph, Color: [3]uint8{12, 200, 3}}, g.At(x, y))
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	img := gradientImage(97, 53)

	first, err := Sample(img, 31, 17)
	require.NoError(t, err)
	second, err := Sample(img, 31, 17)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestSampleExactSize(t *testing.T) {
	// A source of exactly the grid's size has a ratio of 1 on both axes,
	// so every cell reads a single pixel 9 times over.
	img := gradientImage(4, 3)

	g, err := Sample(img, 4, 3)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r, gr, b, _ := img.RGBAAt(x, y).RGBA()
			expected := [3]uint8{uint8(r >> 8), uint8(gr >> 8), uint8(b >> 8)}
			assert.Equal(t, Cell{Glyph: BlockGlyph, Color: expected}, g.At(x, y))
		}
	}
}

func TestSampleTooSmall(t *testing.T) {
	img := uniformImage(4, 3, color.RGBA{A: 255})

	_, err := Sample(img, 5, 3)
	assert.Error(t, err)

	_, err = Sample(img, 4, 4)
	assert.Error(t, err)
}

func TestSampleInvalidDimensions(t *testing.T) {
	img := uniformImage(4, 3, color.RGBA{A: 255})

	_, err := Sample(img, 0, 3)
	assert.Error(t, err)

	_, err = Sample(img, 4, -1)
	assert.Error(t, err)
}

func TestSampleCheckerboard(t *testing.T) {
	// 90x60 down to 45x20 gives a 2x3 pixel footprint per cell. A
	// checkerboard of blocks aligned to those footprints must survive
	// sampling exactly, alternating pure black and white cells.
	img := image.NewRGBA(image.Rect(0, 0, 90, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 90; x++ {
			if (x/2+y/3)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}

	g, err := Sample(img, 45, 20)
	require.NoError(t, err)

	for y := 0; y < 20; y++ {
		for x := 0; x < 45; x++ {
			expected := [3]uint8{0, 0, 0}
			if (x+y)%2 == 1 {
				expected = [3]uint8{255, 255, 255}
			}
			assert.Equal(t, expected, g.At(x, y).Color, "cell (%d, %d)", x, y)
		}
	}
}

func TestSampleOffsetBounds(t *testing.T) {
	// Sub-images have bounds that do not start at the origin.
	img := uniformImage(40, 40, color.RGBA{R: 7, G: 77, B: 177, A: 255})
	sub := img.SubImage(image.Rect(10, 10, 40, 40))

	g, err := Sample(sub, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, [3]uint8{7, 77, 177}, g.At(9, 9).Color)
}
