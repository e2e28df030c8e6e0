package textel

import (
	"fmt"
	"image"
	"image/draw"
)

// Sample converts a decoded image into a w by h grid of full-block cells.
// Each cell's color is the average of 9 samples spread in a fixed 3x3
// pattern over the cell's source region: corners, edge midpoints and center.
// The source must be at least w pixels wide and h pixels tall so that every
// cell maps to at least one pixel; anything smaller is an error. Sampling is
// deterministic, so converting the same image twice yields identical grids.
func Sample(img image.Image, w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("textel: Sample: invalid grid dimensions %dx%d", w, h)
	}

	bounds := img.Bounds()
	rx := bounds.Dx() / w
	ry := bounds.Dy() / h
	if rx < 1 || ry < 1 {
		return nil, fmt.Errorf("textel: Sample: source image %dx%d is smaller than target grid %dx%d",
			bounds.Dx(), bounds.Dy(), w, h)
	}

	// Flatten to RGBA once so sampling reads pixels directly instead of
	// going through the color model for every sample.
	src, ok := img.(*image.RGBA)
	if !ok || bounds.Min != image.Pt(0, 0) {
		src = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(src, src.Bounds(), img, bounds.Min, draw.Src)
	}

	// The 9 sample offsets per axis: left/top edge, middle, right/bottom
	// edge of the cell's footprint. With a ratio of 1 these collapse onto
	// the same pixel, which just averages it with itself.
	ox := [3]int{0, (rx - 1) / 2, rx - 1}
	oy := [3]int{0, (ry - 1) / 2, ry - 1}

	g := Blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = sampleAt(src, x*rx, y*ry, ox, oy)
		}
	}

	return g, nil
}

func sampleAt(src *image.RGBA, baseX, baseY int, ox, oy [3]int) Cell {
	var sum [3]uint32
	for _, dy := range oy {
		for _, dx := range ox {
			i := src.PixOffset(baseX+dx, baseY+dy)
			sum[0] += uint32(src.Pix[i])
			sum[1] += uint32(src.Pix[i+1])
			sum[2] += uint32(src.Pix[i+2])
		}
	}

	return Cell{
		Glyph: BlockGlyph,
		Color: [3]uint8{
			uint8(sum[0] / 9),
			uint8(sum[1] / 9),
			uint8(sum[2] / 9),
		},
	}
}
