package textel

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
)

// PrepareImage scales and center-crops src so its dimensions become an exact
// multiple of the grid's, which makes every cell's sampling footprint the
// same size and leaves no ragged strip of pixels uncovered along the right
// or bottom edge. Sample does not require prepared input, only that the
// source is no smaller than the grid; preparing first just gives the 3x3
// pattern full coverage of the image.
//
// The pixels-per-cell ratio is computed per axis, matching the sampler, and
// the target is the largest exact multiple that fits the source, so the
// image is only ever scaled down and only slightly. A source smaller than
// the grid in either axis is an error.
func PrepareImage(src image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("textel: PrepareImage: invalid grid dimensions %dx%d", w, h)
	}

	bounds := src.Bounds()
	if bounds.Dx() < w || bounds.Dy() < h {
		return nil, fmt.Errorf("textel: PrepareImage: source image %dx%d is smaller than target grid %dx%d",
			bounds.Dx(), bounds.Dy(), w, h)
	}

	rx := bounds.Dx() / w
	ry := bounds.Dy() / h

	filter := gift.New(gift.ResizeToFill(w*rx, h*ry,
		gift.LanczosResampling, gift.CenterAnchor))

	dst := image.NewRGBA(filter.Bounds(bounds))
	filter.Draw(dst, src)

	return dst, nil
}
