package textel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareImage(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		w, h       int
		wantW      int
		wantH      int
	}{
		{name: "already exact", srcW: 90, srcH: 60, w: 45, h: 20, wantW: 90, wantH: 60},
		{name: "ragged edges cropped", srcW: 93, srcH: 64, w: 45, h: 20, wantW: 90, wantH: 60},
		{name: "wide source", srcW: 503, srcH: 100, w: 10, h: 10, wantW: 500, wantH: 100},
		{name: "ratio of one", srcW: 12, srcH: 11, w: 10, h: 10, wantW: 10, wantH: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := uniformImage(test.srcW, test.srcH, color.RGBA{R: 60, G: 70, B: 80, A: 255})

			prepared, err := PrepareImage(src, test.w, test.h)
			require.NoError(t, err)

			assert.Equal(t, test.wantW, prepared.Bounds().Dx())
			assert.Equal(t, test.wantH, prepared.Bounds().Dy())

			// Prepared output always satisfies the sampler precondition.
			g, err := Sample(prepared, test.w, test.h)
			require.NoError(t, err)
			assert.Equal(t, [3]uint8{60, 70, 80}, g.At(0, 0).Color)
		})
	}
}

func TestPrepareImageTooSmall(t *testing.T) {
	src := uniformImage(9, 20, color.RGBA{A: 255})

	_, err := PrepareImage(src, 10, 10)
	assert.Error(t, err)

	_, err = PrepareImage(uniformImage(20, 9, color.RGBA{A: 255}), 10, 10)
	assert.Error(t, err)
}

func TestPrepareImageInvalidDimensions(t *testing.T) {
	src := uniformImage(20, 20, color.RGBA{A: 255})

	_, err := PrepareImage(src, 0, 10)
	assert.Error(t, err)
}
