package textel

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a fixed terminal palette for indexed-color rendering.
type Palette struct {
	entries []colorful.Color
}

// The 16 base colors as xterm defines them. Real terminals theme these, so
// matches against them are approximate by nature.
var xtermBase = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Levels of the 6x6x6 color cube occupying palette entries 16 through 231.
var xtermCube = [6]uint8{0, 95, 135, 175, 215, 255}

// XTerm256 returns the standard xterm 256-color palette: 16 base colors, a
// 6x6x6 color cube and a 24-step grayscale ramp.
func XTerm256() *Palette {
	entries := make([]colorful.Color, 0, 256)

	for _, c := range xtermBase {
		entries = append(entries, rgbToColorful(c))
	}

	for _, r := range xtermCube {
		for _, g := range xtermCube {
			for _, b := range xtermCube {
				entries = append(entries, rgbToColorful([3]uint8{r, g, b}))
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		entries = append(entries, rgbToColorful([3]uint8{v, v, v}))
	}

	return &Palette{entries: entries}
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Index returns the palette index of the entry nearest to the given color,
// measured in Lab space. Ties go to the lowest index, so lookups are
// deterministic.
func (p *Palette) Index(c [3]uint8) uint8 {
	target := rgbToColorful(c)

	best := 0
	bestDist := math.Inf(1)
	for i, entry := range p.entries {
		if d := target.DistanceLab(entry); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return uint8(best)
}

func rgbToColorful(c [3]uint8) colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}
}
