package effect

import (
	"image/color"
	"math/rand/v2"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

const (
	boxColumns = 100 // fixed number of columns; the box side follows from the width
	jitterSpan = 30  // deviation samples are drawn from [0, jitterSpan)
)

// LittleBoxes tiles the canvas with square boxes, each a small random
// brightness shift of one base color picked for the whole run.
//
// The grid has exactly 100 columns of side floor(width/100); the last row may
// hang off the bottom edge.
func LittleBoxes(rng *rand.Rand, p palette.Palette, c *canvas.Canvas) error {
	if p.Len() == 0 {
		return errEmptyPalette()
	}
	size := c.Width() / boxColumns
	if size < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "little_boxes needs a canvas at least %d pixels wide, got %d", boxColumns, c.Width())
	}

	base := p.Colors[rng.IntN(p.Len())]
	rows := c.Height()/size + 1
	side := float64(size)

	for col := 0; col < boxColumns; col++ {
		for row := 0; row < rows; row++ {
			fill := shade(base, deviation(rng.IntN(jitterSpan)))
			c.FillRect(float64(col)*side, float64(row)*side, side, side, fill)
		}
	}
	return nil
}

// deviation maps a sample from [0, jitterSpan) to a signed brightness shift:
// samples above the midpoint darken, samples below it lighten, the midpoint
// itself is neutral. The magnitude is at most 14.
func deviation(v int) int {
	mid := jitterSpan / 2
	switch {
	case v > mid:
		return -(v / 2)
	case v < mid:
		return v / 2
	default:
		return 0
	}
}

// shade adds d to each color channel, clamping to [0, 255]. Alpha is kept.
func shade(c color.NRGBA, d int) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(int(c.R) + d),
		G: clampChannel(int(c.G) + d),
		B: clampChannel(int(c.B) + d),
		A: c.A,
	}
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
