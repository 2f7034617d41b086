package effect

import (
	"math/rand/v2"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

// Gradient fills the canvas with a linear gradient along the diagonal from
// the top-left to the bottom-right corner. The two end colors are distinct
// palette entries drawn without replacement.
func Gradient(rng *rand.Rand, p palette.Palette, c *canvas.Canvas) error {
	if p.Len() < 2 {
		return errors.New(errors.ErrCodeInsufficientColors, "Too few colors for gradient effect")
	}

	// Shuffle indices and take the first two so the palette itself is never reordered.
	order := rng.Perm(p.Len())
	start, end := p.Colors[order[0]], p.Colors[order[1]]

	c.FillLinearGradient(
		canvas.Point{X: 0, Y: 0},
		canvas.Point{X: float64(c.Width()), Y: float64(c.Height())},
		start, end,
	)
	return nil
}
