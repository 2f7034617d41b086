// Package effect implements the procedural painting algorithms.
//
// Each effect takes a random source, a palette and a canvas and paints the
// whole canvas in one call. Effects are stateless; all randomness comes from
// the *rand.Rand passed in, so a fixed seed reproduces a wallpaper exactly.
//
// The set of effects is closed and addressed through [Kind]:
//
//	kind, err := effect.ParseKind("voronoi")
//	err = effect.Render(kind, rng, p, c, effect.Options{})
package effect

import (
	"math/rand/v2"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

// Kind identifies one effect.
type Kind int

const (
	KindLittleBoxes Kind = iota // jittered grid of boxes around one base color
	KindGradient                // diagonal two-color gradient
	KindVoronoi                 // filled Voronoi cells
)

// DefaultKind is the effect used when none is requested.
const DefaultKind = KindVoronoi

var kindNames = [...]string{
	KindLittleBoxes: "little_boxes",
	KindGradient:    "gradient",
	KindVoronoi:     "voronoi",
}

// Kinds returns every effect in listing order.
func Kinds() []Kind {
	return []Kind{KindLittleBoxes, KindGradient, KindVoronoi}
}

// Names returns the effect names in listing order.
func Names() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	return names
}

// String returns the name used on the command line.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a command-line name to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownEffect, "Unknown effect %q", name)
}

// Options tunes individual effects. The zero value uses the defaults.
type Options struct {
	Voronoi VoronoiOptions
}

// Render paints c with the effect identified by kind.
func Render(kind Kind, rng *rand.Rand, p palette.Palette, c *canvas.Canvas, opts Options) error {
	switch kind {
	case KindLittleBoxes:
		return LittleBoxes(rng, p, c)
	case KindGradient:
		return Gradient(rng, p, c)
	case KindVoronoi:
		return Voronoi(rng, p, c, opts.Voronoi)
	default:
		return errors.New(errors.ErrCodeUnknownEffect, "Unknown effect %q", kind.String())
	}
}

// errEmptyPalette is returned by effects that need at least one color.
func errEmptyPalette() error {
	return errors.New(errors.ErrCodeInsufficientColors, "Palette seems to be empty")
}
