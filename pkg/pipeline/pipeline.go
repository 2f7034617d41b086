// Package pipeline runs one wallpaper render from options to PNG file.
//
// The pipeline has three steps:
//
//  1. Lookup: resolve the palette name against the palette table
//  2. Paint: allocate a canvas and run exactly one effect on it
//  3. Write: encode the canvas as PNG to the output path
//
// Nothing is written when lookup or painting fails.
//
// The Runner never fills in defaults; a zero size is rejected. Callers that
// want the package defaults apply them first:
//
//	opts := pipeline.Options{Output: "wall.png", Palette: "pastel", Effect: "gradient"}
//	opts.SetDefaults()
//	result, err := pipeline.NewRunner(palette.Default(), logger).Execute(ctx, opts)
package pipeline

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/effect"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1920

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 1080

	// DefaultPalette is the default palette name.
	DefaultPalette = palette.DefaultName
)

// DefaultEffect is the default effect name.
var DefaultEffect = effect.DefaultKind.String()

// =============================================================================
// Options
// =============================================================================

// Options configures one render.
type Options struct {
	Width   int    // canvas width in pixels
	Height  int    // canvas height in pixels
	Palette string // palette name
	Effect  string // effect name
	Output  string // destination PNG path (Execute only)

	// Seed drives every random choice. Zero picks a fresh seed, which is
	// reported in Result.Seed so the render can be reproduced.
	Seed uint64

	// Outline overrides the Voronoi cell outline color; nil keeps the default.
	Outline color.Color

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// SetDefaults fills unset fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Effect == "" {
		o.Effect = DefaultEffect
	}
}

// Validate checks the options that can be checked without the palette table.
func (o *Options) Validate() error {
	if o.Width < 1 || o.Height < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must be positive, got %dx%d", o.Width, o.Height)
	}
	if _, err := effect.ParseKind(o.Effect); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a render.
type Result struct {
	// Canvas holds the painted pixels.
	Canvas *canvas.Canvas

	// Palette and Effect are the resolved inputs.
	Palette palette.Palette
	Effect  effect.Kind

	// Seed is the seed actually used.
	Seed uint64

	// Output is the written path; empty after Paint.
	Output string

	Stats Stats
}

// Stats contains timing information.
type Stats struct {
	PaintTime time.Duration
	WriteTime time.Duration
}
