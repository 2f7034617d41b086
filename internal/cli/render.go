package cli

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wallpaper/pkg/effect"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
	"github.com/matzehuels/wallpaper/pkg/pipeline"
)

// outlineNone hides Voronoi cell outlines.
const outlineNone = "none"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	width       int    // canvas width in pixels
	height      int    // canvas height in pixels
	palette     string // palette name
	effect      string // effect name
	seed        uint64 // random seed, 0 picks one
	outline     string // Voronoi outline color: hex or "none"
	interactive bool   // pick palette and effect in a terminal list
}

// renderCommand creates the render command, which paints one wallpaper
// and writes it to the PNG file named by its only argument.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:   pipeline.DefaultWidth,
		height:  pipeline.DefaultHeight,
		palette: pipeline.DefaultPalette,
		effect:  pipeline.DefaultEffect,
	}

	cmd := &cobra.Command{
		Use:   "render <dest>",
		Short: "Paint a wallpaper and save it as PNG",
		Example: `  wallpaper render wall.png
  wallpaper render wall.png --palette pastel --effect gradient
  wallpaper render wall.png --width 2560 --height 1440 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", opts.palette, "color palette (see 'wallpaper list palettes')")
	cmd.Flags().StringVarP(&opts.effect, "effect", "e", opts.effect, "effect: "+strings.Join(effect.Names(), ", "))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 picks one)")
	cmd.Flags().StringVar(&opts.outline, "outline", "", "Voronoi outline color as #rrggbb or #rrggbbaa, or \"none\"")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose palette and effect interactively")

	c.registerFlagCompletions(cmd)

	return cmd
}

// runRender resolves the options, runs the pipeline and reports the result.
func (c *CLI) runRender(ctx context.Context, dest string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	outline, err := parseOutline(opts.outline)
	if err != nil {
		return err
	}

	if opts.interactive {
		if opts.palette, opts.effect, err = c.pickRenderInputs(opts.palette, opts.effect); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	result, err := c.newRunner(logger).Execute(ctx, pipeline.Options{
		Width:   opts.width,
		Height:  opts.height,
		Palette: opts.palette,
		Effect:  opts.effect,
		Output:  dest,
		Seed:    opts.seed,
		Outline: outline,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Painted %s with %s", result.Effect, result.Palette.Name))

	printSuccess(c.out, "Image written to %s", result.Output)
	printDetail(c.out, "seed %d", result.Seed)
	return nil
}

// parseOutline parses the --outline flag. An empty value keeps the effect
// default and "none" makes outlines fully transparent.
func parseOutline(s string) (color.Color, error) {
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case outlineNone:
		return color.Transparent, nil
	}

	invalid := func(cause error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, cause, "Invalid outline color %q", s)
	}
	switch len(s) {
	case 7:
		c, err := palette.ParseHex(s)
		if err != nil {
			return nil, invalid(err)
		}
		return c, nil
	case 9:
		c, err := palette.ParseHex(s[:7])
		if err != nil {
			return nil, invalid(err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, invalid(err)
		}
		c.A = uint8(a)
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "Invalid outline color %q: want #rrggbb, #rrggbbaa or %q", s, outlineNone)
}
