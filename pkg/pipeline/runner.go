package pipeline

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/effect"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/observability"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

// Runner executes renders against a palette table.
//
// The Runner holds no per-render state; the same Runner can serve any
// number of sequential renders.
type Runner struct {
	Palettes *palette.Table
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil table falls back to the built-in
// palettes and a nil logger discards output.
func NewRunner(palettes *palette.Table, logger *log.Logger) *Runner {
	if palettes == nil {
		palettes = palette.Default()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Palettes: palettes, Logger: logger}
}

// Execute paints the wallpaper and writes it to opts.Output.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Output == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}
	result, err := r.Paint(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := r.logger(opts)
	start := time.Now()
	err = result.Canvas.WritePNG(opts.Output)
	result.Stats.WriteTime = time.Since(start)
	observability.Render().OnWrite(ctx, opts.Output, result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}
	result.Output = opts.Output

	logger.Debug("wrote png", "path", opts.Output, "duration", result.Stats.WriteTime)
	return result, nil
}

// Paint resolves the palette and effect, allocates the canvas and paints it.
// The returned canvas has not been written anywhere. Options are used as
// given; see [Options.SetDefaults].
func (r *Runner) Paint(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	p, err := r.Palettes.Get(opts.Palette)
	if err != nil {
		return nil, err
	}
	kind, err := effect.ParseKind(opts.Effect)
	if err != nil {
		return nil, err
	}
	c, err := canvas.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	logger.Debug("painting",
		"effect", kind,
		"palette", p.Name,
		"width", opts.Width,
		"height", opts.Height,
		"seed", seed)

	hooks := observability.Render()
	hooks.OnPaintStart(ctx, kind.String(), opts.Width, opts.Height)
	start := time.Now()
	err = effect.Render(kind, rng, p, c, effect.Options{
		Voronoi: effect.VoronoiOptions{Outline: opts.Outline},
	})
	elapsed := time.Since(start)
	hooks.OnPaintComplete(ctx, kind.String(), elapsed, err)
	if err != nil {
		return nil, err
	}

	logger.Debug("painted wallpaper", "effect", kind, "palette", p.Name, "duration", elapsed.Round(time.Millisecond))

	return &Result{
		Canvas:  c,
		Palette: p,
		Effect:  kind,
		Seed:    seed,
		Stats:   Stats{PaintTime: elapsed},
	}, nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
