package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wallpaper/pkg/buildinfo"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/observability"
	"github.com/matzehuels/wallpaper/pkg/palette"
	"github.com/matzehuels/wallpaper/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the binary name used in help and completion scripts.
	appName = "wallpaper"

	// exitInterrupted is the shell convention for a SIGINT exit.
	exitInterrupted = 130
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Palettes *palette.Table

	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// New creates a CLI that prints results to out and logs and errors to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(errOut, level),
		Palettes: palette.Default(),
		in:       os.Stdin,
		out:      out,
		errOut:   errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Wallpaper paints procedural desktop backgrounds",
		Long:          `Wallpaper paints a procedural image (gradient, little boxes or Voronoi cells) from a named color palette and saves it as a PNG file.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.SetRenderHooks(&logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Run executes the command line in args and returns the process exit code.
// Errors are printed to the error writer; nothing here calls os.Exit.
func (c *CLI) Run(ctx context.Context, args []string) int {
	root := c.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		printError(c.errOut, "%s", errors.UserMessage(err))
		return 1
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(c.Palettes, logger)
}
