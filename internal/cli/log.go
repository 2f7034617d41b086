// Package cli implements the wallpaper command-line interface.
//
// The CLI paints a wallpaper into a PNG file, lists the built-in palettes
// and effects, and generates shell completion scripts. It is built on cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Paint one wallpaper and write it to a PNG file
//   - list: Print palette or effect names
//   - completion: Generate shell completion scripts
//
// # Logging
//
// Logs go to stderr at info level; --verbose (-v) switches to debug. Loggers
// are passed through context.Context so commands share one configuration.
//
// # Example
//
//	func main() {
//	    os.Exit(cli.New(os.Stdout, os.Stderr, cli.LogInfo).Run(ctx, os.Args[1:]))
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Painted voronoi with cyberpunk (412ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
