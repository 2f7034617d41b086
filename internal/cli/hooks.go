package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline timings at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnPaintStart(_ context.Context, effect string, width, height int) {
	h.logger.Debug("paint start", "effect", effect, "width", width, "height", height)
}

func (h *logHooks) OnPaintComplete(_ context.Context, effect string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("paint failed", "effect", effect, "duration", d, "err", err)
		return
	}
	h.logger.Debug("paint complete", "effect", effect, "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "duration", d, "err", err)
		return
	}
	h.logger.Debug("write complete", "path", path, "duration", d)
}
