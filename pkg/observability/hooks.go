// Package observability provides hooks for timing and tracing renders.
//
// The package keeps the rendering code free of any metrics backend. The
// binary registers hooks once at startup; the pipeline emits events through
// whatever is registered, which defaults to a no-op.
//
//	func main() {
//	    observability.SetRenderHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnPaintStart(ctx, "voronoi", 1920, 1080)
//	// ... paint ...
//	observability.Render().OnPaintComplete(ctx, "voronoi", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// OnPaintStart fires before an effect paints the canvas.
	OnPaintStart(ctx context.Context, effect string, width, height int)

	// OnPaintComplete fires after the effect returned.
	OnPaintComplete(ctx context.Context, effect string, duration time.Duration, err error)

	// OnWrite fires after the PNG file was written (or failed to be).
	OnWrite(ctx context.Context, path string, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnPaintStart(context.Context, string, int, int)                {}
func (NoopRenderHooks) OnPaintComplete(context.Context, string, time.Duration, error) {}
func (NoopRenderHooks) OnWrite(context.Context, string, time.Duration, error)         {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
// Call it once at startup, before rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op hooks. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
