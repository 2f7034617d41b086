// Package canvas is the raster surface effects paint into.
//
// A [Canvas] wraps a [gg.Context]: it owns the pixel buffer exclusively, is
// mutated in place by exactly one effect and is encoded to PNG once at the
// end of a run. Only the drawing primitives the effects need are exposed.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"

	"github.com/matzehuels/wallpaper/pkg/errors"
)

// Point is a 2D coordinate in canvas pixels.
type Point struct {
	X, Y float64
}

// Canvas is a width × height drawing surface.
type Canvas struct {
	dc *gg.Context
}

// New allocates a transparent canvas. Both dimensions must be positive.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid canvas size %dx%d (both dimensions must be positive)", width, height)
	}
	return &Canvas{dc: gg.NewContext(width, height)}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// FillRect fills the axis-aligned rectangle with a solid color.
// Parts outside the canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h float64, fill color.Color) {
	c.dc.NewSubPath()
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetFillStyle(gg.NewSolidPattern(fill))
	c.dc.Fill()
}

// FillLinearGradient fills the whole canvas with a two-stop linear gradient
// running from → to. Positions beyond either end hold the end color (pad spread).
func (c *Canvas) FillLinearGradient(from, to Point, start, end color.Color) {
	grad := gg.NewLinearGradient(from.X, from.Y, to.X, to.Y)
	grad.AddColorStop(0, start)
	grad.AddColorStop(1, end)

	c.dc.NewSubPath()
	c.dc.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

// StrokeAndFillPolygon builds a closed path through pts, strokes it with
// stroke at the given line width and then fills it with fill. The fill is
// painted last and covers the inner half of the outline. Outlines use butt
// caps and bevel joins.
// Polygons with fewer than two points are ignored.
func (c *Canvas) StrokeAndFillPolygon(pts []Point, stroke color.Color, width float64, fill color.Color) {
	if len(pts) < 2 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.LineTo(pts[0].X, pts[0].Y)
	c.dc.ClosePath()

	if width > 0 {
		c.dc.SetStrokeStyle(gg.NewSolidPattern(stroke))
		c.dc.SetLineWidth(width)
		c.dc.SetLineCap(gg.LineCapButt)
		c.dc.SetLineJoin(gg.LineJoinBevel)
		c.dc.StrokePreserve()
	}
	c.dc.SetFillStyle(gg.NewSolidPattern(fill))
	c.dc.Fill()
}

// Image returns the backing image. It aliases the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// WritePNG writes the canvas to path as PNG, creating or replacing the file.
// The image is encoded in memory first, so an encoding failure leaves any
// existing file untouched. Failures are reported as OUTPUT_WRITE errors
// naming the path.
func (c *Canvas) WritePNG(path string) error {
	return writeEncoded(path, c.EncodePNG)
}

func writeEncoded(path string, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "Could not write to file %q", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o666); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, unwrapPathError(err), "Could not write to file %q", path)
	}
	return nil
}

// unwrapPathError drops the *os.PathError prefix, which repeats the path
// already named in the message.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return fmt.Errorf("%s: %w", pe.Op, pe.Err)
	}
	return err
}
