package effect

import (
	"image/color"
	"math/rand/v2"

	"github.com/pzsz/voronoi"

	"github.com/matzehuels/wallpaper/pkg/canvas"
	"github.com/matzehuels/wallpaper/pkg/errors"
	"github.com/matzehuels/wallpaper/pkg/palette"
)

const (
	// DefaultSites is the number of random seed points.
	DefaultSites = 100

	// DefaultOutlineWidth is the stroke width of cell outlines in pixels.
	DefaultOutlineWidth = 1.0
)

// DefaultOutline is the color cells are stroked with before being filled.
// The fill is painted over the stroke, so only the antialiased seams and
// the outer half of each outline can show it.
//
// TODO: confirm with design whether outlines are meant to be visible. The
// value was first written as (a=0xff, r=0, g=0, b=0), opaque black, but has
// been described as transparent.
var DefaultOutline color.Color = color.NRGBA{A: 0xff}

// VoronoiOptions tunes the Voronoi effect. Zero fields take the defaults.
type VoronoiOptions struct {
	Sites        int         // number of seed points
	Outline      color.Color // stroke color, color.Transparent hides outlines
	OutlineWidth float64     // stroke width in pixels
}

func (o VoronoiOptions) withDefaults() VoronoiOptions {
	if o.Sites <= 0 {
		o.Sites = DefaultSites
	}
	if o.Outline == nil {
		o.Outline = DefaultOutline
	}
	if o.OutlineWidth <= 0 {
		o.OutlineWidth = DefaultOutlineWidth
	}
	return o
}

// Voronoi partitions the canvas into the Voronoi cells of random seed points
// and paints each cell with a palette color picked independently per cell.
//
// Cells are outlined with opts.Outline and then filled. Diagram construction
// failures are returned as DIAGRAM_FAILURE; the canvas is untouched in that case.
func Voronoi(rng *rand.Rand, p palette.Palette, c *canvas.Canvas, opts VoronoiOptions) error {
	opts = opts.withDefaults()
	w, h := float64(c.Width()), float64(c.Height())

	sites := make([]voronoi.Vertex, opts.Sites)
	for i := range sites {
		sites[i] = voronoi.Vertex{X: rng.Float64() * w, Y: rng.Float64() * h}
	}

	cells, err := buildCells(sites, voronoi.NewBBox(0, w, 0, h))
	if err != nil {
		return err
	}

	for _, cell := range cells {
		if p.Len() == 0 {
			return errEmptyPalette()
		}
		fill := p.Colors[rng.IntN(p.Len())]
		c.StrokeAndFillPolygon(cell, opts.Outline, opts.OutlineWidth, fill)
	}
	return nil
}

// buildCells computes the bounded diagram and returns each cell as a closed
// polygon. Panics inside the geometry library are reported as errors.
func buildCells(sites []voronoi.Vertex, bbox voronoi.BBox) (cells [][]canvas.Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells = nil
			err = errors.New(errors.ErrCodeDiagramFailure, "could not build Voronoi diagram: %v", r)
		}
	}()

	diagram := voronoi.ComputeDiagram(sites, bbox, true)
	if diagram == nil || len(diagram.Cells) == 0 {
		return nil, errors.New(errors.ErrCodeDiagramFailure, "could not build Voronoi diagram from %d sites", len(sites))
	}

	cells = make([][]canvas.Point, 0, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		if len(cell.Halfedges) < 3 {
			return nil, errors.New(errors.ErrCodeDiagramFailure,
				"Voronoi cell at (%.1f, %.1f) has %d edges", cell.Site.X, cell.Site.Y, len(cell.Halfedges))
		}
		poly := make([]canvas.Point, 0, len(cell.Halfedges))
		for _, he := range cell.Halfedges {
			v := he.GetStartpoint()
			poly = append(poly, canvas.Point{X: v.X, Y: v.Y})
		}
		cells = append(cells, poly)
	}
	return cells, nil
}
