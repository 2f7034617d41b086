// Package pkg provides the libraries behind the wallpaper generator.
//
// # Overview
//
// Wallpaper paints a procedural image from a named color palette and saves
// it as PNG. The pkg directory is organized by stage:
//
//  1. [palette] - The built-in palette table (embedded TOML)
//  2. [canvas] - A fixed-size RGBA surface backed by fogleman/gg
//  3. [effect] - Gradient, LittleBoxes and Voronoi painters
//  4. [pipeline] - Orchestration (lookup → paint → write)
//
// Supporting packages: [errors] (coded errors), [observability] (timing
// hooks) and [buildinfo] (version stamped at link time).
//
// # Architecture
//
// One render flows through:
//
//	palette name
//	     ↓
//	[palette] Table.Get
//	     ↓
//	[canvas] New(width, height)
//	     ↓
//	[effect] Render (exactly one effect)
//	     ↓
//	[canvas] WritePNG
//
// # Quick Start
//
//	opts := pipeline.Options{Output: "wall.png", Palette: "gundam", Effect: "little_boxes", Seed: 42}
//	opts.SetDefaults()
//	result, err := pipeline.NewRunner(palette.Default(), logger).Execute(ctx, opts)
//
// Every random choice is drawn from a generator seeded by Options.Seed, so
// the same seed and options reproduce the same file.
//
// # Testing
//
//	go test ./...
//
// [palette]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/palette
// [canvas]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/canvas
// [effect]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/effect
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wallpaper/pkg/buildinfo
package pkg
