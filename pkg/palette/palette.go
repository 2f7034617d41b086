// Package palette holds the named color palettes effects sample from.
//
// A [Table] is decoded once from a TOML document and never mutated
// afterwards; the built-in table is returned by [Default]. Colors are written
// as "#rrggbb" hex strings and are always fully opaque.
//
//	table := palette.Default()
//	p, err := table.Get("cyberpunk")
//	for _, name := range table.Names() {
//	    fmt.Println(name)
//	}
package palette

import (
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/wallpaper/pkg/errors"
)

// DefaultName is the palette used when none is requested.
const DefaultName = "cyberpunk"

//go:embed palettes.toml
var builtin string

// Palette is a named, ordered list of colors.
type Palette struct {
	Name   string
	Colors []color.NRGBA
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.Colors) }

// Hex returns the colors as "#rrggbb" strings in palette order.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return out
}

// Table maps palette names to palettes, remembering insertion order.
type Table struct {
	order  []string
	byName map[string]Palette
}

type tableFile struct {
	Palettes []paletteEntry `toml:"palette"`
}

type paletteEntry struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// Default returns the built-in table (cyberpunk, pastel, gundam).
// It panics if the embedded document is malformed, which the package tests rule out.
func Default() *Table {
	t, err := Load(strings.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("palette: embedded table: %v", err))
	}
	return t
}

// Load decodes a palette table from TOML:
//
//	[[palette]]
//	name = "mono"
//	colors = ["#000000", "#ffffff"]
//
// Names must be unique and non-empty; every color must be a valid hex string.
func Load(r io.Reader) (*Table, error) {
	var f tableFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "could not decode palette table")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "unknown palette table key %q", keys[0].String())
	}

	t := &Table{byName: make(map[string]Palette, len(f.Palettes))}
	for _, entry := range f.Palettes {
		if entry.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidPalette, "palette name cannot be empty")
		}
		if _, dup := t.byName[entry.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPalette, "duplicate palette %q", entry.Name)
		}
		colors, err := parseColors(entry.Colors)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q", entry.Name)
		}
		t.order = append(t.order, entry.Name)
		t.byName[entry.Name] = Palette{Name: entry.Name, Colors: colors}
	}
	return t, nil
}

func parseColors(hex []string) ([]color.NRGBA, error) {
	colors := make([]color.NRGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ParseHex parses "#rrggbb" (or the short "#rgb" form) into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Lookup returns the palette registered under name.
// The returned palette owns a copy of the color slice.
func (t *Table) Lookup(name string) (Palette, bool) {
	p, ok := t.byName[name]
	if !ok {
		return Palette{}, false
	}
	p.Colors = append([]color.NRGBA(nil), p.Colors...)
	return p, true
}

// Get is Lookup with an UNKNOWN_PALETTE error for missing names.
func (t *Table) Get(name string) (Palette, error) {
	p, ok := t.Lookup(name)
	if !ok {
		return Palette{}, errors.New(errors.ErrCodeUnknownPalette, "Unknown palette %q", name)
	}
	return p, nil
}

// Names returns the palette names in insertion order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Palettes returns every palette in insertion order.
func (t *Table) Palettes() []Palette {
	out := make([]Palette, 0, len(t.order))
	for _, name := range t.order {
		p, _ := t.Lookup(name)
		out = append(out, p)
	}
	return out
}
