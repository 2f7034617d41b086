package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wallpaper/pkg/effect"
	"github.com/matzehuels/wallpaper/pkg/errors"
)

const (
	listPalettes = "palettes"
	listEffects  = "effects"
)

// listCommand creates the list command, which prints the names of the
// built-in palettes or effects one per line.
func (c *CLI) listCommand() *cobra.Command {
	var swatches bool

	cmd := &cobra.Command{
		Use:       "list <palettes|effects>",
		Short:     "List available palettes or effects",
		ValidArgs: []string{listPalettes, listEffects},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(args[0], swatches)
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "show palette colors as a table")

	return cmd
}

func (c *CLI) runList(target string, swatches bool) error {
	switch target {
	case listPalettes:
		if swatches {
			fmt.Fprintln(c.out, c.swatchTable())
			return nil
		}
		printLines(c.out, c.Palettes.Names())
	case listEffects:
		printLines(c.out, effect.Names())
	default:
		return errors.New(errors.ErrCodeUnknownListTarget, "Unknown list option %q", target)
	}
	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// swatchTable renders every palette with its colors as a bordered table.
func (c *CLI) swatchTable() string {
	var rows [][]string
	for _, p := range c.Palettes.Palettes() {
		hex := p.Hex()
		rows = append(rows, []string{p.Name, swatch(hex), strings.Join(hex, " ")})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Palette", "Swatch", "Colors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleValue
			case col == 2:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
