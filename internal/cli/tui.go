package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wallpaper/pkg/effect"
	"github.com/matzehuels/wallpaper/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickerModel - Interactive single choice
// =============================================================================

// pickerItem is one selectable row. Detail is rendered dimmed after the name.
type pickerItem struct {
	Name   string
	Detail string
}

// PickerModel is the bubbletea model for choosing one name from a list.
type PickerModel struct {
	Title    string
	Items    []pickerItem
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewPickerModel creates a picker with the cursor on the item named current.
func NewPickerModel(title string, items []pickerItem, current string) PickerModel {
	m := PickerModel{Title: title, Items: items, Height: 10}
	for i, it := range items {
		if it.Name == current {
			m.Cursor = i
		}
	}
	if m.Cursor >= m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Items) == 0 {
				return m, nil
			}
			m.Selected = m.Items[m.Cursor].Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 3)
	}
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-14s", cursor, it.Name)))
		if it.Detail != "" {
			b.WriteString(" " + it.Detail)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

// =============================================================================
// Render Inputs
// =============================================================================

// pickRenderInputs asks for a palette, then an effect. The current flag
// values are preselected. Quitting either list cancels the render.
func (c *CLI) pickRenderInputs(currentPalette, currentEffect string) (string, string, error) {
	var palettes []pickerItem
	for _, p := range c.Palettes.Palettes() {
		palettes = append(palettes, pickerItem{Name: p.Name, Detail: swatch(p.Hex())})
	}
	paletteName, err := c.pick(NewPickerModel("Select Palette", palettes, currentPalette))
	if err != nil {
		return "", "", err
	}

	var effects []pickerItem
	for _, name := range effect.Names() {
		effects = append(effects, pickerItem{Name: name})
	}
	effectName, err := c.pick(NewPickerModel("Select Effect", effects, currentEffect))
	if err != nil {
		return "", "", err
	}

	return paletteName, effectName, nil
}

func (c *CLI) pick(m PickerModel) (string, error) {
	final, err := tea.NewProgram(m, tea.WithInput(c.in), tea.WithOutput(c.errOut)).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "interactive selection failed")
	}
	selected := final.(PickerModel).Selected
	if selected == "" {
		return "", context.Canceled
	}
	return selected, nil
}
