// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package inputfield

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/widgets/textfield"
)

const (
	ClearGlyph = "×"
	ShowGlyph  = "show"
	HideGlyph  = "hide"
)

// boxStyle derives the input box from the variant, size and state flags.
func boxStyle(f *textfield.Field, focused bool) lipgloss.Style {
	props := f.Props()
	style := lipgloss.NewStyle()

	switch props.Variant {
	case textfield.Filled:
		style = style.Border(lipgloss.HiddenBorder()).Background(styles.ColorFill)
	case textfield.Ghost:
		style = style.Border(lipgloss.HiddenBorder())
	default:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(styles.ColorSubtle)
	}
	if focused {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(styles.ColorFocus)
	}
	if f.Invalid() {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(styles.ColorError)
	}

	switch props.Size {
	case textfield.Small:
		style = style.Padding(0, 0)
	case textfield.Large:
		style = style.Padding(0, 2).Bold(true)
	default:
		style = style.Padding(0, 1)
	}

	if f.Inactive() {
		style = style.Faint(true)
	}
	return style
}

func descriptionStyle(d textfield.Description) lipgloss.Style {
	if d.Alert {
		return styles.Error
	}
	return styles.Help
}
