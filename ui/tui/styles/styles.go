// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package styles defines the shared lipgloss palette and styles used by the
// terminal components so that every view has the same look and feel.
package styles

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	ColorSubtle    = lipgloss.Color("240") // Muted gray
	ColorHighlight = lipgloss.Color("81")  // Teal/cyan
	ColorFocus     = lipgloss.Color("205") // Pink, focused inputs
	ColorSpecial   = lipgloss.Color("208") // Orange
	ColorError     = lipgloss.Color("196") // Bright red
	ColorSuccess   = lipgloss.Color("40")  // Green
	ColorWhite     = lipgloss.Color("231")
	ColorFill      = lipgloss.Color("236") // Filled input background
)

var (
	Doc = lipgloss.NewStyle().Margin(1, 2)

	Title = lipgloss.NewStyle().
		Foreground(ColorHighlight).
		Bold(true)

	Label        = lipgloss.NewStyle().Foreground(ColorSubtle)
	LabelFocused = lipgloss.NewStyle().Foreground(ColorFocus).Bold(true)

	Help    = lipgloss.NewStyle().Foreground(ColorSubtle)
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Special = lipgloss.NewStyle().Foreground(ColorSpecial)

	Status = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorWhite).
		Background(ColorHighlight)
)
