// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// Model is the centered title bar at the top of a view.
type Model struct {
	Title string
	size  util.Size
}

func New(title string) *Model {
	return &Model{Title: title}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(styles.ColorSubtle).
		Render(lipgloss.PlaceHorizontal(
			max(m.size.Width, lipgloss.Width(m.Title)),
			lipgloss.Center,
			styles.Title.Render(m.Title),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
