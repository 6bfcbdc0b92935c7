// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp shows the bindings announced by the focused component.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	help help.Model
}

func New() *Model {
	return &Model{help: help.New()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case util.AnnounceKeyMapMsg:
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}

// SetWidth limits the rendered help; zero disables truncation.
func (m *Model) SetWidth(width int) {
	m.help.Width = width
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

// help is passive and never takes focus.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
