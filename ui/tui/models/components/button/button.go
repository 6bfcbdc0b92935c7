// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type KeyMap struct {
	Press key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Press} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Press}} }

type Model struct {
	Label    string
	Disabled bool
	OnPress  func() tea.Cmd
	KeyMap   KeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

func New(label string, onPress func() tea.Cmd) *Model {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorSubtle)

	return &Model{
		Label:   label,
		OnPress: onPress,
		KeyMap: KeyMap{
			Press: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.Foreground(styles.ColorSubtle).Faint(true),
		BlurredStyle:  base,
		FocusedStyle:  base.BorderForeground(styles.ColorFocus).Bold(true),
	}
}

func (b *Model) Init() tea.Cmd { return nil }

func (b *Model) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.focused || b.Disabled || !key.Matches(kmsg, b.KeyMap.Press) {
		return nil
	}
	if b.OnPress != nil {
		return b.OnPress()
	}
	return nil
}

func (b Model) View() string {
	switch {
	case b.Disabled:
		return b.DisabledStyle.Render(b.Label)
	case b.focused:
		return b.FocusedStyle.Render(b.Label)
	default:
		return b.BlurredStyle.Render(b.Label)
	}
}

func (b *Model) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	b.KeyMap.Press.SetEnabled(!b.Disabled)
	return nil, b.KeyMap
}

func (b *Model) Blur() {
	b.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
