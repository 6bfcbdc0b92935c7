// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package inputfield renders a textfield.Field in the terminal. Editing is
// delegated to bubbles/textinput, but the displayed value always comes from
// the host through the field props: edits are only reported via OnChange.
package inputfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/ui/tui/util"
	"github.com/toeirei/tuikit/widgets/textfield"
)

const defaultWidth = 40

type Model struct {
	Field  *textfield.Field
	KeyMap KeyMap

	input   textinput.Model
	spinner spinner.Model
	focused bool
	width   int
}

func New(props textfield.Props) *Model {
	input := textinput.New()
	input.Prompt = ""

	m := &Model{
		Field:   textfield.New(props),
		KeyMap:  DefaultKeyMap,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   defaultWidth,
	}
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.Field.ShowSpinner() {
		return m.spinner.Tick
	}
	return nil
}

// SetProps pushes a new host configuration. The returned command restarts
// the spinner when loading begins.
func (m *Model) SetProps(props textfield.Props) tea.Cmd {
	wasLoading := m.Field.ShowSpinner()
	m.Field.SetProps(props)
	m.sync()
	if !wasLoading && m.Field.ShowSpinner() {
		return m.spinner.Tick
	}
	return nil
}

// SetValue pushes only the host-owned value.
func (m *Model) SetValue(value string) {
	m.Field.SetValue(value)
	m.sync()
}

func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// ticks stop once loading ends; SetProps restarts them
		if !m.Field.ShowSpinner() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		m.refreshKeyMap()
		switch {
		case key.Matches(msg, m.KeyMap.Clear):
			m.Field.Clear()
			m.sync()
			return nil
		case key.Matches(msg, m.KeyMap.TogglePassword):
			m.Field.ToggleVisibility()
			m.sync()
			return m.announce()
		}
		if m.Field.Inactive() {
			return nil
		}

		m.sync()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if edited := m.input.Value(); edited != m.Field.Value() {
			m.Field.Edit(edited)
		}
		// the host may have pushed a new value from OnChange
		m.sync()
		return tea.Batch(cmd, m.announce())
	}

	if m.focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m Model) View() string {
	f := m.Field
	props := f.Props()

	var label string
	if props.Label != "" {
		if m.focused {
			label = styles.LabelFocused.Render(props.Label)
		} else {
			label = styles.Label.Render(props.Label)
		}
	}

	affordances := m.affordances()
	box := boxStyle(f, m.focused)
	frame := box.GetHorizontalFrameSize()
	inner := max(m.width-frame, 1)

	input := m.input
	input.Placeholder = props.Placeholder
	input.Width = max(inner-lipgloss.Width(affordances)-2, 1)

	line := input.View()
	if affordances != "" {
		gap := max(inner-lipgloss.Width(line)-lipgloss.Width(affordances), 1)
		line = line + strings.Repeat(" ", gap) + affordances
	}

	parts := make([]string, 0, 3)
	if label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, box.Width(m.width-box.GetHorizontalBorderSize()).Render(line))
	if d := f.Description(); d.Present {
		parts = append(parts, descriptionStyle(d).Render(d.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// affordances renders the indicators shown at the right edge of the input.
func (m Model) affordances() string {
	f := m.Field
	if f.ShowSpinner() {
		return m.spinner.View()
	}

	var items []string
	if f.ShowClear() {
		items = append(items, styles.Help.Render(ClearGlyph))
	}
	if f.ShowToggle() {
		glyph := ShowGlyph
		if f.Showing() {
			glyph = HideGlyph
		}
		items = append(items, styles.Help.Render(glyph))
	}
	return strings.Join(items, " ")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.refreshKeyMap()
	return m.input.Focus(), m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m Model) Focused() bool { return m.focused }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// sync mirrors the host value and the effective type into the text input.
func (m *Model) sync() {
	if m.input.Value() != m.Field.Value() {
		m.input.SetValue(m.Field.Value())
	}
	if m.Field.EffectiveType() == textfield.TypePassword {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

func (m *Model) refreshKeyMap() {
	m.KeyMap.Clear.SetEnabled(m.Field.ShowClear())
	m.KeyMap.TogglePassword.SetEnabled(m.Field.ShowToggle())
	if m.Field.Showing() {
		m.KeyMap.TogglePassword.SetHelp("ctrl+r", "hide")
	} else {
		m.KeyMap.TogglePassword.SetHelp("ctrl+r", "show")
	}
}

func (m *Model) announce() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.refreshKeyMap()
	return util.AnnounceKeyMapCmd(m.KeyMap)
}
