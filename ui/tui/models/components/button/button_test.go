// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package button

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPress(t *testing.T) {
	presses := 0
	b := New("Toggle Table Loading", func() tea.Cmd { presses++; return nil })

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	b.Update(enter)
	assert.Equal(t, 0, presses, "blurred buttons ignore keys")

	b.Focus()
	b.Update(enter)
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, 1, presses)

	b.Disabled = true
	b.Update(enter)
	assert.Equal(t, 1, presses)
}

func TestView(t *testing.T) {
	b := New("Toggle Table Loading", nil)
	assert.Contains(t, ansi.Strip(b.View()), "Toggle Table Loading")

	_, keyMap := b.Focus()
	assert.Equal(t, "toggle table loading", keyMap.ShortHelp()[0].Help().Desc)
}
