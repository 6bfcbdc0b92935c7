// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type keys struct{ a, b, c key.Binding }

func (k keys) ShortHelp() []key.Binding  { return []key.Binding{k.a, k.b, k.c} }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.a}, {k.b}, {k.c}} }

func testKeys() keys {
	return keys{
		a: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alpha")),
		b: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beta"), key.WithDisabled()),
		c: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "gamma")),
	}
}

func TestView_EmptyWithoutAnnouncement(t *testing.T) {
	assert.Empty(t, New().View())
}

func TestView_SkipsDisabledBindings(t *testing.T) {
	m := New()
	m.Update(util.AnnounceKeyMapMsg{KeyMap: testKeys()})

	view := ansi.Strip(m.View())
	assert.Equal(t, "a alpha • c gamma", view)

	m.ToggleExpanded()
	view = ansi.Strip(m.View())
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "gamma")
	assert.NotContains(t, view, "beta")
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := New()
	m.Update(util.AnnounceKeyMapMsg{KeyMap: testKeys()})
	m.Update(tea.WindowSizeMsg{Width: 10})

	view := ansi.Strip(m.View())
	assert.Equal(t, "a alpha …", view)
}
