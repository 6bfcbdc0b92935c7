// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package inputfield

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// ctrl+x and ctrl+r are not bound by bubbles/textinput.
type KeyMap struct {
	Clear          key.Binding
	TogglePassword key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Clear, km.TogglePassword}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Clear, km.TogglePassword}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	TogglePassword: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide"),
	),
}
