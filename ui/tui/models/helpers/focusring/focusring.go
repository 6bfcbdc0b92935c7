// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package focusring moves focus between the components of a view in a
// fixed cyclic order.
package focusring

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Ring struct {
	KeyMap KeyMap

	items   []util.Focusable
	active  int
	focused bool
}

func New(items ...util.Focusable) *Ring {
	return &Ring{KeyMap: DefaultKeyMap, items: items}
}

func (r *Ring) Active() util.Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.active]
}

func (r *Ring) ActiveIndex() int { return r.active }

// IsActive reports whether item currently holds the focus.
func (r *Ring) IsActive(item util.Focusable) bool {
	return r.focused && r.Active() == item
}

// Update consumes the next/previous bindings. The second return value
// reports whether msg was handled.
func (r *Ring) Update(msg tea.Msg) (tea.Cmd, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !r.focused {
		return nil, false
	}
	switch {
	case key.Matches(kmsg, r.KeyMap.Next):
		return r.Move(1), true
	case key.Matches(kmsg, r.KeyMap.Prev):
		return r.Move(-1), true
	}
	return nil, false
}

// Move shifts the focus by delta positions, wrapping at both ends.
func (r *Ring) Move(delta int) tea.Cmd {
	n := len(r.items)
	if n == 0 {
		return nil
	}
	delta %= n
	if delta != 0 && r.focused {
		r.items[r.active].Blur()
		r.active = (r.active + delta + n) % n
	}
	return r.focusActive()
}

// Focus gives the focus to the active item.
func (r *Ring) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	if len(r.items) == 0 {
		return nil, nil
	}
	cmd, keyMap := r.items[r.active].Focus()
	return cmd, keyMap
}

func (r *Ring) Blur() {
	r.focused = false
	if len(r.items) > 0 {
		r.items[r.active].Blur()
	}
}

var _ util.Focusable = (*Ring)(nil)

func (r *Ring) focusActive() tea.Cmd {
	if !r.focused {
		return nil
	}
	cmd, keyMap := r.items[r.active].Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
