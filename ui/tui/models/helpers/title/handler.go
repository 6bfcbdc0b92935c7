// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal title in sync with the view state.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set requests a new title suffix; an empty string restores the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

type Handler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base, delimiter string) *Handler {
	return &Handler{Base: base, Delimiter: delimiter}
}

// Title is the full title currently shown.
func (h Handler) Title() string {
	if h.current == "" {
		return h.Base
	}
	return h.Base + h.Delimiter + h.current
}

func (h Handler) Init() tea.Cmd {
	return tea.SetWindowTitle(h.Title())
}

// Handle applies title messages and ignores everything else. Unchanged
// titles produce no command.
func (h *Handler) Handle(msg tea.Msg) tea.Cmd {
	title, ok := msg.(titleMsg)
	if !ok || h.current == string(title) {
		return nil
	}
	h.current = string(title)
	return tea.SetWindowTitle(h.Title())
}
