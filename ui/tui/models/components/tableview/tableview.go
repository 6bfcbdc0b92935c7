// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tableview renders a datatable.Table in the terminal. Header
// "clicks" are issued with the sort key on the active column, row toggles
// act on the row under the cursor.
package tableview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/ui/tui/util"
	"github.com/toeirei/tuikit/util/slicest"
	"github.com/toeirei/tuikit/widgets/datatable"
)

const (
	CheckboxOn  = "[x]"
	CheckboxOff = "[ ]"
)

type Model[T any] struct {
	Table  *datatable.Table[T]
	KeyMap KeyMap

	spinner spinner.Model
	cursor  int
	column  int
	focused bool
}

func New[T any](t *datatable.Table[T]) *Model[T] {
	return &Model[T]{
		Table:   t,
		KeyMap:  DefaultKeyMap,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *Model[T]) Init() tea.Cmd {
	if m.Table.Loading() {
		return m.spinner.Tick
	}
	return nil
}

// SetLoading toggles the loading body and starts the spinner when needed.
func (m *Model[T]) SetLoading(loading bool) tea.Cmd {
	was := m.Table.Loading()
	m.Table.SetLoading(loading)
	m.refreshKeyMap()
	if loading && !was {
		return m.spinner.Tick
	}
	return nil
}

// SetRows pushes a new row snapshot, keeping the cursor in range.
func (m *Model[T]) SetRows(rows []T) {
	m.Table.SetRows(rows)
	m.cursor = util.ClampIndex(m.cursor, len(m.Table.Rows()))
	m.refreshKeyMap()
}

func (m Model[T]) Cursor() int       { return m.cursor }
func (m Model[T]) ActiveColumn() int { return m.column }

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Table.Loading() {
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
		rows := len(m.Table.Rows())
		switch {
		case key.Matches(msg, m.KeyMap.Up):
			m.cursor = util.ClampIndex(m.cursor-1, rows)
		case key.Matches(msg, m.KeyMap.Down):
			m.cursor = util.ClampIndex(m.cursor+1, rows)
		case key.Matches(msg, m.KeyMap.Left):
			m.column = util.ClampIndex(m.column-1, len(m.Table.Columns()))
		case key.Matches(msg, m.KeyMap.Right):
			m.column = util.ClampIndex(m.column+1, len(m.Table.Columns()))
		case key.Matches(msg, m.KeyMap.Sort):
			if cols := m.Table.Columns(); m.column < len(cols) {
				m.Table.RequestSort(cols[m.column].Key)
			}
		case key.Matches(msg, m.KeyMap.ToggleRow):
			m.Table.ToggleRow(m.cursor)
		case key.Matches(msg, m.KeyMap.ToggleAll):
			m.Table.ToggleAll()
		default:
			return nil
		}
		return m.announce()
	}
	return nil
}

func (m Model[T]) View() string {
	t := m.Table
	headers := t.Headers()

	cells := make([]string, 0, t.ColSpan())
	if t.Selectable() {
		cells = append(cells, checkbox(t.AllSelected()))
	}
	cells = append(cells, slicest.Map(headers, headerCell)...)

	body := t.Body()
	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.ColorSubtle)).
		Headers(cells...).
		StyleFunc(m.cellStyle)

	if body == datatable.BodyRows {
		grid = grid.Rows(m.rows()...)
		return grid.Render()
	}

	// a single message row spanning the full table width
	head := grid.Render()
	msg := t.Message()
	if body == datatable.BodyLoading {
		msg = m.spinner.View() + " " + msg
	}
	row := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(styles.ColorSubtle).
		Foreground(styles.ColorSubtle).
		Align(lipgloss.Center).
		Width(max(lipgloss.Width(head)-2, 1)).
		Render(msg)
	return lipgloss.JoinVertical(lipgloss.Left, head, row)
}

func (m Model[T]) rows() [][]string {
	t := m.Table
	return slicest.MapI(t.Rows(), func(i int, row T) []string {
		cells := t.Cells(row)
		if t.Selectable() {
			cells = append([]string{checkbox(t.IsSelected(i))}, cells...)
		}
		return cells
	})
}

func (m Model[T]) cellStyle(row, col int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	dataCol := col
	if m.Table.Selectable() {
		dataCol--
	}

	if row == table.HeaderRow {
		style = style.Bold(true).Foreground(styles.ColorHighlight)
		if m.focused && dataCol == m.column {
			style = style.Underline(true).Foreground(styles.ColorFocus)
		}
		return style
	}
	if m.focused && row == m.cursor {
		style = style.Foreground(styles.ColorFocus)
	}
	return style
}

func headerCell(h datatable.Header) string {
	if ind := h.Indicator(); ind != "" {
		return h.Title + " " + ind
	}
	return h.Title
}

func checkbox(on bool) string {
	if on {
		return CheckboxOn
	}
	return CheckboxOff
}

func (m *Model[T]) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.refreshKeyMap()
	return nil, m.KeyMap
}

func (m *Model[T]) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model[any])(nil)

// refreshKeyMap disables bindings that would have no effect in the current
// body and selection mode.
func (m *Model[T]) refreshKeyMap() {
	rowsShown := m.Table.Body() == datatable.BodyRows
	m.KeyMap.Up.SetEnabled(rowsShown)
	m.KeyMap.Down.SetEnabled(rowsShown)
	m.KeyMap.ToggleRow.SetEnabled(rowsShown && m.Table.Selectable())
	m.KeyMap.ToggleAll.SetEnabled(m.Table.Selectable())
}

func (m *Model[T]) announce() tea.Cmd {
	m.refreshKeyMap()
	return util.AnnounceKeyMapCmd(m.KeyMap)
}
