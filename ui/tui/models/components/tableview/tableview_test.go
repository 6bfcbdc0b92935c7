// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package tableview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/tuikit/widgets/datatable"
)

type member struct {
	Name  string
	Hours int
}

func columns() []datatable.Column[member] {
	return []datatable.Column[member]{
		datatable.Field("name", "Name", func(m member) string { return m.Name }).WithSortable(),
		datatable.Field("hours", "Hours", func(m member) int { return m.Hours }).WithSortable(),
	}
}

var roster = []member{{"Santosh", 182}, {"Anup", 160}, {"Aniket", 120}}

func press(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newModel(opts ...datatable.Option[member]) *Model[member] {
	opts = append([]datatable.Option[member]{datatable.WithRows(roster)}, opts...)
	m := New(datatable.New(columns(), opts...))
	m.Focus()
	return m
}

func checkboxes(view string) int {
	return strings.Count(view, CheckboxOn) + strings.Count(view, CheckboxOff)
}

func TestSortKey_CyclesActiveColumn(t *testing.T) {
	m := newModel()

	m.Update(press("s"))
	assert.Equal(t, datatable.SortState{Key: "name", Direction: datatable.SortAscending}, m.Table.SortState())
	assert.Equal(t, "Aniket", m.Table.Rows()[0].Name)
	assert.Contains(t, ansi.Strip(m.View()), "Name ▲")

	m.Update(press("enter"))
	assert.Equal(t, "Santosh", m.Table.Rows()[0].Name)
	assert.Contains(t, ansi.Strip(m.View()), "Name ▼")

	m.Update(press("s"))
	assert.False(t, m.Table.SortState().Active())
	assert.Equal(t, roster, m.Table.Rows())
}

func TestSortKey_FollowsColumnCursor(t *testing.T) {
	m := newModel()

	m.Update(press("right"))
	m.Update(press("s"))

	assert.Equal(t, 1, m.ActiveColumn())
	assert.Equal(t, "hours", m.Table.SortState().Key)
	assert.Equal(t, 120, m.Table.Rows()[0].Hours)

	// the cursor stops at the last column
	m.Update(press("right"))
	assert.Equal(t, 1, m.ActiveColumn())
}

func TestToggleRow_UnderCursor(t *testing.T) {
	var got []member
	m := newModel(
		datatable.WithSelectable[member](true),
		datatable.WithOnRowSelect(func(rows []member) { got = rows }),
	)

	m.Update(press("down"))
	m.Update(press(" "))

	assert.Equal(t, []member{{"Anup", 160}}, got)
	assert.Equal(t, 1, m.Cursor())
}

func TestToggleAll(t *testing.T) {
	var got []member
	m := newModel(
		datatable.WithSelectable[member](true),
		datatable.WithOnRowSelect(func(rows []member) { got = rows }),
	)

	m.Update(press("a"))
	assert.Equal(t, roster, got)
	assert.Equal(t, 4, strings.Count(ansi.Strip(m.View()), CheckboxOn))

	m.Update(press("a"))
	assert.Empty(t, got)
	assert.Equal(t, 0, strings.Count(ansi.Strip(m.View()), CheckboxOn))
}

func TestView_NoCheckboxesWhenNotSelectable(t *testing.T) {
	m := newModel()
	view := ansi.Strip(m.View())

	assert.Equal(t, 0, checkboxes(view))
	for _, r := range roster {
		assert.Contains(t, view, r.Name)
	}
}

func TestView_LoadingShowsSingleMessage(t *testing.T) {
	m := newModel(datatable.WithSelectable[member](true))
	require.NotNil(t, m.SetLoading(true))

	view := ansi.Strip(m.View())
	assert.Equal(t, 1, strings.Count(view, datatable.DefaultLoadingText))
	assert.Equal(t, 1, checkboxes(view), "only the select-all checkbox remains")
	assert.NotContains(t, view, "Santosh")
	assert.Contains(t, view, "Name")

	// row toggles have nothing to act on, select-all still works
	m.Update(press(" "))
	assert.Empty(t, m.Table.SelectedIndices())
	m.Update(press("a"))
	assert.Len(t, m.Table.SelectedIndices(), len(roster))
}

func TestView_EmptyShowsSingleMessage(t *testing.T) {
	m := New(datatable.New(columns(), datatable.WithEmptyText[member]("Nobody aboard")))
	view := ansi.Strip(m.View())

	assert.Equal(t, 1, strings.Count(view, "Nobody aboard"))
	assert.Contains(t, view, "Hours")
}

func TestSetRows_ClampsCursor(t *testing.T) {
	m := newModel()
	m.Update(press("down"))
	m.Update(press("down"))
	require.Equal(t, 2, m.Cursor())

	m.SetRows(roster[:1])
	assert.Equal(t, 0, m.Cursor())
}

func TestKeys_IgnoredWhenBlurred(t *testing.T) {
	m := newModel()
	m.Blur()

	assert.Nil(t, m.Update(press("s")))
	assert.False(t, m.Table.SortState().Active())
}
