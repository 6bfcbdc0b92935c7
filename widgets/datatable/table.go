// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

import (
	"slices"
)

const (
	DefaultEmptyText   = "No records found."
	DefaultLoadingText = "Loading..."
)

// BodyKind is the mutually exclusive content of the table body.
type BodyKind int

const (
	BodyRows BodyKind = iota
	BodyLoading
	BodyEmpty
)

// Table holds the local state of one table instance: the sort state and the
// row selection. Rows and columns belong to the host and are replaced on
// every re-render through the setters; the table never modifies them.
type Table[T any] struct {
	columns     []Column[T]
	rows        []T
	loading     bool
	selectable  bool
	emptyText   string
	onRowSelect func(selected []T)
	rowKey      func(row T) string

	sort         SortState
	selected     map[int]struct{}
	selectedKeys map[string]struct{}

	sorted []T
	dirty  bool
}

func New[T any](columns []Column[T], opts ...Option[T]) *Table[T] {
	t := &Table[T]{
		columns:      columns,
		emptyText:    DefaultEmptyText,
		selected:     make(map[int]struct{}),
		selectedKeys: make(map[string]struct{}),
		dirty:        true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetRows replaces the row snapshot. Sort state is kept. Selected display
// indices are not reconciled against the new rows.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.dirty = true
}

func (t *Table[T]) SetColumns(columns []Column[T]) {
	t.columns = columns
	t.dirty = true
}

func (t *Table[T]) SetLoading(loading bool)       { t.loading = loading }
func (t *Table[T]) SetSelectable(selectable bool) { t.selectable = selectable }
func (t *Table[T]) SetOnRowSelect(fn func([]T))   { t.onRowSelect = fn }

// SetEmptyText overrides the empty-state message; "" restores the default.
func (t *Table[T]) SetEmptyText(text string) {
	if text == "" {
		text = DefaultEmptyText
	}
	t.emptyText = text
}

func (t *Table[T]) Columns() []Column[T] { return t.columns }
func (t *Table[T]) Loading() bool        { return t.loading }
func (t *Table[T]) Selectable() bool     { return t.selectable }

// Column returns the column with the given key.
func (t *Table[T]) Column(key string) (Column[T], bool) {
	i := slices.IndexFunc(t.columns, func(c Column[T]) bool { return c.Key == key })
	if i < 0 {
		return Column[T]{}, false
	}
	return t.columns[i], true
}

// Rows returns the displayed row sequence: the host rows, stably sorted by
// the active sort state. The result must not be modified.
func (t *Table[T]) Rows() []T {
	if !t.dirty {
		return t.sorted
	}
	t.dirty = false
	t.sorted = t.rows

	if !t.sort.Active() {
		return t.sorted
	}
	if col, ok := t.Column(t.sort.Key); ok {
		t.sorted = sortRows(t.rows, col, t.sort.Direction)
	}
	return t.sorted
}

// Sorting

func (t *Table[T]) SortState() SortState { return t.sort }

// RequestSort handles a click on the header of column key. It reports
// whether the sort state changed; clicks on unknown or non-sortable columns
// are ignored.
func (t *Table[T]) RequestSort(key string) bool {
	col, ok := t.Column(key)
	if !ok || !col.Sortable {
		return false
	}
	t.sort = t.sort.Next(key)
	t.dirty = true
	return true
}

// RestoreSort installs a previously observed sort state, for hosts that keep
// table state outside the instance between renders. States naming an unknown
// or non-sortable column restore to unsorted.
func (t *Table[T]) RestoreSort(s SortState) {
	s = s.normalized()
	if col, ok := t.Column(s.Key); s.Active() && (!ok || !col.Sortable) {
		s = SortState{}
	}
	t.sort = s
	t.dirty = true
}

// Header is the render-ready description of a column header.
type Header struct {
	Key       string
	Title     string
	Sortable  bool
	Direction SortDirection
}

// Indicator is the direction glyph shown after the title of a sortable
// column.
func (h Header) Indicator() string {
	if !h.Sortable {
		return ""
	}
	switch h.Direction {
	case SortAscending:
		return "▲"
	case SortDescending:
		return "▼"
	default:
		return "↕"
	}
}

// AriaSort is the aria-sort attribute value for the header cell.
func (h Header) AriaSort() string {
	return h.Direction.String()
}

func (t *Table[T]) Headers() []Header {
	headers := make([]Header, len(t.columns))
	for i, c := range t.columns {
		headers[i] = Header{Key: c.Key, Title: c.Title, Sortable: c.Sortable}
		if t.sort.Active() && t.sort.Key == c.Key {
			headers[i].Direction = t.sort.Direction
		}
	}
	return headers
}

// Body

// Body decides what the table body shows, in priority order: loading,
// empty, rows.
func (t *Table[T]) Body() BodyKind {
	switch {
	case t.loading:
		return BodyLoading
	case len(t.Rows()) == 0:
		return BodyEmpty
	default:
		return BodyRows
	}
}

// Message is the text of the single informational row for the loading and
// empty bodies.
func (t *Table[T]) Message() string {
	switch t.Body() {
	case BodyLoading:
		return DefaultLoadingText
	case BodyEmpty:
		return t.emptyText
	default:
		return ""
	}
}

// ColSpan is the number of grid columns, including the selection column.
func (t *Table[T]) ColSpan() int {
	if t.selectable {
		return len(t.columns) + 1
	}
	return len(t.columns)
}

// Cell renders the value of col for row.
func (t *Table[T]) Cell(row T, col Column[T]) string {
	return col.cell(row)
}

// Cells renders every column of row in column order.
func (t *Table[T]) Cells(row T) []string {
	cells := make([]string, len(t.columns))
	for i, c := range t.columns {
		cells[i] = c.cell(row)
	}
	return cells
}
