// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

import (
	"maps"
	"slices"
)

// Selection is keyed by display index: the position of a row in the current
// sorted sequence. Re-sorting or replacing the rows does not move the
// selection along with the logical rows. Tables built WithRowKey key the
// selection by row identity instead.

func (t *Table[T]) identity() bool { return t.rowKey != nil }

// IsSelected reports whether the row at display index i is selected.
func (t *Table[T]) IsSelected(i int) bool {
	if t.identity() {
		rows := t.Rows()
		if i < 0 || i >= len(rows) {
			return false
		}
		_, ok := t.selectedKeys[t.rowKey(rows[i])]
		return ok
	}
	_, ok := t.selected[i]
	return ok
}

// AllSelected requires at least one displayed row and every displayed row
// selected.
func (t *Table[T]) AllSelected() bool {
	n := len(t.Rows())
	if !t.selectable || n == 0 {
		return false
	}
	for i := range n {
		if !t.IsSelected(i) {
			return false
		}
	}
	return true
}

// ToggleAll selects every displayed row, or clears the selection when all
// of them are already selected.
func (t *Table[T]) ToggleAll() bool {
	if !t.selectable {
		return false
	}

	all := t.AllSelected()
	clear(t.selected)
	clear(t.selectedKeys)
	if !all {
		for i, row := range t.Rows() {
			t.add(i, row)
		}
	}

	t.notify()
	return true
}

// ToggleRow flips the selection of the row at display index i.
func (t *Table[T]) ToggleRow(i int) bool {
	rows := t.Rows()
	if !t.selectable || i < 0 || i >= len(rows) {
		return false
	}

	if t.IsSelected(i) {
		t.remove(i, rows[i])
	} else {
		t.add(i, rows[i])
	}

	t.notify()
	return true
}

// SelectedIndices returns the selected display indices that address a
// displayed row, ascending.
func (t *Table[T]) SelectedIndices() []int {
	n := len(t.Rows())
	var indices []int
	if t.identity() {
		for i := range n {
			if t.IsSelected(i) {
				indices = append(indices, i)
			}
		}
		return indices
	}

	for _, i := range slices.Sorted(maps.Keys(t.selected)) {
		if i < n {
			indices = append(indices, i)
		}
	}
	return indices
}

// SelectedRows materializes the selection in ascending display order.
// Indices left stale by a row change are skipped.
func (t *Table[T]) SelectedRows() []T {
	rows := t.Rows()
	selected := make([]T, 0, len(t.selected)+len(t.selectedKeys))
	for _, i := range t.SelectedIndices() {
		selected = append(selected, rows[i])
	}
	return selected
}

// RestoreSelection replaces the selection with the given display indices
// without notifying the host. Used by hosts that keep state between renders.
func (t *Table[T]) RestoreSelection(indices []int) {
	clear(t.selected)
	clear(t.selectedKeys)
	if !t.selectable {
		return
	}
	rows := t.Rows()
	for _, i := range indices {
		if i >= 0 && i < len(rows) {
			t.add(i, rows[i])
		}
	}
}

// SelectedKeys returns the selected row keys, including keys of rows not
// currently displayed, sorted. It is nil for tables without WithRowKey.
func (t *Table[T]) SelectedKeys() []string {
	if !t.identity() || len(t.selectedKeys) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(t.selectedKeys))
}

// RowKeys returns the keys of the displayed rows at indices, skipping
// out of range ones. It is nil for tables without WithRowKey.
func (t *Table[T]) RowKeys(indices []int) []string {
	if !t.identity() {
		return nil
	}
	rows := t.Rows()
	keys := make([]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(rows) {
			keys = append(keys, t.rowKey(rows[i]))
		}
	}
	return keys
}

// RestoreSelectedKeys replaces the selection with the given row keys
// without notifying the host. Keys of rows not displayed are kept. Tables
// without WithRowKey ignore it.
func (t *Table[T]) RestoreSelectedKeys(keys []string) {
	if !t.identity() {
		return
	}
	clear(t.selected)
	clear(t.selectedKeys)
	if !t.selectable {
		return
	}
	for _, k := range keys {
		t.selectedKeys[k] = struct{}{}
	}
}

func (t *Table[T]) add(i int, row T) {
	if t.identity() {
		t.selectedKeys[t.rowKey(row)] = struct{}{}
		return
	}
	t.selected[i] = struct{}{}
}

func (t *Table[T]) remove(i int, row T) {
	if t.identity() {
		delete(t.selectedKeys, t.rowKey(row))
		return
	}
	delete(t.selected, i)
}

func (t *Table[T]) notify() {
	if t.onRowSelect != nil {
		t.onRowSelect(t.SelectedRows())
	}
}
