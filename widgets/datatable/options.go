// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

type Option[T any] = func(t *Table[T])

func WithRows[T any](rows []T) Option[T] {
	return func(t *Table[T]) {
		t.rows = rows
	}
}

func WithLoading[T any](loading bool) Option[T] {
	return func(t *Table[T]) {
		t.loading = loading
	}
}

func WithSelectable[T any](selectable bool) Option[T] {
	return func(t *Table[T]) {
		t.selectable = selectable
	}
}

// WithOnRowSelect registers the selection callback. It receives the currently
// selected rows after every successful selection change.
func WithOnRowSelect[T any](fn func(selected []T)) Option[T] {
	return func(t *Table[T]) {
		t.onRowSelect = fn
	}
}

// WithEmptyText replaces the empty message; blank keeps the default.
func WithEmptyText[T any](text string) Option[T] {
	return func(t *Table[T]) {
		t.SetEmptyText(text)
	}
}

// WithRowKey keys the selection by row identity instead of display index, so
// selected rows stay selected across re-sorting and host-side filtering.
func WithRowKey[T any](fn func(row T) string) Option[T] {
	return func(t *Table[T]) {
		t.rowKey = fn
	}
}
