// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

import (
	"cmp"
	"fmt"
)

// Column describes one column of a Table over rows of type T.
//
// Value is the column's field selector. Returning nil marks the field as
// absent; absent values render as "" and take part in sorting as nulls.
type Column[T any] struct {
	Key      string
	Title    string
	Value    func(row T) any
	Sortable bool

	// Render overrides the default string form of a cell.
	Render func(value any, row T) string
	// Compare overrides the native ordering used when sorting by this column.
	// It is only called with non-nil values.
	Compare func(a, b any) int
}

// Field builds a column reading an always-present, natively ordered value.
func Field[T any, V cmp.Ordered](key, title string, get func(T) V) Column[T] {
	return Column[T]{
		Key:   key,
		Title: title,
		Value: func(row T) any { return get(row) },
	}
}

// OptionalField builds a column whose value may be absent.
func OptionalField[T any, V cmp.Ordered](key, title string, get func(T) (V, bool)) Column[T] {
	return Column[T]{
		Key:   key,
		Title: title,
		Value: func(row T) any {
			if v, ok := get(row); ok {
				return v
			}
			return nil
		},
	}
}

// WithSortable returns a copy of c with the sortable flag set.
func (c Column[T]) WithSortable() Column[T] {
	c.Sortable = true
	return c
}

// WithRender returns a copy of c using fn to render cells.
func (c Column[T]) WithRender(fn func(value any, row T) string) Column[T] {
	c.Render = fn
	return c
}

func (c Column[T]) value(row T) any {
	if c.Value == nil {
		return nil
	}
	return c.Value(row)
}

// cell returns the display string for row in this column.
func (c Column[T]) cell(row T) string {
	v := c.value(row)
	if c.Render != nil {
		return c.Render(v, row)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
