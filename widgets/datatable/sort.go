// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

import (
	"fmt"
	"slices"
	"strings"
)

type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns the aria-sort token for the direction.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// Short returns the compact form used in URLs and config ("asc", "desc", "").
func (d SortDirection) Short() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return ""
	}
}

// ParseSortDirection accepts the short and the aria forms, case-insensitive.
// An empty string is SortNone.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	}
	return SortNone, fmt.Errorf("unknown sort direction %q", s)
}

// SortState is the active sort column key and direction. Direction is
// SortNone iff Key is empty.
type SortState struct {
	Key       string
	Direction SortDirection
}

// Active reports whether rows are currently sorted.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != SortNone
}

// Next returns the state after a click on the header of column key:
// none -> ascending -> descending -> none. A different column always
// starts over at ascending.
func (s SortState) Next(key string) SortState {
	if s.Key != key {
		return SortState{Key: key, Direction: SortAscending}
	}
	if s.Direction == SortAscending {
		return SortState{Key: key, Direction: SortDescending}
	}
	return SortState{}
}

func (s SortState) normalized() SortState {
	if s.Key == "" || s.Direction == SortNone {
		return SortState{}
	}
	return s
}

// sortRows returns a stably sorted copy of rows. rows itself is never
// reordered.
func sortRows[T any](rows []T, col Column[T], dir SortDirection) []T {
	sorted := slices.Clone(rows)
	compare := col.Compare
	if compare == nil {
		compare = CompareValues
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		va, vb := col.value(a), col.value(b)
		switch {
		case va == nil && vb == nil:
			return 0
		// absent values lead when ascending and trail when descending
		case va == nil:
			if dir == SortAscending {
				return -1
			}
			return 1
		case vb == nil:
			if dir == SortAscending {
				return 1
			}
			return -1
		}

		c := compare(va, vb)
		if dir == SortDescending {
			return -c
		}
		return c
	})
	return sorted
}
