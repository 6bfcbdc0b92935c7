// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package datatable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A int
	B string
}

func pairColumns() []Column[pair] {
	return []Column[pair]{
		Field("a", "A", func(p pair) int { return p.A }).WithSortable(),
		Field("b", "B", func(p pair) string { return p.B }).WithSortable(),
	}
}

type scored struct {
	Name  string
	Score *int
}

func intp(v int) *int { return &v }

func scoredColumns() []Column[scored] {
	return []Column[scored]{
		Field("name", "Name", func(s scored) string { return s.Name }),
		OptionalField("score", "Score", func(s scored) (int, bool) {
			if s.Score == nil {
				return 0, false
			}
			return *s.Score, true
		}).WithSortable(),
	}
}

func names(rows []scored) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestRequestSort_FirstClickSortsAscending(t *testing.T) {
	data := []pair{{A: 2, B: "y"}, {A: 1, B: "x"}}
	tbl := New(pairColumns(), WithRows(data))

	require.True(t, tbl.RequestSort("a"))

	assert.Equal(t, []pair{{A: 1, B: "x"}, {A: 2, B: "y"}}, tbl.Rows())
	assert.Equal(t, SortState{Key: "a", Direction: SortAscending}, tbl.SortState())
	// the host slice is untouched
	assert.Equal(t, []pair{{A: 2, B: "y"}, {A: 1, B: "x"}}, data)
}

func TestRequestSort_ThreeClickCycle(t *testing.T) {
	data := []pair{{A: 2}, {A: 3}, {A: 1}}
	tbl := New(pairColumns(), WithRows(data))

	tbl.RequestSort("a")
	assert.Equal(t, []pair{{A: 1}, {A: 2}, {A: 3}}, tbl.Rows())

	tbl.RequestSort("a")
	assert.Equal(t, []pair{{A: 3}, {A: 2}, {A: 1}}, tbl.Rows())
	assert.Equal(t, SortDescending, tbl.SortState().Direction)

	tbl.RequestSort("a")
	assert.Equal(t, data, tbl.Rows())
	assert.Equal(t, SortState{}, tbl.SortState())
}

func TestRequestSort_OtherColumnStartsAscending(t *testing.T) {
	tbl := New(pairColumns(), WithRows([]pair{{A: 1, B: "z"}, {A: 2, B: "a"}}))

	tbl.RequestSort("a")
	tbl.RequestSort("a") // a descending
	tbl.RequestSort("b")

	assert.Equal(t, SortState{Key: "b", Direction: SortAscending}, tbl.SortState())
	assert.Equal(t, "a", tbl.Rows()[0].B)
}

func TestRequestSort_NonSortableIsNoop(t *testing.T) {
	cols := []Column[pair]{
		Field("a", "A", func(p pair) int { return p.A }),
	}
	data := []pair{{A: 2}, {A: 1}}
	tbl := New(cols, WithRows(data))

	assert.False(t, tbl.RequestSort("a"))
	assert.False(t, tbl.RequestSort("missing"))
	assert.Equal(t, SortState{}, tbl.SortState())
	assert.Equal(t, data, tbl.Rows())
}

func TestSort_IsStableForEqualKeys(t *testing.T) {
	data := []pair{{A: 1, B: "first"}, {A: 0, B: "zero"}, {A: 1, B: "second"}, {A: 1, B: "third"}}
	tbl := New(pairColumns(), WithRows(data))

	tbl.RequestSort("a")
	assert.Equal(t, []string{"zero", "first", "second", "third"}, []string{
		tbl.Rows()[0].B, tbl.Rows()[1].B, tbl.Rows()[2].B, tbl.Rows()[3].B,
	})

	tbl.RequestSort("a")
	assert.Equal(t, []string{"first", "second", "third", "zero"}, []string{
		tbl.Rows()[0].B, tbl.Rows()[1].B, tbl.Rows()[2].B, tbl.Rows()[3].B,
	})
}

func TestSort_AbsentValuesLeadAscendingTrailDescending(t *testing.T) {
	data := []scored{
		{Name: "b", Score: intp(5)},
		{Name: "none", Score: nil},
		{Name: "a", Score: intp(-3)},
	}
	tbl := New(scoredColumns(), WithRows(data))

	tbl.RequestSort("score")
	assert.Equal(t, []string{"none", "a", "b"}, names(tbl.Rows()))

	tbl.RequestSort("score")
	assert.Equal(t, []string{"b", "a", "none"}, names(tbl.Rows()))
}

func TestSort_BothAbsentKeepInputOrder(t *testing.T) {
	data := []scored{{Name: "x"}, {Name: "y", Score: intp(1)}, {Name: "z"}}
	tbl := New(scoredColumns(), WithRows(data))

	tbl.RequestSort("score")
	assert.Equal(t, []string{"x", "z", "y"}, names(tbl.Rows()))
}

func TestSort_PersistsAcrossSetRows(t *testing.T) {
	tbl := New(pairColumns(), WithRows([]pair{{A: 2}, {A: 1}}))
	tbl.RequestSort("a")

	tbl.SetRows([]pair{{A: 9}, {A: 4}, {A: 7}})

	assert.Equal(t, []pair{{A: 4}, {A: 7}, {A: 9}}, tbl.Rows())
}

func TestSort_CustomCompare(t *testing.T) {
	byLength := Column[pair]{
		Key:      "b",
		Title:    "B",
		Value:    func(p pair) any { return p.B },
		Sortable: true,
		Compare: func(a, b any) int {
			return len(a.(string)) - len(b.(string))
		},
	}
	tbl := New([]Column[pair]{byLength}, WithRows([]pair{{B: "ccc"}, {B: "a"}, {B: "bb"}}))

	tbl.RequestSort("b")
	assert.Equal(t, []pair{{B: "a"}, {B: "bb"}, {B: "ccc"}}, tbl.Rows())
}

func TestRestoreSort(t *testing.T) {
	tbl := New(pairColumns(), WithRows([]pair{{A: 1}, {A: 2}}))

	tbl.RestoreSort(SortState{Key: "a", Direction: SortDescending})
	assert.Equal(t, []pair{{A: 2}, {A: 1}}, tbl.Rows())

	tbl.RestoreSort(SortState{Key: "a"})
	assert.Equal(t, SortState{}, tbl.SortState())

	tbl.RestoreSort(SortState{Key: "nope", Direction: SortAscending})
	assert.Equal(t, SortState{}, tbl.SortState())
}

func TestHeaders_IndicatorsAndAriaSort(t *testing.T) {
	cols := append(pairColumns(), Field("c", "C", func(p pair) int { return 0 }))
	tbl := New(cols)

	h := tbl.Headers()
	require.Len(t, h, 3)
	assert.Equal(t, "↕", h[0].Indicator())
	assert.Equal(t, "none", h[0].AriaSort())
	assert.Equal(t, "", h[2].Indicator())

	tbl.RequestSort("a")
	h = tbl.Headers()
	assert.Equal(t, "▲", h[0].Indicator())
	assert.Equal(t, "ascending", h[0].AriaSort())
	assert.Equal(t, "↕", h[1].Indicator())

	tbl.RequestSort("a")
	h = tbl.Headers()
	assert.Equal(t, "▼", h[0].Indicator())
	assert.Equal(t, "descending", h[0].AriaSort())
}

func TestBody_PriorityLoadingEmptyRows(t *testing.T) {
	tbl := New(pairColumns())
	assert.Equal(t, BodyEmpty, tbl.Body())
	assert.Equal(t, DefaultEmptyText, tbl.Message())

	tbl.SetEmptyText("Nobody aboard")
	assert.Equal(t, "Nobody aboard", tbl.Message())

	tbl.SetLoading(true)
	assert.Equal(t, BodyLoading, tbl.Body())
	assert.Equal(t, DefaultLoadingText, tbl.Message())

	tbl.SetLoading(false)
	tbl.SetRows([]pair{{A: 1}})
	assert.Equal(t, BodyRows, tbl.Body())
	assert.Equal(t, "", tbl.Message())
}

func TestColSpan(t *testing.T) {
	tbl := New(pairColumns())
	assert.Equal(t, 2, tbl.ColSpan())
	tbl.SetSelectable(true)
	assert.Equal(t, 3, tbl.ColSpan())
}

func TestCells_RendererAndDefaults(t *testing.T) {
	cols := []Column[scored]{
		Field("name", "Name", func(s scored) string { return s.Name }).
			WithRender(func(v any, row scored) string { return strings.ToUpper(v.(string)) }),
		scoredColumns()[1],
	}
	tbl := New(cols)

	assert.Equal(t, []string{"ANUP", "7"}, tbl.Cells(scored{Name: "anup", Score: intp(7)}))
	assert.Equal(t, []string{"X", ""}, tbl.Cells(scored{Name: "x"}))

	missing := Column[scored]{Key: "m", Title: "M"}
	assert.Equal(t, "", tbl.Cell(scored{}, missing))
}

func TestCompareValues(t *testing.T) {
	now := time.Now()
	assert.Equal(t, -1, CompareValues(1, 2))
	assert.Equal(t, 1, CompareValues("b", "a"))
	assert.Equal(t, 0, CompareValues(2.5, 2.5))
	assert.Equal(t, -1, CompareValues(false, true))
	assert.Equal(t, -1, CompareValues(now, now.Add(time.Second)))
	assert.Equal(t, 1, CompareValues(time.Minute, time.Second))
	assert.Equal(t, -1, CompareValues(uint8(1), uint8(9)))
	// no coercion across types
	assert.Equal(t, 0, CompareValues(1, "1"))
	assert.Equal(t, 0, CompareValues(int64(1), 2))
}

func TestParseSortDirection(t *testing.T) {
	for in, want := range map[string]SortDirection{
		"":           SortNone,
		"asc":        SortAscending,
		"DESC":       SortDescending,
		"ascending":  SortAscending,
		"descending": SortDescending,
	} {
		got, err := ParseSortDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortDirection("sideways")
	assert.Error(t, err)
}
