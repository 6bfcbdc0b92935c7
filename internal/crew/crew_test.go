// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/tuikit/util/slicest"
	"github.com/toeirei/tuikit/widgets/datatable"
)

func names(members []Member) []string {
	return slicest.Map(members, func(m Member) string { return m.Name })
}

func TestFilter_Substring(t *testing.T) {
	roster := Roster()

	assert.Equal(t, names(roster), names(Filter(roster, "", FilterSubstring)))
	assert.Empty(t, Filter(roster, "   ", FilterSubstring))
	assert.Empty(t, Filter(roster, "Patil ", FilterSubstring))
	assert.Equal(t, []string{"Anup Patil"}, names(Filter(roster, "p patil", FilterSubstring)))
	assert.Equal(t, []string{"Aniket Singh"}, names(Filter(roster, "ANI", FilterSubstring)))
	assert.Equal(t, []string{"Santosh Rathod", "Aniket Singh"}, names(Filter(roster, "H", FilterSubstring)))
	assert.Equal(t, []string{"Santosh Rathod"}, names(Filter(roster, "rath", FilterSubstring)))
	assert.Empty(t, Filter(roster, "zz", FilterSubstring))
}

func TestFilter_FuzzyKeepsRosterOrder(t *testing.T) {
	roster := Roster()

	got := names(Filter(roster, "ash", FilterFuzzy))
	assert.Contains(t, got, "Santosh Rathod")
	assert.Contains(t, got, "Aniket Singh")
	assert.NotContains(t, got, "Anup Patil")
	// Santosh comes before Aniket in the roster regardless of score
	assert.Equal(t, []string{"Santosh Rathod", "Aniket Singh"}, got)
}

func TestFilterMode_UnmarshalText(t *testing.T) {
	var m FilterMode
	require.NoError(t, m.UnmarshalText([]byte("Fuzzy")))
	assert.Equal(t, FilterFuzzy, m)
	require.NoError(t, m.UnmarshalText([]byte("")))
	assert.Equal(t, FilterSubstring, m)
	assert.Error(t, m.UnmarshalText([]byte("regex")))

	text, err := FilterFuzzy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fuzzy", string(text))
}

func TestColumns_RenderAndSort(t *testing.T) {
	tbl := datatable.New(Columns(), datatable.WithRows(Roster()))
	require.Len(t, tbl.Headers(), 4)
	for _, h := range tbl.Headers() {
		assert.True(t, h.Sortable, h.Key)
	}

	assert.Equal(t, []string{"Anup Patil", "Seafarer", "2025-07-23", "160 h"}, tbl.Cells(Roster()[0]))

	tbl.RequestSort("joined")
	assert.Equal(t, []string{"Santosh Rathod", "Anup Patil", "Aniket Singh"}, names(tbl.Rows()))

	tbl.RequestSort("hours")
	assert.Equal(t, []string{"Aniket Singh", "Anup Patil", "Santosh Rathod"}, names(tbl.Rows()))
}

func TestHoursUseThousandsSeparator(t *testing.T) {
	m := Member{Name: "Veteran", Hours: 12345}
	tbl := datatable.New(Columns())
	assert.Equal(t, "12,345 h", tbl.Cells(m)[3])
}

func TestTSV(t *testing.T) {
	out := TSV(Roster()[:1])
	assert.Equal(t, "Name\tRole\tJoined\tHours\nAnup Patil\tSeafarer\t2025-07-23\t160\n", out)
}
