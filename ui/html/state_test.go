// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package html

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/tuikit/widgets/datatable"
)

func parse(t *testing.T, raw string) *State {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return NewState(u)
}

func TestNewState(t *testing.T) {
	s := parse(t, "/crew?q=an&sort=hours&dir=desc&sel=2,0,x,-1,2&loading=1&show=true")

	assert.Equal(t, "/crew", s.Path)
	assert.Equal(t, "an", s.Query)
	assert.Equal(t, datatable.SortState{Key: "hours", Direction: datatable.SortDescending}, s.Sort)
	assert.Equal(t, []int{0, 2}, s.Selected)
	assert.True(t, s.Loading)
	assert.True(t, s.ShowPassword)
}

func TestNewState_RowKeys(t *testing.T) {
	s := parse(t, "/?key=b&key=a&key=&key=a")
	assert.Equal(t, []string{"a", "b"}, s.Keys)

	assert.Equal(t, "/?key=a&key=c", s.WithSelectedKeys([]string{"c", "a"}).String())
	assert.Equal(t, "/", s.WithSelectedKeys(nil).String())
	assert.Equal(t, []string{"a", "b"}, s.Keys)
}

func TestNewState_MalformedSortIsDropped(t *testing.T) {
	assert.False(t, parse(t, "/?sort=name&dir=sideways").Sort.Active())
	assert.False(t, parse(t, "/?sort=name").Sort.Active())
	assert.False(t, parse(t, "/?dir=asc").Sort.Active())
	assert.False(t, parse(t, "/?loading=maybe").Loading)
}

func TestState_URLRoundTrip(t *testing.T) {
	s := &State{
		Path:         "/",
		Query:        "a b&c",
		Sort:         datatable.SortState{Key: "name", Direction: datatable.SortAscending},
		Selected:     []int{1, 3},
		Keys:         []string{"Anup Patil", "b&c"},
		Loading:      true,
		ShowPassword: true,
	}

	assert.Equal(t, s, parse(t, s.ToURL()))
	assert.Equal(t, "/", (&State{}).ToURL())
}

func TestState_LinksDoNotMutate(t *testing.T) {
	s := parse(t, "/?q=an&sel=1")

	assert.Equal(t, "/?sel=1", s.WithQuery("").String())
	assert.Equal(t, "/?q=an", s.WithSelection(nil).String())
	assert.Equal(t, "/?dir=asc&q=an&sel=1&sort=name", s.WithSort(datatable.SortState{Key: "name", Direction: datatable.SortAscending}).String())
	assert.Equal(t, "/?loading=1&q=an&sel=1", s.WithLoadingToggled().String())
	assert.Equal(t, "/?q=an&sel=1&show=1", s.WithPasswordToggled().String())

	assert.Equal(t, "an", s.Query)
	assert.Equal(t, []int{1}, s.Selected)
}
