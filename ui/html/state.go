// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package html

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/safehtml"
	"github.com/toeirei/tuikit/widgets/datatable"
)

// State is the demo page state carried in the URL, so that every control
// is a plain link and the server keeps nothing between requests.
type State struct {
	Path string

	Query        string              // q: crew name filter
	Sort         datatable.SortState // sort + dir
	Selected     []int               // sel: comma separated display indices
	Keys         []string            // key: selected row keys, repeated, for stable selection
	Loading      bool                // loading: table loading flag
	ShowPassword bool                // show: password visibility
}

// NewState parses the page state from u. Malformed parameters are dropped.
func NewState(u *url.URL) *State {
	q := u.Query()
	s := &State{
		Path:  u.Path,
		Query: q.Get("q"),
	}

	if key := q.Get("sort"); key != "" {
		if dir, err := datatable.ParseSortDirection(q.Get("dir")); err == nil && dir != datatable.SortNone {
			s.Sort = datatable.SortState{Key: key, Direction: dir}
		}
	}

	if sel := q.Get("sel"); sel != "" {
		for _, part := range strings.Split(sel, ",") {
			if i, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && i >= 0 {
				s.Selected = append(s.Selected, i)
			}
		}
		slices.Sort(s.Selected)
		s.Selected = slices.Compact(s.Selected)
	}

	for _, k := range q["key"] {
		if k != "" {
			s.Keys = append(s.Keys, k)
		}
	}
	if len(s.Keys) > 0 {
		slices.Sort(s.Keys)
		s.Keys = slices.Compact(s.Keys)
	}

	s.Loading, _ = strconv.ParseBool(q.Get("loading"))
	s.ShowPassword, _ = strconv.ParseBool(q.Get("show"))
	return s
}

func (s *State) Clone() *State {
	c := *s
	c.Selected = slices.Clone(s.Selected)
	c.Keys = slices.Clone(s.Keys)
	return &c
}

// Values encodes the state, omitting parameters at their zero value.
func (s *State) Values() url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.Sort.Active() {
		q.Set("sort", s.Sort.Key)
		q.Set("dir", s.Sort.Direction.Short())
	}
	if len(s.Selected) > 0 {
		parts := make([]string, len(s.Selected))
		for i, idx := range s.Selected {
			parts[i] = strconv.Itoa(idx)
		}
		q.Set("sel", strings.Join(parts, ","))
	}
	if len(s.Keys) > 0 {
		q["key"] = slices.Clone(s.Keys)
	}
	if s.Loading {
		q.Set("loading", "1")
	}
	if s.ShowPassword {
		q.Set("show", "1")
	}
	return q
}

func (s *State) ToURL() string {
	u := &url.URL{Path: s.Path, RawQuery: s.Values().Encode()}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

func (s *State) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

// WithSort returns the URL of the page sorted by next.
func (s *State) WithSort(next datatable.SortState) safehtml.URL {
	c := s.Clone()
	c.Sort = next
	return c.ToSafeURL()
}

// WithSelection returns the URL of the page with the given selection.
func (s *State) WithSelection(indices []int) safehtml.URL {
	c := s.Clone()
	c.Selected = slices.Clone(indices)
	return c.ToSafeURL()
}

// WithSelectedKeys returns the URL of the page with the given row keys
// selected and no index selection.
func (s *State) WithSelectedKeys(keys []string) safehtml.URL {
	c := s.Clone()
	c.Selected = nil
	c.Keys = slices.Clone(keys)
	slices.Sort(c.Keys)
	return c.ToSafeURL()
}

// WithQuery returns the URL of the page filtered by q. The selection is
// kept as is.
func (s *State) WithQuery(q string) safehtml.URL {
	c := s.Clone()
	c.Query = q
	return c.ToSafeURL()
}

func (s *State) WithLoadingToggled() safehtml.URL {
	c := s.Clone()
	c.Loading = !c.Loading
	return c.ToSafeURL()
}

func (s *State) WithPasswordToggled() safehtml.URL {
	c := s.Clone()
	c.ShowPassword = !c.ShowPassword
	return c.ToSafeURL()
}
