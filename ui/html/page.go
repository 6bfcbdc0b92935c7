// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package html

import (
	"slices"
	"strings"

	"github.com/google/safehtml"
	"github.com/toeirei/tuikit/internal/crew"
	"github.com/toeirei/tuikit/util/slicest"
	"github.com/toeirei/tuikit/widgets/datatable"
	"github.com/toeirei/tuikit/widgets/textfield"
)

const pageTitle = "tuikit crew roster"

type PageOptions struct {
	Members         []crew.Member
	FilterMode      crew.FilterMode
	EmptyText       string
	StableSelection bool
	Version         string
}

type HiddenInput struct {
	Name  safehtml.Identifier
	Value string
}

type PageView struct {
	Title   string
	Version string
	Action  safehtml.URL

	Filter   TextFieldView
	Password TextFieldView
	Fetching TextFieldView
	// Hidden carries the rest of the state through the filter form.
	Hidden []HiddenInput

	ToggleLoadingURL safehtml.URL
	Table            TableView
	Status           string
}

// stateLinks points table controls at the page state they produce. With
// stable selection the links carry row keys instead of display indices.
type stateLinks struct {
	s      *State
	table  *datatable.Table[crew.Member]
	stable bool
}

func (l stateLinks) Sort(next datatable.SortState) safehtml.URL { return l.s.WithSort(next) }

func (l stateLinks) Toggle(indices []int) safehtml.URL {
	if !l.stable {
		return l.s.WithSelection(indices)
	}
	// selected rows hidden by the filter stay selected
	shown := l.table.RowKeys(allIndices(len(l.table.Rows())))
	keys := slices.DeleteFunc(slices.Clone(l.s.Keys), func(k string) bool {
		return slices.Contains(shown, k)
	})
	return l.s.WithSelectedKeys(append(keys, l.table.RowKeys(indices)...))
}

func (l stateLinks) SelectOnly(indices []int) safehtml.URL {
	if !l.stable {
		return l.s.WithSelection(indices)
	}
	return l.s.WithSelectedKeys(l.table.RowKeys(indices))
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// BuildTable restores the crew table for state.
func BuildTable(state *State, opts PageOptions) *datatable.Table[crew.Member] {
	members := opts.Members
	if members == nil {
		members = crew.Roster()
	}

	tableOpts := []datatable.Option[crew.Member]{
		datatable.WithRows(crew.Filter(members, state.Query, opts.FilterMode)),
		datatable.WithSelectable[crew.Member](true),
		datatable.WithLoading[crew.Member](state.Loading),
		datatable.WithEmptyText[crew.Member](opts.EmptyText),
	}
	if opts.StableSelection {
		tableOpts = append(tableOpts, datatable.WithRowKey(crew.Key))
	}

	t := datatable.New(crew.Columns(), tableOpts...)
	t.RestoreSort(state.Sort)
	if opts.StableSelection && len(state.Keys) > 0 {
		t.RestoreSelectedKeys(state.Keys)
	} else {
		t.RestoreSelection(state.Selected)
	}
	return t
}

// BuildPage derives the full demo page from the URL state.
func BuildPage(state *State, opts PageOptions) PageView {
	filter := textfield.New(textfield.Props{
		ID:          "crew-filter",
		Label:       "Crew Name",
		Placeholder: "Enter crew name",
		HelperText:  "Type to filter crew",
		Variant:     textfield.Outlined,
		Type:        textfield.TypeSearch,
		Clearable:   true,
		Value:       state.Query,
	})
	password := textfield.New(textfield.Props{
		ID:             "crew-password",
		Label:          "Password",
		Placeholder:    "Enter password",
		Variant:        textfield.Filled,
		Type:           textfield.TypePassword,
		PasswordToggle: true,
	})
	if state.ShowPassword {
		password.ToggleVisibility()
	}
	fetching := textfield.New(textfield.Props{
		ID:          "crew-fetching",
		Label:       "Loading Input",
		Placeholder: "Fetching...",
		Variant:     textfield.Ghost,
		Loading:     true,
	})

	table := BuildTable(state, opts)
	if opts.StableSelection {
		// from here on every link carries the selection as row keys
		state = state.Clone()
		state.Selected = nil
		state.Keys = table.SelectedKeys()
	} else if state.Keys != nil {
		state = state.Clone()
		state.Keys = nil
	}
	status := ""
	if rows := table.SelectedRows(); len(rows) > 0 {
		status = "Selected: " + strings.Join(slicest.Map(rows, func(m crew.Member) string { return m.Name }), ", ")
	}

	return PageView{
		Title:   pageTitle,
		Version: opts.Version,
		Action:  safehtml.URLSanitized(pathOrRoot(state.Path)),

		Filter: NewTextField(filter, safehtml.IdentifierFromConstant("q"), FieldLinks{
			Clear: state.WithQuery(""),
		}),
		Password: NewTextField(password, safehtml.Identifier{}, FieldLinks{
			ToggleVisibility: state.WithPasswordToggled(),
		}),
		Fetching: NewTextField(fetching, safehtml.Identifier{}, FieldLinks{}),
		Hidden:   hiddenInputs(state),

		ToggleLoadingURL: state.WithLoadingToggled(),
		Table:            NewTable(table, stateLinks{s: state, table: table, stable: opts.StableSelection}),
		Status:           status,
	}
}

func hiddenInputs(state *State) []HiddenInput {
	values := state.Values()
	inputs := make([]HiddenInput, 0, len(values))
	for _, p := range []struct {
		name safehtml.Identifier
		key  string
	}{
		{safehtml.IdentifierFromConstant("sort"), "sort"},
		{safehtml.IdentifierFromConstant("dir"), "dir"},
		{safehtml.IdentifierFromConstant("sel"), "sel"},
		{safehtml.IdentifierFromConstant("key"), "key"},
		{safehtml.IdentifierFromConstant("loading"), "loading"},
		{safehtml.IdentifierFromConstant("show"), "show"},
	} {
		for _, v := range values[p.key] {
			inputs = append(inputs, HiddenInput{Name: p.name, Value: v})
		}
	}
	return inputs
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
