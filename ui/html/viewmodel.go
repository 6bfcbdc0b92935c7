// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package html

import (
	"regexp"
	"slices"

	"github.com/google/safehtml"
	"github.com/toeirei/tuikit/util/slicest"
	"github.com/toeirei/tuikit/widgets/datatable"
	"github.com/toeirei/tuikit/widgets/textfield"
)

var unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// identifier turns a widget id into an HTML id. Every id gets the same
// prefix, so label/input/description references stay consistent.
func identifier(id string) safehtml.Identifier {
	return safehtml.IdentifierFromConstantPrefix("tk", unsafeIDChars.ReplaceAllString(id, "_"))
}

// FieldLinks are the targets of the clear and show/hide controls.
type FieldLinks struct {
	Clear            safehtml.URL
	ToggleVisibility safehtml.URL
}

type TextFieldView struct {
	ID      safehtml.Identifier
	DescID  safehtml.Identifier
	Name    safehtml.Identifier
	HasName bool

	Label       string
	Placeholder string
	Value       string
	Type        string
	Variant     string
	Size        string

	Disabled bool
	Loading  bool
	Invalid  bool

	Description textfield.Description

	ShowClear bool
	ClearURL  safehtml.URL

	ShowToggle  bool
	Showing     bool
	ToggleLabel string
	ToggleURL   safehtml.URL
}

// NewTextField derives the render model of f. An empty name leaves the
// input out of form submission.
func NewTextField(f *textfield.Field, name safehtml.Identifier, links FieldLinks) TextFieldView {
	props := f.Props()
	return TextFieldView{
		ID:      identifier(f.ID()),
		DescID:  identifier(f.DescriptionID()),
		Name:    name,
		HasName: name.String() != "",

		Label:       props.Label,
		Placeholder: props.Placeholder,
		Value:       f.Value(),
		Type:        string(f.EffectiveType()),
		Variant:     props.Variant.String(),
		Size:        props.Size.String(),

		Disabled: f.Inactive(),
		Loading:  f.ShowSpinner(),
		Invalid:  f.Invalid(),

		Description: f.Description(),

		ShowClear: f.ShowClear(),
		ClearURL:  links.Clear,

		ShowToggle:  f.ShowToggle(),
		Showing:     f.Showing(),
		ToggleLabel: f.ToggleLabel(),
		ToggleURL:   links.ToggleVisibility,
	}
}

// TableLinks builds the targets of header and checkbox links from the
// state they lead to. Indices are display indices of the current rows.
type TableLinks interface {
	Sort(next datatable.SortState) safehtml.URL
	// Toggle is the page after a row toggle left exactly indices selected
	// among the displayed rows.
	Toggle(indices []int) safehtml.URL
	// SelectOnly is the page with exactly indices selected.
	SelectOnly(indices []int) safehtml.URL
}

type HeaderView struct {
	Title     string
	Sortable  bool
	Indicator string
	AriaSort  string
	SortURL   safehtml.URL
}

type RowView struct {
	// Number is the 1-based display position used in labels.
	Number    int
	Selected  bool
	ToggleURL safehtml.URL
	Cells     []string
}

type TableView struct {
	Selectable   bool
	AllSelected  bool
	ToggleAllURL safehtml.URL

	Headers []HeaderView

	Loading  bool
	ShowRows bool
	Message  string
	ColSpan  int
	Rows     []RowView
}

func NewTable[T any](t *datatable.Table[T], links TableLinks) TableView {
	sort := t.SortState()
	selected := t.SelectedIndices()
	rows := t.Rows()

	view := TableView{
		Selectable:  t.Selectable(),
		AllSelected: t.AllSelected(),
		Headers: slicest.Map(t.Headers(), func(h datatable.Header) HeaderView {
			hv := HeaderView{
				Title:     h.Title,
				Sortable:  h.Sortable,
				Indicator: h.Indicator(),
				AriaSort:  h.AriaSort(),
			}
			if h.Sortable {
				hv.SortURL = links.Sort(sort.Next(h.Key))
			}
			return hv
		}),
		Loading:  t.Body() == datatable.BodyLoading,
		ShowRows: t.Body() == datatable.BodyRows,
		Message:  t.Message(),
		ColSpan:  t.ColSpan(),
	}

	if view.Selectable {
		var all []int
		if !view.AllSelected {
			all = make([]int, len(rows))
			for i := range rows {
				all[i] = i
			}
		}
		view.ToggleAllURL = links.SelectOnly(all)
	}

	if view.ShowRows {
		view.Rows = slicest.MapI(rows, func(i int, row T) RowView {
			rv := RowView{Number: i + 1, Cells: t.Cells(row)}
			if view.Selectable {
				rv.Selected = t.IsSelected(i)
				rv.ToggleURL = links.Toggle(toggled(selected, i))
			}
			return rv
		})
	}
	return view
}

// toggled returns indices with i added or removed, ascending.
func toggled(indices []int, i int) []int {
	pos, found := slices.BinarySearch(indices, i)
	if found {
		return slices.Delete(slices.Clone(indices), pos, pos+1)
	}
	return slices.Insert(slices.Clone(indices), pos, i)
}
