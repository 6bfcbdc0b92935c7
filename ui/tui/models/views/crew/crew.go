// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package crew is the terminal demo: a filterable, selectable crew roster
// next to a few input field variants.
package crew

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	roster "github.com/toeirei/tuikit/internal/crew"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui/models/components/button"
	"github.com/toeirei/tuikit/ui/tui/models/components/header"
	"github.com/toeirei/tuikit/ui/tui/models/components/inputfield"
	"github.com/toeirei/tuikit/ui/tui/models/components/tableview"
	"github.com/toeirei/tuikit/ui/tui/models/helpers/focusring"
	windowtitle "github.com/toeirei/tuikit/ui/tui/models/helpers/title"
	"github.com/toeirei/tuikit/ui/tui/models/views/footer"
	"github.com/toeirei/tuikit/ui/tui/styles"
	"github.com/toeirei/tuikit/ui/tui/util"
	"github.com/toeirei/tuikit/util/slicest"
	"github.com/toeirei/tuikit/widgets/datatable"
	"github.com/toeirei/tuikit/widgets/textfield"
)

const (
	title        = "tuikit"
	maxFormWidth = 60
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type Options struct {
	Members         []roster.Member
	Query           string
	FilterMode      roster.FilterMode
	EmptyText       string
	StableSelection bool
	Version         string
}

type Model struct {
	opts     Options
	keys     KeyMap
	query    string
	password string

	filter   *inputfield.Model
	secret   *inputfield.Model
	fetching *inputfield.Model
	toggle   *button.Model
	table    *tableview.Model[roster.Member]

	// focus order, parallel to the ring items
	focusables []util.Model
	ring       *focusring.Ring
	header     *header.Model
	footer     *footer.Model
	title      *windowtitle.Handler
}

func New(opts Options) *Model {
	if opts.Members == nil {
		opts.Members = roster.Roster()
	}
	m := &Model{opts: opts, keys: BaseKeyMap, query: opts.Query}

	m.filter = inputfield.New(textfield.Props{
		Label:       "Crew Name",
		Placeholder: "Enter crew name",
		HelperText:  "Type to filter crew",
		Variant:     textfield.Outlined,
		Clearable:   true,
		Value:       opts.Query,
		OnChange:    m.setQuery,
	})
	m.secret = inputfield.New(textfield.Props{
		Label:          "Password",
		Placeholder:    "Enter password",
		Variant:        textfield.Filled,
		Type:           textfield.TypePassword,
		PasswordToggle: true,
		OnChange:       m.setPassword,
	})
	m.fetching = inputfield.New(textfield.Props{
		Label:       "Loading Input",
		Placeholder: "Fetching...",
		Variant:     textfield.Ghost,
		Loading:     true,
	})
	m.toggle = button.New("Toggle Table Loading", m.toggleLoading)

	tableOpts := []datatable.Option[roster.Member]{
		datatable.WithRows(roster.Filter(opts.Members, opts.Query, opts.FilterMode)),
		datatable.WithSelectable[roster.Member](true),
		datatable.WithOnRowSelect(m.selectionChanged),
		datatable.WithEmptyText[roster.Member](opts.EmptyText),
	}
	if opts.StableSelection {
		tableOpts = append(tableOpts, datatable.WithRowKey(roster.Key))
	}
	m.table = tableview.New(datatable.New(roster.Columns(), tableOpts...))

	m.focusables = []util.Model{m.filter, m.secret, m.toggle, m.table}
	m.ring = focusring.New(slicest.Map(m.focusables, func(f util.Model) util.Focusable { return f })...)
	m.footer = footer.New(util.MergeKeyMaps(m.ring.KeyMap, &m.keys))

	heading := title
	if opts.Version != "" {
		heading += " " + opts.Version
	}
	m.title = windowtitle.NewHandler(heading, " | ")
	m.header = header.New(heading)

	m.refreshKeys()
	return m
}

func (m *Model) Init() tea.Cmd {
	focusCmd, keyMap := m.ring.Focus()
	return tea.Batch(
		m.title.Init(),
		m.fetching.Init(),
		m.table.Init(),
		focusCmd,
		util.AnnounceKeyMapCmd(keyMap),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.title.Handle(msg); cmd != nil {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.header.Update(msg)
		width := min(max(msg.Width-4, 20), maxFormWidth)
		for _, f := range []*inputfield.Model{m.filter, m.secret, m.fetching} {
			f.SetWidth(width)
		}
		return m, m.footer.Update(msg)

	case util.AnnounceKeyMapMsg:
		m.refreshKeys()
		return m, m.footer.Update(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// spinner ticks and cursor blinks; each component ignores foreign ids
	return m, tea.Batch(
		m.fetching.Update(msg),
		m.filter.Update(msg),
		m.secret.Update(msg),
		m.table.Update(msg),
	)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Exit) {
		return tea.Quit
	}

	// printable view keys belong to the input while one is focused
	if !m.typing() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
			return nil
		case key.Matches(msg, m.keys.Copy):
			return m.copySelection()
		}
	}

	if cmd, ok := m.ring.Update(msg); ok {
		m.refreshKeys()
		return cmd
	}

	cmd := m.focusables[m.ring.ActiveIndex()].Update(msg)
	m.refreshKeys()
	return tea.Batch(cmd, windowtitle.Set(m.selectionSummary()))
}

func (m *Model) View() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		m.filter.View(),
		m.secret.View(),
		m.fetching.View(),
		m.toggle.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left,
			form,
			"",
			m.table.View(),
		)),
		m.footer.View(),
	)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// Query is the current filter text.
func (m *Model) Query() string { return m.query }

// Password is the value held for the password input.
func (m *Model) Password() string { return m.password }

// Table exposes the underlying table state.
func (m *Model) Table() *datatable.Table[roster.Member] { return m.table.Table }

func (m *Model) setQuery(q string) {
	m.query = q
	m.filter.SetValue(q)
	m.table.SetRows(roster.Filter(m.opts.Members, q, m.opts.FilterMode))
}

func (m *Model) setPassword(p string) {
	m.password = p
	m.secret.SetValue(p)
}

func (m *Model) toggleLoading() tea.Cmd {
	loading := !m.table.Table.Loading()
	logging.Debugf("table loading: %t", loading)
	return m.table.SetLoading(loading)
}

func (m *Model) selectionChanged(rows []roster.Member) {
	names := slicest.Map(rows, func(r roster.Member) string { return r.Name })
	logging.Infof("selected %d crew member(s): %s", len(rows), strings.Join(names, ", "))
	m.footer.SetStatus(m.selectionSummary())
}

func (m *Model) copySelection() tea.Cmd {
	rows := m.table.Table.SelectedRows()
	if len(rows) == 0 {
		m.footer.SetStatus("nothing selected")
		return nil
	}
	if err := writeClipboard(roster.TSV(rows)); err != nil {
		logging.Errorf("copy selection: %v", err)
		m.footer.SetStatus("copy failed")
		return nil
	}
	m.footer.SetStatus(fmt.Sprintf("copied %d row(s)", len(rows)))
	return nil
}

func (m *Model) selectionSummary() string {
	n := len(m.table.Table.SelectedRows())
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d selected", n)
}

// typing reports whether a text input holds the focus.
func (m *Model) typing() bool {
	_, ok := m.focusables[m.ring.ActiveIndex()].(*inputfield.Model)
	return ok
}

func (m *Model) refreshKeys() {
	typing := m.typing()
	m.keys.Help.SetEnabled(!typing)
	m.keys.Copy.SetEnabled(!typing && m.table.Table.Selectable())
}
