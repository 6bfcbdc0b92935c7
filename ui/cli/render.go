// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/ui/html"
	crewview "github.com/toeirei/tuikit/ui/tui/models/views/crew"
)

const (
	snapshotWidth  = 100
	snapshotHeight = 40
)

func (a *app) crewOptions(filter string) crewview.Options {
	v, _, _ := resolveBuildVersion(nil)
	return crewview.Options{
		Query:           filter,
		FilterMode:      a.cfg.Demo.FilterMode,
		EmptyText:       a.cfg.Demo.EmptyText,
		StableSelection: a.cfg.Demo.StableSelection,
		Version:         v,
	}
}

func (a *app) pageOptions() html.PageOptions {
	v, _, _ := resolveBuildVersion(nil)
	return html.PageOptions{
		FilterMode:      a.cfg.Demo.FilterMode,
		EmptyText:       a.cfg.Demo.EmptyText,
		StableSelection: a.cfg.Demo.StableSelection,
		Version:         v,
	}
}

// snapshot renders one frame of the crew view without colors.
func snapshot(opts crewview.Options, width int) string {
	m := crewview.New(opts)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: width, Height: snapshotHeight})
	return strings.TrimRight(ansi.Strip(m.View()), "\n")
}

func renderHTML(w io.Writer, filter string, opts html.PageOptions) error {
	r, err := html.NewRenderer()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	state := &html.State{Path: "/", Query: filter}
	if err := r.Page(w, html.BuildPage(state, opts)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		filter string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo once to stdout",
		Long: `Render the crew demo once and write it to stdout, either as the
plain text of a terminal frame or as a static HTML page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "text":
				_, err := fmt.Fprintln(out, snapshot(a.crewOptions(filter), snapshotWidth))
				return err
			case "html":
				return renderHTML(out, filter, a.pageOptions())
			default:
				return fmt.Errorf("unknown format %q (want text or html)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", `Output format ("text", "html")`)
	cmd.Flags().StringVar(&filter, "filter", "", "Crew name filter")
	return cmd
}
