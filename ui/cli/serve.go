// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/ui/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTML demo",
		Long: `Serve the HTML demo page. All widget state travels in the query
string, so the server keeps nothing between requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.Serve(cmd.Context(), a.cfg.Serve.Addr, a.pageOptions())
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:8080", "Listen address")
	return cmd
}
