// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the version
// subcommand.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/buildvars"
	"github.com/toeirei/tuikit/internal/config"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/tuikit"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// flagKeys binds config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":             "log-level",
	"log.file":              "log-file",
	"tui.alt_screen":        "alt-screen",
	"demo.filter_mode":      "filter-mode",
	"demo.empty_text":       "empty-text",
	"demo.stable_selection": "stable-selection",
	"serve.addr":            "addr",
}

// app holds what the persistent pre-run resolved for the subcommands.
type app struct {
	cfgFile   string
	verbose   bool
	cfg       config.Config
	logCloser io.Closer
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configFile, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.Load(cmd, configFile, flagKeys)
	if err != nil {
		return err
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}

	a.logCloser, err = logging.Setup(logging.Options{
		Level:      a.cfg.Log.Level,
		File:       a.cfg.Log.File,
		MaxSizeMB:  a.cfg.Log.MaxSizeMB,
		MaxBackups: a.cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	logging.Debugf("config loaded (filter mode %s)", a.cfg.Demo.FilterMode)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// NewRootCmd creates and configures a new root cobra command. Each call
// returns an independent tree, so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "tuikit",
		Short: "tuikit is a showcase for terminal and HTML UI widgets.",
		Long: `tuikit renders a text field and a sortable, selectable data table
in the terminal and as static HTML. The demo is a small crew roster.

Running without a subcommand launches the interactive TUI. When stdout is
not a terminal a plain text snapshot is printed instead.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			opts := a.crewOptions(filter)

			if !isTerminal(os.Stdout) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), snapshot(opts, snapshotWidth))
				return err
			}

			// the TUI owns the terminal, keep stderr logs off it
			if a.cfg.Log.File == "" {
				logging.L.SetOutput(io.Discard)
			}
			return tui.Run(cmd.Context(), tui.Options{AltScreen: a.cfg.TUI.AltScreen, Crew: opts})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", `Log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log-file", "", "Write logs to a rotated file instead of stderr")
	cmd.PersistentFlags().String("filter-mode", "substring", `Crew filter matching ("substring", "fuzzy")`)
	cmd.PersistentFlags().String("empty-text", "", "Message shown when no crew member matches")
	cmd.PersistentFlags().Bool("stable-selection", false, "Keep selected crew members across filtering and sorting")
	cmd.Flags().Bool("alt-screen", true, "Run the TUI in the alternate screen buffer")
	cmd.Flags().String("filter", "", "Initial crew name filter")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newRenderCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		versionCmd,
	)
	return cmd
}

func compositeVersion(v, c, d string) string {
	s := v
	if c != "" && c != "dev" {
		s += " (" + c + ")"
	}
	if d != "" {
		s += " built: " + d
	}
	return s
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the ldflags commit to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
