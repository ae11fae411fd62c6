// Package cmd provides Cobra CLI commands for atom.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/cli"
	"github.com/bnema/atom/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	private   bool
	rootCmd   = &cobra.Command{
		Use:   "atom [url]",
		Short: "A tabbed keyboard browser shell for the terminal",
		Long: `Atom - a minimal tabbed browser shell driven from the keyboard.

Features:
  - Tabs with a command palette (ctrl+k)
  - Address bar that turns plain words into a search
  - Bookmarks and history kept in a local SQLite side-store
  - Dark and light themes, toggled at runtime
  - Headless or Chromium (playwright) page host

Run 'atom' or 'atom browse [url]' to open the shell, or use the
subcommands to manage bookmarks, history and configuration.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Context(), cli.Options{
				Private:     private,
				Interactive: isInteractive(cmd),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runBrowse,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&private, "private", false, "keep bookmarks, history and theme in memory only")
}

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return false
		}
	}
	return true
}

func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd == browseCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
