package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/cli"
)

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Open the browser shell",
	Long: `Open the terminal browser shell.

If a URL or search is provided, the first tab opens there. Otherwise it
opens the configured start page.

Examples:
  atom browse                  # Open the start page
  atom browse example.com      # Open https://example.com
  atom browse --private go     # Search for "go" without saving history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var initialURL string
	if len(args) > 0 {
		initialURL = args[0]
	}
	return cli.Browse(app.Ctx(), app, initialURL)
}
