package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config, database and stored data status",
	Long:  `Display the config file, the side-store database with its schema version, and how many bookmarks and history entries it holds.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}
	return renderStatus(cmd.OutOrStdout(), app)
}

func renderStatus(w io.Writer, app *cli.App) error {
	st := app.Theme

	configFile := app.Manager.GetConfigFile()
	if configFile == "" {
		configFile = "(defaults)"
	}

	database := app.Config.Database.Path
	schema := "in memory (private mode)"
	version, ok, err := app.SchemaVersion()
	switch {
	case err != nil:
		return err
	case ok:
		schema = fmt.Sprintf("%d", version)
	default:
		database = "none"
	}

	rows := [][2]string{
		{"config", configFile},
		{"database", database},
		{"schema", schema},
		{"page host", app.Config.PageHost.Kind},
		{"bookmarks", fmt.Sprintf("%d", len(app.Data.Bookmarks()))},
		{"history", fmt.Sprintf("%d", len(app.Data.History()))},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", st.Subtle.Render(fmt.Sprintf("%-10s", r[0])), st.Normal.Render(r[1])); err != nil {
			return err
		}
	}
	return nil
}
