package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/entity"
)

var (
	historyJSON bool
	historyMax  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and clear history",
	Long:  `Show recently visited addresses, newest first, or clear them.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

// HistoryItem is the JSON form of a history entry.
type HistoryItem struct {
	URL       string    `json:"url"`
	VisitedAt time.Time `json:"visited_at"`
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd)

	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyListCmd.Flags().IntVar(&historyMax, "max", 0, "maximum entries to show (defaults to history.display_limit)")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}

	limit := historyMax
	if limit <= 0 {
		limit = app.Config.History.DisplayLimit
	}
	entries := limitHistory(app.Data.History(), limit)

	if historyJSON {
		items := make([]HistoryItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, HistoryItem{URL: e.URL, VisitedAt: e.Timestamp})
		}
		return writeJSON(cmd.OutOrStdout(), items)
	}
	return renderHistory(cmd.OutOrStdout(), app.Theme, entries)
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}

	n := len(app.Data.History())
	app.Data.ClearHistory(app.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(fmt.Sprintf("cleared %d history entries", n)))
	return nil
}

func limitHistory(entries []entity.HistoryEntry, limit int) []entity.HistoryEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func renderHistory(w io.Writer, theme *styles.Theme, entries []entity.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, theme.Subtle.Render("history is empty"))
		return err
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, styles.HistoryRow(e.Timestamp.Local().Format("2006-01-02 15:04"), styles.Truncate(e.URL, 64)))
	}
	t := styles.NewStyledTable(theme, styles.HistoryTableColumns(), rows, 82, len(rows)+2)
	_, err := fmt.Fprintln(w, t.View())
	return err
}
