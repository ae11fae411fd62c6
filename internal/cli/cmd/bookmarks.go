package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/entity"
)

var (
	bookmarksJSON bool
	bookmarkName  string
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List and manage bookmarks",
	Long:  `List, add and remove the bookmarks shown by the shell's "bookmarks" command.`,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksAdd,
}

var bookmarksRmCmd = &cobra.Command{
	Use:     "rm <n>",
	Aliases: []string{"remove"},
	Short:   "Remove the n-th bookmark (as numbered by list)",
	Args:    cobra.ExactArgs(1),
	RunE:    runBookmarksRm,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAddCmd, bookmarksRmCmd)

	bookmarksListCmd.Flags().BoolVar(&bookmarksJSON, "json", false, "output as JSON")
	bookmarksAddCmd.Flags().StringVar(&bookmarkName, "name", "", "display name (defaults to the url)")
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}

	bookmarks := app.Data.Bookmarks()
	if bookmarksJSON {
		return writeJSON(cmd.OutOrStdout(), bookmarks)
	}
	return renderBookmarks(cmd.OutOrStdout(), app.Theme, bookmarks)
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}

	bm, err := app.Data.AddBookmark(app.Ctx(), bookmarkName, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Highlight.Render("★ "+bm.Name)+" "+app.Theme.Subtle.Render(bm.URL))
	return nil
}

func runBookmarksRm(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if err := app.LoadData(); err != nil {
		return err
	}

	if err := app.Data.RemoveBookmark(app.Ctx(), index); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(fmt.Sprintf("removed bookmark %d", index+1)))
	return nil
}

// parseIndex converts a 1-based position to a slice index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid bookmark number %q: expected a positive integer", arg)
	}
	return n - 1, nil
}

func renderBookmarks(w io.Writer, theme *styles.Theme, bookmarks []entity.Bookmark) error {
	if len(bookmarks) == 0 {
		_, err := fmt.Fprintln(w, theme.Subtle.Render("no bookmarks yet"))
		return err
	}

	rows := make([]table.Row, 0, len(bookmarks))
	for i, bm := range bookmarks {
		rows = append(rows, styles.BookmarkRow(i+1, styles.Truncate(bm.Name, 32), styles.Truncate(bm.URL, 48)))
	}
	t := styles.NewStyledTable(theme, styles.BookmarkTableColumns(), rows, 88, len(rows)+2)
	_, err := fmt.Fprintln(w, t.View())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
