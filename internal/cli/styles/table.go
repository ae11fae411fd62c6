package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// BookmarkTableColumns returns columns for the bookmark listing.
func BookmarkTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 32},
		{Title: "URL", Width: 48},
	}
}

// HistoryTableColumns returns columns for the history listing.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 16},
		{Title: "URL", Width: 64},
	}
}

// BookmarkRow converts a bookmark to a table row.
func BookmarkRow(index int, name, url string) table.Row {
	return table.Row{strconv.Itoa(index), name, url}
}

// HistoryRow converts a history entry to a table row.
func HistoryRow(when, url string) table.Row {
	return table.Row{when, url}
}
