package shell

import (
	"fmt"
	"strings"

	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/command"
)

const minListRows = 5

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.style
	sections := []string{m.tabBar(), m.addressLine(), m.body()}

	switch m.mode {
	case modePalette:
		sections = append(sections,
			st.InputBox(m.palette.View(), true),
			st.Subtle.Render(command.HintLine(m.palette.Value())),
		)
	case modeBookmarkName:
		sections = append(sections, st.InputBox(m.name.View(), true))
	}

	if m.status != "" {
		style := st.StatusBar
		if m.failed {
			style = st.ErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	m.help.ShowAll = m.showHelp
	sections = append(sections, m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

func (m *Model) tabBar() string {
	labels := make([]string, 0, len(m.rendering.Tabs))
	active := -1
	for i, row := range m.rendering.Tabs {
		labels = append(labels, row.Label)
		if row.Active {
			active = i
		}
	}
	strip := styles.NewTabStrip(m.style, active, labels...)
	strip.Width = m.width
	return strip.View()
}

func (m *Model) addressLine() string {
	return m.style.InputBox(m.address.View(), m.mode == modeAddress)
}

func (m *Model) body() string {
	switch m.mode {
	case modeBookmarks:
		return m.bookmarkList()
	case modeHistory:
		return m.historyList()
	}
	if m.onHome() {
		return m.favoritesView()
	}
	return m.pageView()
}

func (m *Model) pageView() string {
	st := m.style
	for _, row := range m.rendering.Tabs {
		if row.Active {
			return st.Box.Render(st.Title.Render(row.Label) + "\n" + st.Subtle.Render(row.URL))
		}
	}
	return ""
}

func (m *Model) favoritesView() string {
	st := m.style
	var b strings.Builder
	b.WriteString(st.BoxHeader.Render("Favorites"))
	for i, fav := range Favorites {
		b.WriteString("\n")
		b.WriteString(st.Badge.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(" ")
		b.WriteString(st.Normal.Render(fav.Name))
		b.WriteString("  ")
		b.WriteString(st.ListItemDesc.Render(fav.URL))
	}
	return st.Box.Render(b.String())
}

func (m *Model) bookmarkList() string {
	st := m.style
	rows := m.rendering.Bookmarks
	if len(rows) == 0 {
		return st.Box.Render(st.BoxHeader.Render("Bookmarks") + "\n" + st.Subtle.Render("No bookmarks yet. Press C-d on a page to add one."))
	}

	lines := []string{st.BoxHeader.Render("Bookmarks")}
	start, end := m.window(len(rows))
	for i := start; i < end; i++ {
		row := rows[i]
		text := fmt.Sprintf("%d. %s  %s", row.Index+1, row.Name, st.ListItemDesc.Render(row.URL))
		lines = append(lines, m.listItem(i, text))
	}
	return st.Box.Render(strings.Join(lines, "\n"))
}

func (m *Model) historyList() string {
	st := m.style
	rows := m.rendering.History
	if len(rows) == 0 {
		return st.Box.Render(st.BoxHeader.Render("History") + "\n" + st.Subtle.Render("No history yet."))
	}

	lines := []string{st.BoxHeader.Render("History")}
	start, end := m.window(len(rows))
	for i := start; i < end; i++ {
		row := rows[i]
		text := st.ListItemDesc.Render(row.When) + "  "
		if row.Domain != "" {
			text += st.Highlight.Render(row.Domain) + "  "
		}
		text += row.URL
		lines = append(lines, m.listItem(i, text))
	}
	return st.Box.Render(strings.Join(lines, "\n"))
}

func (m *Model) listItem(i int, text string) string {
	if i == m.selected {
		return m.style.ListItemSelected.Render(text)
	}
	return m.style.ListItem.Render(text)
}

// window returns the slice of n rows that fits the terminal and keeps the
// selection visible.
func (m *Model) window(n int) (start, end int) {
	size := max(minListRows, m.height-12)
	if n <= size {
		return 0, n
	}
	start = m.selected - size/2
	start = max(0, min(start, n-size))
	return start, start + size
}
