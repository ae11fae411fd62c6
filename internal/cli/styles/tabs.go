package styles

import (
	"github.com/charmbracelet/lipgloss"
)

const maxTabLabel = 24

// TabStrip renders a horizontal tab bar.
type TabStrip struct {
	Labels []string
	Active int
	Width  int
	theme  *Theme
}

// NewTabStrip creates a tab bar with the given labels.
func NewTabStrip(theme *Theme, active int, labels ...string) TabStrip {
	return TabStrip{Labels: labels, Active: active, theme: theme}
}

// View renders the tab bar with truncated labels.
func (m TabStrip) View() string {
	tabs := make([]string, 0, len(m.Labels))
	for i, label := range m.Labels {
		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(Truncate(label, maxTabLabel)))
	}

	gap := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render("│")

	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
	if m.Width > 0 {
		return m.theme.TabBar.Width(m.Width).Render(row)
	}
	return m.theme.TabBar.Render(row)
}

// Truncate shortens s to maxLen runes, ending with an ellipsis.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 1 || len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}
