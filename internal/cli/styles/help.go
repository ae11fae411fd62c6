package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShellKeyMap defines the browser shell keybindings.
type ShellKeyMap struct {
	Palette   key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	Address   key.Binding
	Back      key.Binding
	Forward   key.Binding
	Reload    key.Binding
	Bookmark  key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Favorites key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.NewTab, k.CloseTab, k.Address, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Address, k.Bookmark, k.Favorites},
		{k.NewTab, k.CloseTab, k.NextTab, k.PrevTab},
		{k.Back, k.Forward, k.Reload},
		{k.Up, k.Down, k.Open, k.Delete, k.Clear},
		{k.Cancel, k.Help, k.Quit},
	}
}

// DefaultShellKeyMap returns the default shell keybindings.
func DefaultShellKeyMap() ShellKeyMap {
	return ShellKeyMap{
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "commands"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close tab"),
		),
		Address: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "address"),
		),
		Back: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("M-←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("M-→", "forward"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reload"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "bookmark page"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "favorite"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	ApplyHelpTheme(&h, theme)
	return h
}

// ApplyHelpTheme restyles an existing help model.
func ApplyHelpTheme(h *help.Model, theme *Theme) {
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
}
