package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ApplyInputTheme(&ti, theme)
	ti.Prompt = "/ "
	return ti
}

// ApplyInputTheme restyles an existing input, keeping its prompt and value.
func ApplyInputTheme(ti *textinput.Model, theme *Theme) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
}

// NewCommandInput creates the command palette input.
func NewCommandInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "new tab, open <url>, toggle theme, bookmarks, history...")
	ti.Prompt = "> "
	ti.CharLimit = 2048
	return ti
}

// NewURLInput creates a URL input field.
func NewURLInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Enter URL or search query...")
	ti.Prompt = "→ "
	ti.CharLimit = 2048
	return ti
}

// NewNameInput creates the bookmark name prompt.
func NewNameInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Bookmark name (blank uses the page title)")
	ti.Prompt = "★ "
	ti.CharLimit = 256
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
