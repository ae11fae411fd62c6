package port

import "github.com/bnema/atom/internal/domain/entity"

// ShellUI is the surrounding chrome: tab strip, address field, lists.
// Calls arrive on the control thread.
type ShellUI interface {
	// Render redraws from an immutable session snapshot.
	Render(session entity.SessionSnapshot)
	// SetAddress mirrors text into the address field.
	SetAddress(text string)
}

// ThemeApplier applies a theme to the shell.
type ThemeApplier interface {
	ApplyTheme(theme entity.Theme)
}
