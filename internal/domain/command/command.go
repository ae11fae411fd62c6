// Package command parses command palette input into typed commands.
// Parsing is decoupled from execution so it can be tested without a session.
package command

import "strings"

// Kind tags which command a line parsed to.
type Kind int

const (
	// Empty is blank input; executing it does nothing.
	Empty Kind = iota
	// NewTab opens a tab at the default start address.
	NewTab
	// Open opens Arg in a new tab.
	Open
	// ToggleTheme flips between dark and light.
	ToggleTheme
	// ShowBookmarks asks the UI to surface the bookmark list.
	ShowBookmarks
	// ShowHistory asks the UI to surface the history list.
	ShowHistory
	// Navigate loads Arg in the active tab.
	Navigate
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case NewTab:
		return "new_tab"
	case Open:
		return "open"
	case ToggleTheme:
		return "toggle_theme"
	case ShowBookmarks:
		return "bookmarks"
	case ShowHistory:
		return "history"
	case Navigate:
		return "navigate"
	default:
		return "unknown"
	}
}

const (
	keywordNewTab      = "new tab"
	keywordOpen        = "open"
	keywordToggleTheme = "toggle theme"
	keywordBookmarks   = "bookmarks"
	keywordHistory     = "history"
)

// Command is a parsed palette line.
type Command struct {
	Kind Kind
	// Arg is the raw target for Open and Navigate. It is not formatted.
	Arg string
}

// Parse turns one line of input into a Command.
//
// Keywords match exactly and case-sensitively after trimming. "open" must be
// followed by a space (a tab does not count) before its target; the target is
// trimmed at both ends but internal whitespace is kept. Anything that is not a keyword
// navigates the active tab to the whole trimmed line.
func Parse(input string) Command {
	t := strings.TrimSpace(input)

	switch t {
	case "":
		return Command{Kind: Empty}
	case keywordNewTab:
		return Command{Kind: NewTab}
	case keywordToggleTheme:
		return Command{Kind: ToggleTheme}
	case keywordBookmarks:
		return Command{Kind: ShowBookmarks}
	case keywordHistory:
		return Command{Kind: ShowHistory}
	}

	if rest, ok := cutOpen(t); ok {
		return Command{Kind: Open, Arg: rest}
	}

	return Command{Kind: Navigate, Arg: t}
}

// cutOpen splits "open <rest>". Since t is already trimmed, a bare "open"
// or "open" followed only by spaces never matches.
func cutOpen(t string) (string, bool) {
	if !strings.HasPrefix(t, keywordOpen+" ") {
		return "", false
	}
	rest := strings.TrimSpace(t[len(keywordOpen):])
	if rest == "" {
		return "", false
	}
	return rest, true
}
