package command

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/atom/internal/domain/url"
)

// Usage lists every palette command, shown when the palette opens.
const Usage = "Commands: new tab, open <url>, toggle theme, bookmarks, history"

// Hint describes one palette command.
type Hint struct {
	Keyword string
	Help    string
}

var catalog = []Hint{
	{Keyword: keywordNewTab, Help: "new tab (open with default homepage)"},
	{Keyword: keywordOpen + " <url>", Help: "open https://example.com or open google.com"},
	{Keyword: keywordToggleTheme, Help: "toggle theme"},
	{Keyword: keywordBookmarks, Help: "show bookmarks"},
	{Keyword: keywordHistory, Help: "show history"},
}

type hintSource []Hint

func (h hintSource) String(i int) string { return h[i].Keyword }
func (h hintSource) Len() int            { return len(h) }

// Hints returns the palette hints for partially typed input, best match first.
// Blank input yields the full catalog. Once the text is a complete "open <x>",
// only the open hint remains since anything after it is a target, not a keyword.
func Hints(text string) []Hint {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		out := make([]Hint, len(catalog))
		copy(out, catalog)
		return out
	}

	if strings.HasPrefix(t, keywordOpen+" ") {
		return []Hint{catalog[1]}
	}

	matches := fuzzy.FindFrom(t, hintSource(catalog))
	out := make([]Hint, 0, len(matches))
	for _, m := range matches {
		out = append(out, catalog[m.Index])
	}
	return out
}

// HintLine joins hints for a single status line. Text that matches no
// command says whether enter will load it as an address or search for it.
func HintLine(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return Usage
	}
	hints := Hints(t)
	if len(hints) == 0 {
		if url.LooksLikeURL(t) {
			return "enter: go to " + t
		}
		return "enter: search for " + t
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Help)
	}
	return strings.Join(parts, " • ")
}
