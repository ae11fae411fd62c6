// Package url turns what the user typed into something a page host can load.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// DefaultStartURL is opened whenever no explicit address is given.
	DefaultStartURL = "https://search.brave.com/"
	// DefaultSearchPrefix is prepended to percent-encoded search queries.
	DefaultSearchPrefix = "https://search.brave.com/search?q="
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z]+://`)

// Formatter resolves typed text into a navigable URL.
// It is immutable; use WithSearchPrefix to switch engines.
type Formatter struct {
	defaultStart string
	searchPrefix string
}

// NewFormatter creates a formatter. Empty arguments fall back to the package defaults.
func NewFormatter(defaultStart, searchPrefix string) *Formatter {
	if strings.TrimSpace(defaultStart) == "" {
		defaultStart = DefaultStartURL
	}
	if strings.TrimSpace(searchPrefix) == "" {
		searchPrefix = DefaultSearchPrefix
	}
	return &Formatter{defaultStart: defaultStart, searchPrefix: searchPrefix}
}

// DefaultStartURL returns the configured start address.
func (f *Formatter) DefaultStartURL() string {
	return f.defaultStart
}

// SearchPrefix returns the configured search engine prefix.
func (f *Formatter) SearchPrefix() string {
	return f.searchPrefix
}

// WithSearchPrefix returns a copy using another search engine.
func (f *Formatter) WithSearchPrefix(prefix string) *Formatter {
	return NewFormatter(f.defaultStart, prefix)
}

// Format resolves text. Check order matters:
//
//	""              → default start address
//	"x://..." data: → unchanged
//	contains space  → search
//	contains dot    → https:// + text (unless it already has an http(s) scheme)
//	anything else   → search
//
// Scheme detection runs before the space check so "my site.com" is a search
// and "https://a.io/q?x=a b" is not.
func (f *Formatter) Format(text string) string {
	text = strings.TrimSpace(text)

	switch {
	case text == "":
		return f.defaultStart
	case HasExplicitScheme(text):
		return text
	case strings.Contains(text, " "):
		return f.Search(text)
	case strings.Contains(text, "."):
		if hasHTTPScheme(text) {
			return text
		}
		return "https://" + text
	default:
		return f.Search(text)
	}
}

// Search builds the search URL for query.
func (f *Formatter) Search(query string) string {
	return f.searchPrefix + EncodeQueryComponent(query)
}

// HasExplicitScheme reports whether text starts with "scheme://" or is a data URI.
func HasExplicitScheme(text string) bool {
	return schemePattern.MatchString(text) || strings.HasPrefix(text, "data:")
}

// hasHTTPScheme reports whether text starts with "http:" or "https:", in any case.
// Bare hosts such as httpbin.org have no scheme.
func hasHTTPScheme(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:")
}

// LooksLikeURL checks if the input would be loaded as an address rather than searched.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if HasExplicitScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain returns the lowercased host of rawURL without port or a
// leading "www.", or "" for addresses without a host (data:, about:).
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
