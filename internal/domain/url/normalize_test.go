package url

import (
	"testing"
)

const testPrefix = "https://engine.test/?q="

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter("https://start.test/", testPrefix)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "https://start.test/",
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  "https://start.test/",
		},
		{
			name:  "https scheme unchanged",
			input: "https://x.io",
			want:  "https://x.io",
		},
		{
			name:  "custom scheme unchanged",
			input: "ftp://files.example.com/a b",
			want:  "ftp://files.example.com/a b",
		},
		{
			name:  "data uri unchanged",
			input: "data:text/html,<h1>hi there</h1>",
			want:  "data:text/html,<h1>hi there</h1>",
		},
		{
			name:  "bare domain gets https",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "domain with path gets https",
			input: "example.com/path",
			want:  "https://example.com/path",
		},
		{
			name:  "host starting with http gets https",
			input: "http.example.com",
			want:  "https://http.example.com",
		},
		{
			name:  "httpbin host gets https",
			input: "httpbin.org",
			want:  "https://httpbin.org",
		},
		{
			name:  "https-named host gets https",
			input: "https.example.com",
			want:  "https://https.example.com",
		},
		{
			name:  "http scheme without slashes kept",
			input: "HTTP:example.com",
			want:  "HTTP:example.com",
		},
		{
			name:  "search query with space",
			input: "hello world",
			want:  testPrefix + "hello%20world",
		},
		{
			name:  "space wins over dot",
			input: "my site.com",
			want:  testPrefix + "my%20site.com",
		},
		{
			name:  "single word searched",
			input: "golang",
			want:  testPrefix + "golang",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  example.com  ",
			want:  "https://example.com",
		},
		{
			name:  "reserved characters escaped",
			input: "a&b=c?",
			want:  testPrefix + "a%26b%3Dc%3F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(tt.input)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatter_FormatIsIdempotent(t *testing.T) {
	f := NewFormatter("", "")
	for _, in := range []string{"", "foo.com", "hello world", "golang", "https://x.io"} {
		once := f.Format(in)
		if twice := f.Format(once); twice != once {
			t.Errorf("Format(Format(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNewFormatter_Defaults(t *testing.T) {
	f := NewFormatter(" ", "")
	if f.DefaultStartURL() != DefaultStartURL {
		t.Errorf("DefaultStartURL() = %q", f.DefaultStartURL())
	}
	if f.SearchPrefix() != DefaultSearchPrefix {
		t.Errorf("SearchPrefix() = %q", f.SearchPrefix())
	}
}

func TestFormatter_WithSearchPrefix(t *testing.T) {
	f := NewFormatter("https://start.test/", testPrefix)
	g := f.WithSearchPrefix("https://other.test/search?q=")

	if got := g.Format("a b"); got != "https://other.test/search?q=a%20b" {
		t.Errorf("Format() = %q", got)
	}
	if got := f.Format("a b"); got != testPrefix+"a%20b" {
		t.Errorf("receiver formatter changed: %q", got)
	}
	if g.DefaultStartURL() != "https://start.test/" {
		t.Errorf("DefaultStartURL() = %q", g.DefaultStartURL())
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := map[string]bool{
		"":                 false,
		"github.com":       true,
		"https://x.io":     true,
		"data:text/plain,": true,
		"hello world":      false,
		"golang":           false,
		"my site.com":      false,
	}
	for in, want := range tests {
		if got := LooksLikeURL(in); got != want {
			t.Errorf("LooksLikeURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExtractDomain(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch": "youtube.com",
		"https://github.com":            "github.com",
		"http://WWW.Example.COM:8080/a": "example.com",
		"about:blank":                   "",
		"data:text/plain,hi":            "",
		"not a url":                     "",
		"":                              "",
	}
	for in, want := range tests {
		if got := ExtractDomain(in); got != want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
