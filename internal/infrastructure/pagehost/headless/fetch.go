package headless

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

type fetchResult struct {
	url   string
	title string
	err   error
}

// fetch resolves target to its final address and title. data: and about:
// addresses never touch the network.
func (h *Host) fetch(ctx context.Context, target string) fetchResult {
	switch {
	case strings.HasPrefix(target, "about:"):
		return fetchResult{url: target}
	case strings.HasPrefix(target, "data:"):
		return fetchData(target)
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return fetchResult{url: target, err: fmt.Errorf("invalid address: %w", err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fetchResult{url: target, err: fmt.Errorf("unsupported scheme %q", parsed.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fetchResult{url: target, err: err}
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := h.client.Do(req)
	if err != nil {
		return fetchResult{url: target, err: err}
	}
	defer resp.Body.Close()

	final := target
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}

	if !isHTML(resp.Header.Get("Content-Type")) {
		return fetchResult{url: final}
	}
	return fetchResult{url: final, title: extractTitle(io.LimitReader(resp.Body, maxBodyBytes))}
}

func fetchData(target string) fetchResult {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(target, "data:"), ",")
	if !ok {
		return fetchResult{url: target, err: fmt.Errorf("malformed data address")}
	}

	var body string
	if strings.HasSuffix(meta, ";base64") {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return fetchResult{url: target, err: fmt.Errorf("malformed data payload: %w", err)}
		}
		body = string(raw)
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			unescaped = payload
		}
		body = unescaped
	}

	mediaType := strings.TrimSuffix(meta, ";base64")
	if mediaType != "" && !isHTML(mediaType) {
		return fetchResult{url: target}
	}
	return fetchResult{url: target, title: extractTitle(strings.NewReader(body))}
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return ct == "" || strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

// extractTitle returns the whitespace-collapsed text of the first <title>.
func extractTitle(r io.Reader) string {
	z := html.NewTokenizer(r)
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "title":
				inTitle = true
			case "body":
				return ""
			}
		case html.TextToken:
			if inTitle {
				return strings.Join(strings.Fields(string(z.Text())), " ")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "title" {
				return ""
			}
		}
	}
}
