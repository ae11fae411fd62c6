// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (Chromium, HTTP fetcher, terminal).
package port

import (
	"context"
	"errors"
)

// ErrHostUnavailable is returned when a page view can no longer answer,
// typically because it was destroyed or its engine went away.
var ErrHostUnavailable = errors.New("page host unavailable")

// PageCallbacks defines callback handlers for page view events.
// Hosts invoke them from their own goroutines; receivers must not touch
// shared state directly.
type PageCallbacks struct {
	// OnNavigate is called when the view commits a new address.
	OnNavigate func(url string)
	// OnTitleChanged is called when the page title changes.
	OnTitleChanged func(title string)
}

// PageView is one isolated content view hosted by a page host.
// Navigation requests are fire-and-forget: results arrive through PageCallbacks.
type PageView interface {
	// Load starts loading url. Errors only report a request the host refused.
	Load(ctx context.Context, url string) error
	// Reload reloads the current page.
	Reload(ctx context.Context) error
	// GoBack navigates back in the view's own history.
	GoBack(ctx context.Context) error
	// GoForward navigates forward in the view's own history.
	GoForward(ctx context.Context) error
	// CanGoBack reports whether GoBack would do anything.
	CanGoBack() bool
	// CanGoForward reports whether GoForward would do anything.
	CanGoForward() bool

	// CurrentURL returns the committed address. Empty before the first load.
	CurrentURL() (string, error)
	// CurrentTitle returns the page title, if any.
	CurrentTitle() (string, error)

	// SetVisible shows or hides the view.
	SetVisible(visible bool)
	// Destroy releases the view. Further calls return ErrHostUnavailable.
	Destroy()
}

// PageViewFactory creates page views.
type PageViewFactory interface {
	// Create builds a new view and starts loading initialURL.
	Create(ctx context.Context, initialURL string, callbacks PageCallbacks) (PageView, error)
	// Close shuts the host down. Views created by it become unavailable.
	Close() error
}
