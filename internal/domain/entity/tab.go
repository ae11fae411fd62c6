package entity

import "time"

// TabID uniquely identifies a tab within a process.
type TabID string

// DefaultTabTitle is shown until the page host reports a title.
const DefaultTabTitle = "New Tab"

// View is the page view a tab owns. Closing the tab destroys it.
// The application layer stores its page-host handle here.
type View interface {
	SetVisible(visible bool)
	Destroy()
}

// Tab pairs one owned page view with its navigation metadata.
type Tab struct {
	ID        TabID
	View      View
	URL       string // Last known address
	Title     string // Best-effort page title
	Active    bool
	CreatedAt time.Time
}

// NewTab creates a tab owning view, seeded with the address it was opened at.
func NewTab(id TabID, url string, view View) *Tab {
	return &Tab{
		ID:        id,
		View:      view,
		URL:       url,
		Title:     DefaultTabTitle,
		CreatedAt: time.Now(),
	}
}

// Label returns the text shown in the tab strip.
func (t *Tab) Label() string {
	if t.Title != "" {
		return t.Title
	}
	return t.URL
}

// release destroys the owned view exactly once.
func (t *Tab) release() {
	if t.View == nil {
		return
	}
	t.View.Destroy()
	t.View = nil
}
