package port

import "github.com/bnema/atom/internal/domain/entity"

// NavigationKind tells what a NavigationEvent carries.
type NavigationKind int

const (
	// NavigationURLChanged carries a new committed address.
	NavigationURLChanged NavigationKind = iota
	// NavigationTitleChanged carries a new page title.
	NavigationTitleChanged
)

// String returns a human-readable representation of the navigation kind.
func (k NavigationKind) String() string {
	switch k {
	case NavigationURLChanged:
		return "url"
	case NavigationTitleChanged:
		return "title"
	default:
		return "unknown"
	}
}

// NavigationEvent is a page host notification tagged with the tab it came from.
type NavigationEvent struct {
	TabID entity.TabID
	Kind  NavigationKind
	Value string
}

// Dispatcher runs tasks on the single control thread.
// Post never blocks and never runs fn inline.
type Dispatcher interface {
	Post(fn func())
}
