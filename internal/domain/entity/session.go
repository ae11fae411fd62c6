package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidSession is returned by Validate when the active-tab invariant is broken.
var ErrInvalidSession = errors.New("invalid session")

// Session is the ordered set of live tabs plus the active tab reference.
// Display order equals creation order.
type Session struct {
	tabs     []*Tab
	activeID TabID
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{tabs: make([]*Tab, 0)}
}

// Add appends a tab. It does not change the active tab.
func (s *Session) Add(tab *Tab) {
	s.tabs = append(s.tabs, tab)
}

// Len returns the number of tabs.
func (s *Session) Len() int {
	return len(s.tabs)
}

// Tabs returns the tabs in display order. The slice is a copy; the tabs are not.
func (s *Session) Tabs() []*Tab {
	out := make([]*Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// At returns the tab at index i, or nil when out of range.
func (s *Session) At(i int) *Tab {
	if i < 0 || i >= len(s.tabs) {
		return nil
	}
	return s.tabs[i]
}

// Index returns the display position of id, or -1.
func (s *Session) Index(id TabID) int {
	for i, tab := range s.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a tab by ID.
func (s *Session) Find(id TabID) *Tab {
	if i := s.Index(id); i >= 0 {
		return s.tabs[i]
	}
	return nil
}

// ActiveID returns the active tab id, empty when the session has no tabs.
func (s *Session) ActiveID() TabID {
	return s.activeID
}

// Active returns the active tab.
func (s *Session) Active() *Tab {
	if s.activeID == "" {
		return nil
	}
	return s.Find(s.activeID)
}

// Activate makes id the only visible, active tab.
// Returns false, changing nothing, if id is not in the session.
func (s *Session) Activate(id TabID) bool {
	if s.Index(id) < 0 {
		return false
	}
	for _, tab := range s.tabs {
		tab.Active = tab.ID == id
		if tab.View != nil {
			tab.View.SetVisible(tab.Active)
		}
	}
	s.activeID = id
	return true
}

// Remove takes id out of the session and destroys its view.
// It returns the display index the tab had and whether it was active.
// The active reference is cleared when the removed tab held it; picking
// a successor is the caller's job.
func (s *Session) Remove(id TabID) (index int, wasActive bool, ok bool) {
	index = s.Index(id)
	if index < 0 {
		return -1, false, false
	}

	tab := s.tabs[index]
	s.tabs = append(s.tabs[:index], s.tabs[index+1:]...)
	tab.release()

	wasActive = s.activeID == id
	if wasActive {
		s.activeID = ""
	}
	return index, wasActive, true
}

// Validate checks the session invariants: a non-empty session has exactly one
// active tab and ActiveID references it; an empty session has no active id.
func (s *Session) Validate() error {
	if len(s.tabs) == 0 {
		if s.activeID != "" {
			return fmt.Errorf("%w: active id %q on empty session", ErrInvalidSession, s.activeID)
		}
		return nil
	}

	active := 0
	for _, tab := range s.tabs {
		if tab.Active {
			active++
			if tab.ID != s.activeID {
				return fmt.Errorf("%w: tab %q active but active id is %q", ErrInvalidSession, tab.ID, s.activeID)
			}
		}
	}
	if active != 1 {
		return fmt.Errorf("%w: %d active tabs", ErrInvalidSession, active)
	}
	return nil
}

// TabSnapshot is an immutable copy of a tab's metadata.
type TabSnapshot struct {
	ID     TabID
	URL    string
	Title  string
	Label  string
	Active bool
}

// SessionSnapshot is an immutable copy of the session, safe to hand to renderers.
type SessionSnapshot struct {
	Tabs     []TabSnapshot
	ActiveID TabID
}

// Snapshot copies the session state.
func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		Tabs:     make([]TabSnapshot, 0, len(s.tabs)),
		ActiveID: s.activeID,
	}
	for _, tab := range s.tabs {
		snap.Tabs = append(snap.Tabs, TabSnapshot{
			ID:     tab.ID,
			URL:    tab.URL,
			Title:  tab.Title,
			Label:  tab.Label(),
			Active: tab.Active,
		})
	}
	return snap
}

// Active returns the active tab snapshot.
func (s SessionSnapshot) Active() (TabSnapshot, bool) {
	for _, tab := range s.Tabs {
		if tab.ID == s.ActiveID {
			return tab, true
		}
	}
	return TabSnapshot{}, false
}
