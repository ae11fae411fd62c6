// Package view turns immutable state into rows the shell draws. Nothing here
// touches the session or performs I/O, so projecting twice gives equal output.
package view

import (
	"time"

	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/url"
)

// DefaultHistoryRows is how many history entries the shell lists.
const DefaultHistoryRows = 50

const historyTimeLayout = "2006-01-02 15:04"

// State is everything a render needs.
type State struct {
	Session     entity.SessionSnapshot
	Bookmarks   []entity.Bookmark
	History     []entity.HistoryEntry
	Theme       entity.Theme
	Address     string
	HistoryRows int
	// Location formats history timestamps. Nil means time.Local.
	Location *time.Location
}

// TabRow is one entry in the tab strip.
type TabRow struct {
	ID     entity.TabID
	Label  string
	URL    string
	Active bool
}

// BookmarkRow is one bookmark list entry.
type BookmarkRow struct {
	Index int
	Name  string
	URL   string
}

// HistoryRow is one history list entry.
type HistoryRow struct {
	URL string
	// Domain is the host without "www.", empty for data: and about: pages.
	Domain string
	When   string
}

// Rendering is the projected output.
type Rendering struct {
	Tabs      []TabRow
	Bookmarks []BookmarkRow
	History   []HistoryRow
	Theme     entity.Theme
	Address   string
	ActiveURL string
}

// Project maps state to rows.
func Project(s State) Rendering {
	limit := s.HistoryRows
	if limit <= 0 {
		limit = DefaultHistoryRows
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}

	r := Rendering{
		Tabs:      make([]TabRow, 0, len(s.Session.Tabs)),
		Bookmarks: make([]BookmarkRow, 0, len(s.Bookmarks)),
		History:   make([]HistoryRow, 0, min(limit, len(s.History))),
		Theme:     entity.ParseTheme(string(s.Theme)),
		Address:   s.Address,
	}

	for _, tab := range s.Session.Tabs {
		label := tab.Title
		if label == "" {
			label = tab.URL
		}
		r.Tabs = append(r.Tabs, TabRow{ID: tab.ID, Label: label, URL: tab.URL, Active: tab.Active})
		if tab.Active {
			r.ActiveURL = tab.URL
		}
	}

	for i, bm := range s.Bookmarks {
		r.Bookmarks = append(r.Bookmarks, BookmarkRow{Index: i, Name: bm.Name, URL: bm.URL})
	}

	for _, entry := range s.History {
		if len(r.History) == limit {
			break
		}
		r.History = append(r.History, HistoryRow{
			URL:    entry.URL,
			Domain: url.ExtractDomain(entry.URL),
			When:   entry.Timestamp.In(loc).Format(historyTimeLayout),
		})
	}

	return r
}
