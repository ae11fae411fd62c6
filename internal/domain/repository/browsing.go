package repository

import (
	"context"

	"github.com/bnema/atom/internal/domain/entity"
)

// BookmarkRepository persists the ordered bookmark list as a whole.
type BookmarkRepository interface {
	// Load returns the stored bookmarks, or an empty slice when none were saved.
	Load(ctx context.Context) ([]entity.Bookmark, error)

	// Save replaces the stored list.
	Save(ctx context.Context, bookmarks []entity.Bookmark) error
}

// HistoryRepository persists the most-recent-first visit list as a whole.
type HistoryRepository interface {
	// Load returns the stored entries, newest first.
	Load(ctx context.Context) ([]entity.HistoryEntry, error)

	// Save replaces the stored list.
	Save(ctx context.Context, entries []entity.HistoryEntry) error
}

// ThemeRepository persists the process-wide theme.
type ThemeRepository interface {
	// Load returns the stored theme. found is false when nothing was saved yet.
	Load(ctx context.Context) (theme entity.Theme, found bool, err error)

	// Save stores the theme.
	Save(ctx context.Context, theme entity.Theme) error
}
