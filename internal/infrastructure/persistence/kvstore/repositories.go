// Package kvstore implements the side-store repositories on top of a
// key/value backend, one JSON document per key.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/repository"
	"github.com/bnema/atom/internal/logging"
)

type bookmarkRepo struct {
	store port.KeyValueStore
}

// NewBookmarkRepository stores bookmarks under port.KeyBookmarks.
func NewBookmarkRepository(store port.KeyValueStore) repository.BookmarkRepository {
	return &bookmarkRepo{store: store}
}

func (r *bookmarkRepo) Load(ctx context.Context) ([]entity.Bookmark, error) {
	out := make([]entity.Bookmark, 0)
	if err := loadJSON(ctx, r.store, port.KeyBookmarks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookmarkRepo) Save(ctx context.Context, bookmarks []entity.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []entity.Bookmark{}
	}
	return saveJSON(ctx, r.store, port.KeyBookmarks, bookmarks)
}

type historyRepo struct {
	store port.KeyValueStore
}

// NewHistoryRepository stores history under port.KeyHistory.
func NewHistoryRepository(store port.KeyValueStore) repository.HistoryRepository {
	return &historyRepo{store: store}
}

func (r *historyRepo) Load(ctx context.Context) ([]entity.HistoryEntry, error) {
	out := make([]entity.HistoryEntry, 0)
	if err := loadJSON(ctx, r.store, port.KeyHistory, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *historyRepo) Save(ctx context.Context, entries []entity.HistoryEntry) error {
	if entries == nil {
		entries = []entity.HistoryEntry{}
	}
	return saveJSON(ctx, r.store, port.KeyHistory, entries)
}

type themeRepo struct {
	store port.KeyValueStore
}

// NewThemeRepository stores the theme under port.KeyTheme.
func NewThemeRepository(store port.KeyValueStore) repository.ThemeRepository {
	return &themeRepo{store: store}
}

func (r *themeRepo) Load(ctx context.Context) (entity.Theme, bool, error) {
	raw, found, err := r.store.Get(ctx, port.KeyTheme)
	if err != nil {
		return entity.ThemeDark, false, fmt.Errorf("failed to read theme: %w", err)
	}
	if !found {
		return entity.ThemeDark, false, nil
	}

	var name string
	if err := json.Unmarshal([]byte(raw), &name); err != nil {
		// Older stores kept the bare name.
		name = raw
	}
	return entity.ParseTheme(name), true, nil
}

func (r *themeRepo) Save(ctx context.Context, theme entity.Theme) error {
	return saveJSON(ctx, r.store, port.KeyTheme, theme.String())
}

func loadJSON(ctx context.Context, store port.KeyValueStore, key string, dst any) error {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("discarding unreadable stored value")
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, store port.KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
