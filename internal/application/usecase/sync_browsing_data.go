package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/repository"
	"github.com/bnema/atom/internal/logging"
)

var (
	// ErrInvalidBookmark is returned when a bookmark has no address.
	ErrInvalidBookmark = errors.New("bookmark url is required")
	// ErrBookmarkOutOfRange is returned when removing a bookmark index that does not exist.
	ErrBookmarkOutOfRange = errors.New("bookmark index out of range")
)

// BrowsingDataSync keeps bookmarks and history in memory and mirrors every
// change to the repositories. The in-memory copy stays authoritative when a
// save fails.
type BrowsingDataSync struct {
	bookmarkRepo repository.BookmarkRepository
	historyRepo  repository.HistoryRepository
	historyLimit int
	now          func() time.Time

	mu        sync.Mutex
	bookmarks []entity.Bookmark
	history   []entity.HistoryEntry
}

// NewBrowsingDataSync creates the sync component. historyLimit outside
// 1..entity.HistoryCap falls back to entity.HistoryCap.
func NewBrowsingDataSync(
	bookmarkRepo repository.BookmarkRepository,
	historyRepo repository.HistoryRepository,
	historyLimit int,
) *BrowsingDataSync {
	if historyLimit <= 0 || historyLimit > entity.HistoryCap {
		historyLimit = entity.HistoryCap
	}
	return &BrowsingDataSync{
		bookmarkRepo: bookmarkRepo,
		historyRepo:  historyRepo,
		historyLimit: historyLimit,
		now:          time.Now,
		bookmarks:    make([]entity.Bookmark, 0),
		history:      make([]entity.HistoryEntry, 0),
	}
}

// SetClock replaces the time source used for new history entries.
func (s *BrowsingDataSync) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load reads both lists from the repositories. A failed read leaves that list empty.
func (s *BrowsingDataSync) Load(ctx context.Context) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.bookmarkRepo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load bookmarks, starting empty")
		bookmarks = nil
	}
	history, err := s.historyRepo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load history, starting empty")
		history = nil
	}
	if len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}

	s.bookmarks = append(make([]entity.Bookmark, 0, len(bookmarks)), bookmarks...)
	s.history = append(make([]entity.HistoryEntry, 0, len(history)), history...)

	log.Debug().
		Int("bookmarks", len(s.bookmarks)).
		Int("history", len(s.history)).
		Msg("browsing data loaded")
}

// RecordVisit prepends url to history, trims to the cap and persists.
func (s *BrowsingDataSync) RecordVisit(ctx context.Context, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := entity.HistoryEntry{URL: url, Timestamp: s.now()}
	s.history = entity.PrependHistory(s.history, entry, s.historyLimit)
	s.saveHistoryLocked(ctx)
}

// AddBookmark appends a bookmark and persists. A blank name defaults to the url.
func (s *BrowsingDataSync) AddBookmark(ctx context.Context, name, url string) (entity.Bookmark, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return entity.Bookmark{}, ErrInvalidBookmark
	}

	bm := entity.NewBookmark(strings.TrimSpace(name), url)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks = append(s.bookmarks, bm)
	s.saveBookmarksLocked(ctx)

	logging.FromContext(ctx).Info().Str("url", logging.TruncateURL(url, 60)).Msg("bookmark added")
	return bm, nil
}

// RemoveBookmark deletes the bookmark at index and persists.
func (s *BrowsingDataSync) RemoveBookmark(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.bookmarks) {
		return fmt.Errorf("remove bookmark %d of %d: %w", index, len(s.bookmarks), ErrBookmarkOutOfRange)
	}

	s.bookmarks = append(s.bookmarks[:index:index], s.bookmarks[index+1:]...)
	s.saveBookmarksLocked(ctx)
	return nil
}

// ClearHistory empties history and persists.
func (s *BrowsingDataSync) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = make([]entity.HistoryEntry, 0)
	s.saveHistoryLocked(ctx)
}

// Bookmarks returns a copy of the bookmark list.
func (s *BrowsingDataSync) Bookmarks() []entity.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// History returns a copy of the history, newest first.
func (s *BrowsingDataSync) History() []entity.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *BrowsingDataSync) saveBookmarksLocked(ctx context.Context) {
	snapshot := make([]entity.Bookmark, len(s.bookmarks))
	copy(snapshot, s.bookmarks)
	if err := s.bookmarkRepo.Save(ctx, snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to persist bookmarks")
	}
}

func (s *BrowsingDataSync) saveHistoryLocked(ctx context.Context) {
	snapshot := make([]entity.HistoryEntry, len(s.history))
	copy(snapshot, s.history)
	if err := s.historyRepo.Save(ctx, snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to persist history")
	}
}
