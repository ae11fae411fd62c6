package port

import "context"

// Storage keys of the persisted side-store.
const (
	KeyBookmarks = "atom_bookmarks_v1"
	KeyHistory   = "atom_history_v1"
	KeyTheme     = "atom_theme_v1"
)

// KeyValueStore is a durable string key/value backend.
type KeyValueStore interface {
	// Get returns the stored value. found is false for a missing key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
