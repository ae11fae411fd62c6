package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/logging"
)

const (
	getValueQuery    = `SELECT value FROM kv_store WHERE key = ?`
	upsertValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type kvStore struct {
	db *sql.DB
}

// NewKeyValueStore creates a SQLite-backed key/value store.
func NewKeyValueStore(db *sql.DB) port.KeyValueStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(value)).Msg("writing kv entry")

	if _, err := s.db.ExecContext(ctx, upsertValueQuery, key, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

type lazyKVStore struct {
	provider port.DatabaseProvider
}

// NewLazyKeyValueStore creates a store that opens the database on first use.
func NewLazyKeyValueStore(provider port.DatabaseProvider) port.KeyValueStore {
	return &lazyKVStore{provider: provider}
}

func (s *lazyKVStore) store(ctx context.Context) (port.KeyValueStore, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return &kvStore{db: db}, nil
}

func (s *lazyKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	store, err := s.store(ctx)
	if err != nil {
		return "", false, err
	}
	return store.Get(ctx, key)
}

func (s *lazyKVStore) Set(ctx context.Context, key, value string) error {
	store, err := s.store(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}
