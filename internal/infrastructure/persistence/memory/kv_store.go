// Package memory provides a volatile key/value backend for private browsing.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/atom/internal/application/port"
)

// KeyValueStore keeps values in a map. Nothing survives the process.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ port.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore creates an empty in-memory store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{values: make(map[string]string)}
}

func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
