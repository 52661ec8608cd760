package statestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/trift-shop/storefront/internal/core/port"
)

var _ port.StateStore = (*MemoryStore)(nil)

// MemoryStore keeps session state in process memory. It is the default
// when no external store is configured, and the test double everywhere
// a StateStore is needed.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	const op = "MemoryStore.Load"

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, port.ErrNoValue)
	}
	b := make([]byte, len(v))
	copy(b, v)
	return b, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(value))
	copy(b, value)
	s.values[key] = b
	return nil
}

func (s *MemoryStore) Close() {}
