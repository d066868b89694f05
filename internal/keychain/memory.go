package keychain

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Lookup for testing.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string][]byte
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string][]byte)}
}

func (s *MemoryStore) Set(account, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[account] = []byte(value)
}

func (s *MemoryStore) Get(account string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.secrets[account]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, account)
	}
	return val, nil
}
