package pass

import (
	"context"
	"errors"
	"sync"
)

// errMissing stands in for the non-zero exit of the real tool.
var errMissing = errors.New("is not in the password store")

// MemoryRunner is an in-memory Runner for tests. Entries not present
// fail the way a non-zero exit of the real tool would.
type MemoryRunner struct {
	mu      sync.RWMutex
	entries map[string]string
	calls   int
}

// NewMemoryRunner creates a MemoryRunner seeded with entries.
func NewMemoryRunner(entries map[string]string) *MemoryRunner {
	m := &MemoryRunner{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// Set stores or replaces an entry.
func (m *MemoryRunner) Set(entry, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[entry] = contents
}

// Calls reports how many times Run has been invoked.
func (m *MemoryRunner) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *MemoryRunner) Run(ctx context.Context, entry string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	contents, ok := m.entries[entry]
	if !ok {
		return nil, errMissing
	}
	return []byte(contents), nil
}
