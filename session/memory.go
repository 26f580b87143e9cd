package session

import (
	"context"
	"sync"
)

// MemoryRegistry is the in-process [Registry] backend. A single mutex
// serializes all operations, so a concurrent login and logout for the same
// account cannot interleave inside the set update.
type MemoryRegistry struct {
	mu     sync.RWMutex
	tokens map[string]map[string]struct{}
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		tokens: make(map[string]map[string]struct{}),
	}
}

// Register implements [Registry].
func (m *MemoryRegistry) Register(_ context.Context, username, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.tokens[username]
	if !ok {
		set = make(map[string]struct{})
		m.tokens[username] = set
	}
	set[token] = struct{}{}
	return nil
}

// IsLive implements [Registry].
func (m *MemoryRegistry) IsLive(_ context.Context, username, token string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set, ok := m.tokens[username]
	if !ok {
		return false, nil
	}
	_, live := set[token]
	return live, nil
}

// Tracked implements [Registry].
func (m *MemoryRegistry) Tracked(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.tokens[username]
	return ok, nil
}

// Revoke implements [Registry]. The account's entry is kept even when its
// last token is removed: a tracked account with an empty set still rejects
// replayed tokens.
func (m *MemoryRegistry) Revoke(_ context.Context, username, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.tokens[username]
	if !ok {
		return false, nil
	}
	if _, present := set[token]; !present {
		return false, nil
	}
	delete(set, token)
	return true, nil
}

// ResetAll implements [Registry].
func (m *MemoryRegistry) ResetAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = make(map[string]map[string]struct{})
	return nil
}
