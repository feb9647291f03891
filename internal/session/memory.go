package session

import (
	"context"
	"sync"
	"time"
)

// Memory backs the demo storage driver and tests when no redis address is
// configured.
type Memory struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

var _ Sessions = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]time.Time)}
}

func (m *Memory) Save(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (m *Memory) Validate(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokens[token]
	if !ok {
		return ErrRevoked
	}

	if time.Now().After(expiry) {
		delete(m.tokens, token)
		return ErrRevoked
	}

	return nil
}

func (m *Memory) Revoke(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)
	return nil
}
