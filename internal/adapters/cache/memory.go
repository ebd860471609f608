// Package cache implements ports.TokenCache in memory and on Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.TokenCache = (*Memory)(nil)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is a process-local token cache. Expired entries are dropped on read.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an empty Memory cache. A nil now uses time.Now.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{entries: make(map[string]memoryEntry), now: now}
}

// Get returns the live value for key or domain.ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return "", domain.ErrNotFound
	}
	return e.value, nil
}

// Set stores value under key for ttl. A non-positive ttl removes the key.
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		delete(m.entries, key)
		return nil
	}
	m.entries[key] = memoryEntry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
