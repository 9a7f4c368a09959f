package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// Memory is an in-process TTL cache. Results are stored serialized so callers
// never share state with the cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an in-memory cache; a nil clock uses time.Now
func NewMemory(clock func() time.Time) *Memory {
	if clock == nil {
		clock = time.Now
	}
	return &Memory{entries: make(map[string]memoryEntry), now: clock}
}

// Get returns the stored result when present and not expired. Expired entries are evicted.
func (m *Memory) Get(_ context.Context, key string) (*types.ScoringResult, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !m.now().Before(entry.expires) {
		m.mu.Lock()
		if current, still := m.entries[key]; still && current.expires.Equal(entry.expires) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	var result types.ScoringResult
	if err := json.Unmarshal(entry.payload, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &result, true, nil
}

// Set stores a result for ttl (DefaultTTL when ttl <= 0)
func (m *Memory) Set(_ context.Context, key string, result *types.ScoringResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{payload: payload, expires: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Delete removes a key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
