package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrMiss is returned by a Store when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store shares encoded snapshots between processes. Patterns passed to
// Delete may end in "*" to match a prefix.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, patterns ...string) error
}

type memoryItem struct {
	data    []byte
	expires time.Time
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

// NewMemoryStore returns a Store local to this process.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]memoryItem)}
}

func (m *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[key]
	if !ok {
		return nil, ErrMiss
	}
	if !it.expires.IsZero() && time.Now().After(it.expires) {
		delete(m.items, key)
		return nil, ErrMiss
	}
	return it.data, nil
}

func (m *memoryStore) Save(_ context.Context, key string, data []byte, ttl time.Duration) error {
	it := memoryItem{data: append([]byte(nil), data...)}
	if ttl > 0 {
		it.expires = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = it
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, patterns ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range patterns {
		for key := range m.items {
			if matches(p, key) {
				delete(m.items, key)
			}
		}
	}
	return nil
}

// matches reports whether key equals pattern or, for a pattern ending in
// "*", starts with the part before it.
func matches(pattern, key string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(key, prefix)
	}
	return pattern == key
}
