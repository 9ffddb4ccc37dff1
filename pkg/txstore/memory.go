package txstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// DefaultMemoryCapacity bounds the in-memory journal.
const DefaultMemoryCapacity = 1000

// MemoryOption configures the in-memory Store.
type MemoryOption func(*memoryStore)

// WithCapacity caps the number of records kept. Values below 1 keep the
// default.
func WithCapacity(n int) MemoryOption {
	return func(s *memoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

type memoryStore struct {
	mu       sync.RWMutex
	records  map[string]*Record
	capacity int
}

// NewMemoryStore returns a Store kept in process memory. Once full, the
// oldest finished records are dropped first, then the oldest of any status.
func NewMemoryStore(opts ...MemoryOption) Store {
	s := &memoryStore{
		records:  make(map[string]*Record),
		capacity: DefaultMemoryCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *memoryStore) Save(_ context.Context, rec *Record) error {
	cp := *rec
	if cp.UpdatedAt.IsZero() {
		cp.UpdatedAt = time.Now()
	}
	s.mu.Lock()
	s.records[rec.Hash] = &cp
	for len(s.records) > s.capacity {
		s.evictLocked(rec.Hash)
	}
	s.mu.Unlock()
	return nil
}

// evictLocked drops the oldest terminal record other than keep, or the
// oldest record when none has finished.
func (s *memoryStore) evictLocked(keep string) {
	var oldest, oldestTerminal *Record
	for hash, r := range s.records {
		if hash == keep {
			continue
		}
		if oldest == nil || r.SubmittedAt.Before(oldest.SubmittedAt) {
			oldest = r
		}
		if r.Status.Terminal() && (oldestTerminal == nil || r.SubmittedAt.Before(oldestTerminal.SubmittedAt)) {
			oldestTerminal = r
		}
	}
	victim := oldestTerminal
	if victim == nil {
		victim = oldest
	}
	if victim == nil {
		return
	}
	delete(s.records, victim.Hash)
}

func (s *memoryStore) UpdateStatus(_ context.Context, hash string, upd StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[hash]
	if !ok {
		return ErrNotFound
	}
	rec.Status = upd.Status
	if upd.BlockNumber != 0 {
		rec.BlockNumber = upd.BlockNumber
	}
	if upd.GasUsed != 0 {
		rec.GasUsed = upd.GasUsed
	}
	if upd.Error != "" {
		rec.Error = upd.Error
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (s *memoryStore) Get(_ context.Context, hash string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[hash]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *memoryStore) ListRecent(_ context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
