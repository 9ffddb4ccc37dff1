// Package cache keeps contract reads fresh in the background. Every entry
// owns a refresher goroutine; values are eventually consistent and must
// never gate a write.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chainsafe/dapp-gateway/internal/metrics"
	"go.uber.org/zap"
)

// ErrStopped is returned when reading from a stopped cache.
var ErrStopped = errors.New("cache stopped")

// FetchFunc loads the current value of an entry.
type FetchFunc func(ctx context.Context) (any, error)

// Snapshot is the last known state of an entry. Value survives failed
// refreshes; Err holds the error of the latest one.
type Snapshot struct {
	Key       string
	Value     any
	FetchedAt time.Time
	Err       error
	Stale     bool
}

// HasValue reports whether a fetch ever succeeded.
func (s Snapshot) HasValue() bool { return !s.FetchedAt.IsZero() }

type envelope struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

type entry struct {
	key      string
	kind     string
	interval time.Duration
	fetch    FetchFunc
	decode   func([]byte) (any, error)

	kick  chan struct{}
	ready chan struct{}

	mu         sync.Mutex
	snap       Snapshot
	lastAccess time.Time
	subs       map[int]chan Snapshot
	nextSub    int
	readyOnce  sync.Once
}

// Cache is a set of self-refreshing entries.
type Cache struct {
	store        Store
	idleTTL      time.Duration
	fetchTimeout time.Duration
	logger       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	entries map[string]*entry
	stopped bool
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	s := applyOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		store:        s.store,
		idleTTL:      s.idleTTL,
		fetchTimeout: s.fetchTimeout,
		logger:       s.logger,
		ctx:          ctx,
		cancel:       cancel,
		entries:      make(map[string]*entry),
	}
}

// Register adds an entry refreshed every interval. Registering an existing
// key keeps the running entry.
func (c *Cache) Register(key string, interval time.Duration, fetch FetchFunc) {
	c.register(key, interval, fetch, nil)
}

func (c *Cache) register(key string, interval time.Duration, fetch FetchFunc, decode func([]byte) (any, error)) (*entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return nil, ErrStopped
	}
	if e, ok := c.entries[key]; ok {
		return e, nil
	}
	if interval <= 0 {
		interval = time.Second
	}
	e := &entry{
		key:        key,
		kind:       kindOf(key),
		interval:   interval,
		fetch:      fetch,
		decode:     decode,
		kick:       make(chan struct{}, 1),
		ready:      make(chan struct{}),
		lastAccess: time.Now(),
		snap:       Snapshot{Key: key},
		subs:       make(map[int]chan Snapshot),
	}
	c.entries[key] = e
	metrics.CacheEntries.Inc()
	c.wg.Add(1)
	go c.run(e)
	return e, nil
}

// Get returns the snapshot of key without waiting for a fetch.
func (c *Cache) Get(key string) (Snapshot, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}
	return e.snapshot(true), true
}

// Wait blocks until key has completed its first fetch.
func (c *Cache) Wait(ctx context.Context, key string) (Snapshot, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return Snapshot{}, ErrMiss
	}
	return c.await(ctx, e)
}

func (c *Cache) await(ctx context.Context, e *entry) (Snapshot, error) {
	select {
	case <-e.ready:
		return e.snapshot(true), nil
	case <-ctx.Done():
		return e.snapshot(true), ctx.Err()
	case <-c.ctx.Done():
		return e.snapshot(true), ErrStopped
	}
}

// Invalidate marks entries stale and refetches them immediately. A key
// ending in "*" matches every key with that prefix.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	var hit []*entry
	for _, e := range c.entries {
		for _, k := range keys {
			if matches(k, e.key) {
				hit = append(hit, e)
				break
			}
		}
	}
	c.mu.Unlock()

	if c.store != nil && len(keys) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		if err := c.store.Delete(ctx, keys...); err != nil {
			c.logger.Warn("Failed to delete shared cache keys", zap.Strings("keys", keys), zap.Error(err))
		}
		cancel()
	}

	for _, e := range hit {
		e.mu.Lock()
		e.snap.Stale = true
		e.mu.Unlock()
		select {
		case e.kick <- struct{}{}:
		default:
		}
	}
	if len(hit) > 0 {
		c.logger.Debug("Invalidated cache entries", zap.Strings("keys", keys), zap.Int("matched", len(hit)))
	}
}

// Subscribe delivers every refreshed snapshot of key. A slow subscriber only
// sees the newest snapshot. The returned func cancels the subscription.
func (c *Cache) Subscribe(key string) (<-chan Snapshot, func(), bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, func() {}, false
	}

	ch := make(chan Snapshot, 1)
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	e.lastAccess = time.Now()
	if e.snap.HasValue() || e.snap.Err != nil {
		ch <- e.snap
	}
	e.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			e.mu.Lock()
			if sub, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(sub)
			}
			e.mu.Unlock()
		})
	}
	return ch, unsubscribe, true
}

// Keys returns the registered keys.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stop cancels every refresher and closes all subscriptions.
func (c *Cache) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
	c.cancel()
	c.wg.Wait()
}

func (c *Cache) run(e *entry) {
	defer c.wg.Done()
	defer c.drop(e)

	if !c.warm(e) {
		c.refresh(e)
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if c.idle(e) {
				c.logger.Debug("Dropping idle cache entry", zap.String("key", e.key))
				return
			}
			c.refresh(e)
		case <-e.kick:
			c.refresh(e)
			ticker.Reset(e.interval)
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Cache) refresh(e *entry) {
	ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
	defer cancel()

	val, err := e.fetch(ctx)
	if c.ctx.Err() != nil {
		return
	}

	e.mu.Lock()
	if err != nil {
		e.snap.Err = err
	} else {
		e.snap.Value = val
		e.snap.FetchedAt = time.Now()
		e.snap.Err = nil
		e.snap.Stale = false
	}
	snap := e.snap
	for _, ch := range e.subs {
		deliver(ch, snap)
	}
	e.mu.Unlock()

	if err != nil {
		metrics.CacheRefreshes.WithLabelValues(e.kind, "error").Inc()
		c.logger.Debug("Cache refresh failed", zap.String("key", e.key), zap.Error(err))
	} else {
		metrics.CacheRefreshes.WithLabelValues(e.kind, "ok").Inc()
		c.publish(e, snap)
	}
	e.readyOnce.Do(func() { close(e.ready) })
}

// warm seeds e from the shared store when a fresh snapshot exists there.
func (c *Cache) warm(e *entry) bool {
	if c.store == nil || e.decode == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
	defer cancel()

	raw, err := c.store.Load(ctx, e.key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Debug("Shared cache load failed", zap.String("key", e.key), zap.Error(err))
		}
		return false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || time.Since(env.FetchedAt) >= e.interval {
		return false
	}
	val, err := e.decode(env.Value)
	if err != nil {
		return false
	}

	e.mu.Lock()
	e.snap.Value = val
	e.snap.FetchedAt = env.FetchedAt
	snap := e.snap
	for _, ch := range e.subs {
		deliver(ch, snap)
	}
	e.mu.Unlock()
	e.readyOnce.Do(func() { close(e.ready) })
	metrics.CacheRefreshes.WithLabelValues(e.kind, "shared").Inc()
	return true
}

func (c *Cache) publish(e *entry, snap Snapshot) {
	if c.store == nil {
		return
	}
	val, err := json.Marshal(snap.Value)
	if err != nil {
		c.logger.Debug("Cache value not shareable", zap.String("key", e.key), zap.Error(err))
		return
	}
	raw, err := json.Marshal(envelope{Value: val, FetchedAt: snap.FetchedAt})
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
	defer cancel()
	if err := c.store.Save(ctx, e.key, raw, 3*e.interval); err != nil {
		c.logger.Debug("Shared cache save failed", zap.String("key", e.key), zap.Error(err))
	}
}

func (c *Cache) idle(e *entry) bool {
	if c.idleTTL <= 0 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs) == 0 && time.Since(e.lastAccess) > c.idleTTL
}

func (c *Cache) drop(e *entry) {
	c.mu.Lock()
	if c.entries[e.key] == e {
		delete(c.entries, e.key)
		metrics.CacheEntries.Dec()
	}
	c.mu.Unlock()

	e.mu.Lock()
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
	e.mu.Unlock()
	e.readyOnce.Do(func() { close(e.ready) })
}

func (e *entry) snapshot(touch bool) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if touch {
		e.lastAccess = time.Now()
	}
	return e.snap
}

// deliver replaces any undelivered snapshot with snap.
func deliver(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// kindOf returns the first two segments of key, e.g. "token:balance".
func kindOf(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[0] + ":" + parts[1]
}
