package cache

import (
	"time"

	"go.uber.org/zap"
)

const defaultFetchTimeout = 10 * time.Second

// Option configures the cache.
type Option func(*settings)

type settings struct {
	logger       *zap.Logger
	store        Store
	idleTTL      time.Duration
	fetchTimeout time.Duration
}

// WithLogger sets a custom logger for the cache.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithStore shares snapshots through store.
func WithStore(store Store) Option {
	return func(s *settings) { s.store = store }
}

// WithIdleTTL drops entries nobody read or subscribed to for d. Zero keeps
// entries until Stop.
func WithIdleTTL(d time.Duration) Option {
	return func(s *settings) { s.idleTTL = d }
}

// WithFetchTimeout bounds a single fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *settings) { s.fetchTimeout = d }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:       zap.NewNop(),
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
