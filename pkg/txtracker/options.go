package txtracker

import (
	"time"

	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"go.uber.org/zap"
)

const defaultPollInterval = 2 * time.Second

// Option configures the tracker.
type Option func(*settings)

type settings struct {
	logger       *zap.Logger
	pollInterval time.Duration
	timeout      time.Duration
	journal      txstore.Store
}

// WithLogger sets a custom logger for the tracker.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithPollInterval sets how often receipts are requested.
func WithPollInterval(d time.Duration) Option {
	return func(s *settings) { s.pollInterval = d }
}

// WithTimeout stops observing a transaction after d. Zero observes until a
// receipt arrives or the handle is stopped.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithJournal records every transition in store.
func WithJournal(store txstore.Store) Option {
	return func(s *settings) { s.journal = store }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:       zap.NewNop(),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}
	return s
}
