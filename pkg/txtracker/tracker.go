// Package txtracker follows submitted transactions from broadcast to a
// mined receipt.
package txtracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chainsafe/dapp-gateway/internal/metrics"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	// ErrTimeout is set on a handle whose receipt did not arrive in time.
	// The transaction may still be mined later.
	ErrTimeout = errors.New("transaction confirmation timed out")
	// ErrStopped is set on a handle whose observation was cancelled.
	ErrStopped = errors.New("transaction tracking stopped")
)

// ReceiptSource fetches receipts. It returns ethereum.NotFound while the
// transaction is unmined.
type ReceiptSource interface {
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Meta describes what a transaction was submitted for.
type Meta struct {
	Action   string
	Contract string
	Network  string
	ChainID  int64
	From     common.Address
}

// Update is one observed state of a transaction.
type Update struct {
	Hash        common.Hash    `json:"hash"`
	Status      txstore.Status `json:"status"`
	BlockNumber uint64         `json:"blockNumber,omitempty"`
	GasUsed     uint64         `json:"gasUsed,omitempty"`
	Err         error          `json:"-"`
	At          time.Time      `json:"at"`
}

// Tracker polls receipts for every tracked transaction.
type Tracker struct {
	src          ReceiptSource
	journal      txstore.Store
	pollInterval time.Duration
	timeout      time.Duration
	logger       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	handles map[common.Hash]*Handle
	stopped bool
}

// NewTracker creates a tracker reading receipts from src.
func NewTracker(src ReceiptSource, opts ...Option) *Tracker {
	s := applyOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())
	return &Tracker{
		src:          src,
		journal:      s.journal,
		pollInterval: s.pollInterval,
		timeout:      s.timeout,
		logger:       s.logger,
		ctx:          ctx,
		cancel:       cancel,
		handles:      make(map[common.Hash]*Handle),
	}
}

// Track starts observing hash. Tracking a hash that is already observed
// returns the existing handle.
func (t *Tracker) Track(hash common.Hash, meta Meta) *Handle {
	t.mu.Lock()
	if h, ok := t.handles[hash]; ok {
		t.mu.Unlock()
		return h
	}
	ctx, cancel := context.WithCancel(t.ctx)
	h := newHandle(hash, meta, cancel)
	if t.stopped {
		t.mu.Unlock()
		cancel()
		h.close(ErrStopped)
		return h
	}
	t.handles[hash] = h
	t.wg.Add(1)
	t.mu.Unlock()

	metrics.PendingTransactions.Inc()
	t.save(h)
	t.logger.Info("Tracking transaction",
		zap.String("tx_hash", hash.Hex()),
		zap.String("action", meta.Action),
		zap.String("contract", meta.Contract))

	go t.observe(ctx, h)
	return h
}

// Get returns the handle of an in-flight transaction.
func (t *Tracker) Get(hash common.Hash) (*Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.handles[hash]
	return h, ok
}

// Stop ends observation of every transaction and waits for the pollers.
func (t *Tracker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.cancel()
	t.wg.Wait()
}

func (t *Tracker) observe(ctx context.Context, h *Handle) {
	defer t.wg.Done()
	defer metrics.PendingTransactions.Dec()
	defer t.forget(h)

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if t.timeout > 0 {
		timer := time.NewTimer(t.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		if t.poll(ctx, h) {
			h.close(nil)
			return
		}
		select {
		case <-ticker.C:
		case <-deadline:
			t.abandon(h, ErrTimeout)
			return
		case <-ctx.Done():
			t.abandon(h, ErrStopped)
			return
		}
	}
}

// poll fetches the receipt once and reports whether the transaction settled.
func (t *Tracker) poll(ctx context.Context, h *Handle) bool {
	receipt, err := t.src.TransactionReceipt(ctx, h.hash)
	if err != nil || receipt == nil {
		if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			t.logger.Warn("Failed to fetch receipt",
				zap.String("tx_hash", h.hash.Hex()),
				zap.Error(err))
		}
		t.transition(h, Update{Status: txstore.StatusPending})
		return false
	}

	// A receipt observed on the first poll still passes through pending.
	t.transition(h, Update{Status: txstore.StatusPending})

	status := txstore.StatusConfirmed
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = txstore.StatusFailed
	}
	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	t.transition(h, Update{
		Status:      status,
		BlockNumber: block,
		GasUsed:     receipt.GasUsed,
	})

	metrics.ReceiptWaitDuration.WithLabelValues(h.meta.Action).Observe(time.Since(h.submittedAt).Seconds())
	metrics.GasUsed.WithLabelValues(h.meta.Action).Observe(float64(receipt.GasUsed))
	metrics.TransactionsFinished.WithLabelValues(h.meta.Action, string(status)).Inc()
	t.logger.Info("Transaction mined",
		zap.String("tx_hash", h.hash.Hex()),
		zap.String("status", string(status)),
		zap.Uint64("block", block),
		zap.Uint64("gas_used", receipt.GasUsed))
	return true
}

func (t *Tracker) transition(h *Handle, upd Update) {
	if !h.advance(upd) {
		return
	}
	if t.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.journal.UpdateStatus(ctx, h.hash.Hex(), txstore.StatusUpdate{
		Status:      upd.Status,
		BlockNumber: upd.BlockNumber,
		GasUsed:     upd.GasUsed,
	}); err != nil {
		t.logger.Warn("Failed to journal transition",
			zap.String("tx_hash", h.hash.Hex()),
			zap.String("status", string(upd.Status)),
			zap.Error(err))
	}
}

func (t *Tracker) abandon(h *Handle, reason error) {
	h.close(reason)
	if errors.Is(reason, ErrTimeout) {
		metrics.TransactionsFinished.WithLabelValues(h.meta.Action, "timeout").Inc()
		t.logger.Warn("Gave up waiting for receipt",
			zap.String("tx_hash", h.hash.Hex()),
			zap.Duration("timeout", t.timeout))
	}
	if t.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	snap := h.Snapshot()
	if err := t.journal.UpdateStatus(ctx, h.hash.Hex(), txstore.StatusUpdate{
		Status: snap.Status,
		Error:  reason.Error(),
	}); err != nil {
		t.logger.Warn("Failed to journal abandoned transaction",
			zap.String("tx_hash", h.hash.Hex()),
			zap.Error(err))
	}
}

func (t *Tracker) save(h *Handle) {
	if t.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := &txstore.Record{
		ID:          h.id,
		Hash:        h.hash.Hex(),
		Action:      h.meta.Action,
		Contract:    h.meta.Contract,
		Network:     h.meta.Network,
		ChainID:     h.meta.ChainID,
		From:        h.meta.From.Hex(),
		Status:      txstore.StatusSubmitted,
		SubmittedAt: h.submittedAt,
		UpdatedAt:   h.submittedAt,
	}
	if err := t.journal.Save(ctx, rec); err != nil {
		t.logger.Warn("Failed to journal transaction",
			zap.String("tx_hash", h.hash.Hex()),
			zap.Error(err))
	}
}

func (t *Tracker) forget(h *Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handles[h.hash] == h {
		delete(t.handles, h.hash)
	}
}
