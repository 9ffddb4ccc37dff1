package txtracker

import (
	"context"
	"sync"
	"time"

	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

const subscriberBuffer = 4

// Handle observes one submitted transaction.
type Handle struct {
	id          uuid.UUID
	hash        common.Hash
	meta        Meta
	submittedAt time.Time
	cancel      context.CancelFunc

	mu   sync.Mutex
	cur  Update
	subs []chan Update
	done chan struct{}
}

func newHandle(hash common.Hash, meta Meta, cancel context.CancelFunc) *Handle {
	now := time.Now()
	return &Handle{
		id:          uuid.New(),
		hash:        hash,
		meta:        meta,
		submittedAt: now,
		cancel:      cancel,
		cur:         Update{Hash: hash, Status: txstore.StatusSubmitted, At: now},
		done:        make(chan struct{}),
	}
}

// ID returns the journal id of the transaction.
func (h *Handle) ID() uuid.UUID { return h.id }

// Hash returns the transaction hash.
func (h *Handle) Hash() common.Hash { return h.hash }

// Meta returns what the transaction was submitted for.
func (h *Handle) Meta() Meta { return h.meta }

// Status returns the current lifecycle status.
func (h *Handle) Status() txstore.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur.Status
}

// Snapshot returns the latest update.
func (h *Handle) Snapshot() Update {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur
}

// Done is closed once observation ends.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Subscribe returns a channel that first receives the current state and then
// every transition. It is closed when observation ends.
func (h *Handle) Subscribe() <-chan Update {
	ch := make(chan Update, subscriberBuffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	ch <- h.cur
	select {
	case <-h.done:
		close(ch)
	default:
		h.subs = append(h.subs, ch)
	}
	return ch
}

// Wait blocks until observation ends and returns the final update. The
// returned error is non-nil only when ctx ends first.
func (h *Handle) Wait(ctx context.Context) (Update, error) {
	select {
	case <-h.done:
		return h.Snapshot(), nil
	case <-ctx.Done():
		return h.Snapshot(), ctx.Err()
	}
}

// Stop ends observation. The transaction itself is unaffected.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// advance applies a legal transition and reports whether it happened.
// Terminal states are sticky and pending cannot be skipped.
func (h *Handle) advance(upd Update) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !legal(h.cur.Status, upd.Status) {
		return false
	}
	upd.Hash = h.hash
	upd.At = time.Now()
	h.cur = upd
	h.broadcast(upd)
	return true
}

// close ends observation, recording err unless a receipt already settled
// the transaction.
func (h *Handle) close(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return
	default:
	}
	if err != nil && !h.cur.Status.Terminal() {
		h.cur.Err = err
		h.cur.At = time.Now()
		h.broadcast(h.cur)
	}
	for _, ch := range h.subs {
		close(ch)
	}
	h.subs = nil
	close(h.done)
}

func (h *Handle) broadcast(upd Update) {
	for _, ch := range h.subs {
		select {
		case ch <- upd:
		default:
		}
	}
}

func legal(from, to txstore.Status) bool {
	switch from {
	case txstore.StatusSubmitted:
		return to == txstore.StatusPending
	case txstore.StatusPending:
		return to == txstore.StatusConfirmed || to == txstore.StatusFailed
	default:
		return false
	}
}
