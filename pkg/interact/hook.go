// Package interact runs user-initiated writes through validation, signing,
// confirmation tracking and cache invalidation.
package interact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chainsafe/dapp-gateway/internal/metrics"
	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/chain"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrValidation marks input rejected before any chain interaction.
	ErrValidation = errors.New("validation error")
	// ErrReverted is set on a hook whose transaction was mined with a
	// failed receipt.
	ErrReverted = errors.New("transaction reverted")
)

// ValidationError wraps ErrValidation as a bad request with message.
func ValidationError(message string) error {
	return apperrors.BadRequestError(fmt.Errorf("%w: %s", ErrValidation, message), message)
}

// Phase is the local lifecycle of a hook.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePending    Phase = "pending"
	PhaseConfirming Phase = "confirming"
	PhaseConfirmed  Phase = "confirmed"
	PhaseFailed     Phase = "failed"
)

// State is the observable state of a hook.
type State struct {
	Phase     Phase
	Hash      common.Hash
	Err       error
	UpdatedAt time.Time
}

// MarshalJSON renders the error as a message and omits an empty hash.
func (s State) MarshalJSON() ([]byte, error) {
	out := struct {
		Phase     Phase     `json:"phase"`
		Hash      string    `json:"hash,omitempty"`
		Error     string    `json:"error,omitempty"`
		UpdatedAt time.Time `json:"updatedAt"`
	}{Phase: s.Phase, UpdatedAt: s.UpdatedAt}
	if s.Hash != (common.Hash{}) {
		out.Hash = s.Hash.Hex()
	}
	if s.Err != nil {
		out.Error = apperrors.MessageOf(s.Err)
	}
	return json.Marshal(out)
}

// Tracker starts confirmation tracking.
type Tracker interface {
	Track(hash common.Hash, meta txtracker.Meta) *txtracker.Handle
}

// Invalidator drops cached reads.
type Invalidator interface {
	Invalidate(keys ...string)
}

// Deps are shared by every hook of a service.
type Deps struct {
	Tracker  Tracker
	Cache    Invalidator
	Networks chain.Resolver
	Logger   *zap.Logger
}

// Request describes one write.
type Request struct {
	// Contract is resolved before Submit runs. Empty for native transfers.
	Contract contracts.ID
	From     common.Address
	Validate func() error
	Submit   func(ctx context.Context) (common.Hash, error)
	// Invalidate lists cache keys dropped once the transaction confirms.
	Invalidate []string
}

// Hook owns the state of one kind of write. A new Run supersedes the
// previous one; writes are never queued or deduplicated.
type Hook struct {
	action string
	deps   Deps
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	gen     uint64
	subs    map[int]chan State
	nextSub int
}

// NewHook creates an idle hook for action.
func NewHook(action string, deps Deps) *Hook {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hook{
		action: action,
		deps:   deps,
		logger: logger.With(zap.String("action", action)),
		state:  State{Phase: PhaseIdle, UpdatedAt: time.Now()},
		subs:   make(map[int]chan State),
	}
}

// Action returns the name of the hook.
func (h *Hook) Action() string { return h.action }

// State returns the current state.
func (h *Hook) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Subscribe delivers every state change. A slow subscriber only sees the
// newest state.
func (h *Hook) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = ch
	ch <- h.state
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
			h.mu.Unlock()
		})
	}
}

// Reset returns the hook to idle and detaches any running observation.
func (h *Hook) Reset() {
	h.mu.Lock()
	h.gen++
	h.set(State{Phase: PhaseIdle})
	h.mu.Unlock()
}

// Run validates req, resolves its contract, submits it and starts
// confirmation tracking. It returns once the transaction is broadcast.
func (h *Hook) Run(ctx context.Context, req Request) (*txtracker.Handle, error) {
	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	if req.Validate != nil {
		if err := req.Validate(); err != nil {
			return nil, h.fail(gen, PhaseIdle, err)
		}
	}

	if req.Contract != "" && h.deps.Networks != nil {
		if _, err := h.deps.Networks.Resolve(req.Contract); err != nil {
			return nil, h.fail(gen, PhaseIdle, err)
		}
	}

	h.update(gen, State{Phase: PhasePending})
	hash, err := req.Submit(ctx)
	if err != nil {
		phase := PhaseFailed
		if apperrors.Is(err, apperrors.CategoryDataError) || apperrors.Is(err, apperrors.CategoryNotSupported) {
			phase = PhaseIdle
		}
		return nil, h.fail(gen, phase, err)
	}

	h.update(gen, State{Phase: PhaseConfirming, Hash: hash})

	meta := txtracker.Meta{
		Action:   h.action,
		Contract: string(req.Contract),
		From:     req.From,
	}
	if h.deps.Networks != nil {
		net := h.deps.Networks.Active()
		meta.Network, meta.ChainID = net.Name, net.ChainID
	}
	handle := h.deps.Tracker.Track(hash, meta)
	go h.watch(gen, handle, req.Invalidate)
	return handle, nil
}

func (h *Hook) watch(gen uint64, handle *txtracker.Handle, keys []string) {
	ch := handle.Subscribe()
	for upd := range ch {
		switch {
		case upd.Status == txstore.StatusConfirmed:
			if h.deps.Cache != nil && len(keys) > 0 {
				h.deps.Cache.Invalidate(keys...)
			}
			h.update(gen, State{Phase: PhaseConfirmed, Hash: upd.Hash})
			h.logger.Info("Transaction confirmed",
				zap.String("tx_hash", upd.Hash.Hex()),
				zap.Uint64("block", upd.BlockNumber))
		case upd.Status == txstore.StatusFailed:
			h.update(gen, State{Phase: PhaseFailed, Hash: upd.Hash, Err: ErrReverted})
		case upd.Err != nil:
			h.update(gen, State{Phase: PhaseConfirming, Hash: upd.Hash, Err: upd.Err})
		}
	}
}

func (h *Hook) fail(gen uint64, phase Phase, err error) error {
	h.update(gen, State{Phase: phase, Err: err})
	metrics.ErrorsTotal.WithLabelValues(h.action, apperrors.CategoryOf(err).String()).Inc()
	h.logger.Info("Interaction failed",
		zap.String("phase", string(phase)),
		zap.Stringer("category", apperrors.CategoryOf(err)),
		zap.Error(err))
	return err
}

// update applies st unless a newer run superseded gen.
func (h *Hook) update(gen uint64, st State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen {
		return
	}
	h.set(st)
}

func (h *Hook) set(st State) {
	st.UpdatedAt = time.Now()
	h.state = st
	for _, ch := range h.subs {
		select {
		case ch <- st:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}

// Submission is the response to an accepted write.
type Submission struct {
	Action string         `json:"action"`
	Hash   string         `json:"hash"`
	Status txstore.Status `json:"status"`
}

// SubmissionOf describes the tracked transaction of handle.
func SubmissionOf(handle *txtracker.Handle) Submission {
	return Submission{
		Action: handle.Meta().Action,
		Hash:   handle.Hash().Hex(),
		Status: handle.Status(),
	}
}
