package interact

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/network"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/wallet"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type receipts struct {
	mu       sync.Mutex
	statuses map[common.Hash]uint64
}

func (r *receipts) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.statuses[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{Status: st, BlockNumber: big.NewInt(9), GasUsed: 40000}, nil
}

func (r *receipts) mine(hash common.Hash, status uint64) {
	r.mu.Lock()
	r.statuses[hash] = status
	r.mu.Unlock()
}

type invalidations struct {
	mu   sync.Mutex
	keys []string
}

func (i *invalidations) Invalidate(keys ...string) {
	i.mu.Lock()
	i.keys = append(i.keys, keys...)
	i.mu.Unlock()
}

func (i *invalidations) seen() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.keys...)
}

type fixture struct {
	hook     *Hook
	receipts *receipts
	cache    *invalidations
	tracker  *txtracker.Tracker
}

func setup(t *testing.T, addrs map[string]string) *fixture {
	t.Helper()
	reg, err := network.NewRegistry([]config.NetworkConfig{{
		ChainID:   config.ChainIDHardhat,
		Name:      "hardhat",
		Contracts: addrs,
	}}, config.ChainIDHardhat)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	src := &receipts{statuses: make(map[common.Hash]uint64)}
	tr := txtracker.NewTracker(src, txtracker.WithPollInterval(5*time.Millisecond))
	t.Cleanup(tr.Stop)

	inv := &invalidations{}
	hook := NewHook("mint", Deps{Tracker: tr, Cache: inv, Networks: reg, Logger: zap.NewNop()})
	return &fixture{hook: hook, receipts: src, cache: inv, tracker: tr}
}

var deployed = map[string]string{"token": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}

func waitPhase(t *testing.T, h *Hook, want Phase) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if st := h.State(); st.Phase == want {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hook stuck in %s, want %s", h.State().Phase, want)
	return State{}
}

func TestRunConfirmedInvalidates(t *testing.T) {
	f := setup(t, deployed)
	hash := common.HexToHash("0x01")

	handle, err := f.hook.Run(context.Background(), Request{
		Contract:   contracts.Token,
		Submit:     func(context.Context) (common.Hash, error) { return hash, nil },
		Invalidate: []string{"token:balance:0xabc", "token:info"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if handle.Hash() != hash {
		t.Fatalf("handle tracks %s", handle.Hash().Hex())
	}
	if st := f.hook.State(); st.Phase != PhaseConfirming || st.Hash != hash {
		t.Fatalf("expected confirming with hash, got %+v", st)
	}
	if len(f.cache.seen()) != 0 {
		t.Fatal("cache invalidated before confirmation")
	}

	f.receipts.mine(hash, types.ReceiptStatusSuccessful)
	waitPhase(t, f.hook, PhaseConfirmed)

	keys := f.cache.seen()
	if len(keys) != 2 || keys[0] != "token:balance:0xabc" {
		t.Fatalf("unexpected invalidations %v", keys)
	}
}

func TestRunFailedReceipt(t *testing.T) {
	f := setup(t, deployed)
	hash := common.HexToHash("0x02")
	f.receipts.mine(hash, types.ReceiptStatusFailed)

	if _, err := f.hook.Run(context.Background(), Request{
		Contract:   contracts.Token,
		Submit:     func(context.Context) (common.Hash, error) { return hash, nil },
		Invalidate: []string{"token:info"},
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := waitPhase(t, f.hook, PhaseFailed)
	if !errors.Is(st.Err, ErrReverted) {
		t.Fatalf("expected ErrReverted, got %v", st.Err)
	}
	if len(f.cache.seen()) != 0 {
		t.Fatal("failed transaction must not invalidate")
	}
}

func TestValidationNeverSubmits(t *testing.T) {
	f := setup(t, deployed)
	submitted := false

	_, err := f.hook.Run(context.Background(), Request{
		Contract: contracts.Token,
		Validate: func() error { return ValidationError("Amount must be greater than 0") },
		Submit: func(context.Context) (common.Hash, error) {
			submitted = true
			return common.Hash{}, nil
		},
	})
	if !errors.Is(err, ErrValidation) || !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if submitted {
		t.Fatal("invalid input reached submit")
	}
	if st := f.hook.State(); st.Phase != PhaseIdle || st.Err == nil {
		t.Fatalf("expected idle with error, got %+v", st)
	}
}

func TestUnresolvedContractNeverSubmits(t *testing.T) {
	f := setup(t, map[string]string{"token": ""})
	submitted := false

	_, err := f.hook.Run(context.Background(), Request{
		Contract: contracts.Token,
		Submit: func(context.Context) (common.Hash, error) {
			submitted = true
			return common.Hash{}, nil
		},
	})
	if !errors.Is(err, network.ErrContractUnavailable) || !apperrors.Is(err, apperrors.CategoryNotSupported) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if submitted {
		t.Fatal("unresolved contract reached submit")
	}
	if st := f.hook.State(); st.Phase != PhaseIdle {
		t.Fatalf("expected idle, got %s", st.Phase)
	}
}

func TestRejectedWriteFails(t *testing.T) {
	f := setup(t, deployed)

	_, err := f.hook.Run(context.Background(), Request{
		Contract: contracts.Token,
		Submit: func(context.Context) (common.Hash, error) {
			return common.Hash{}, apperrors.UserRejectedError(wallet.ErrRejected, "User rejected the request")
		},
	})
	if !errors.Is(err, wallet.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	st := f.hook.State()
	if st.Phase != PhaseFailed || !errors.Is(st.Err, wallet.ErrRejected) {
		t.Fatalf("expected failed with rejection, got %+v", st)
	}
}

func TestNewRunSupersedes(t *testing.T) {
	f := setup(t, deployed)
	first := common.HexToHash("0x0a")
	second := common.HexToHash("0x0b")

	for _, h := range []common.Hash{first, second} {
		hash := h
		if _, err := f.hook.Run(context.Background(), Request{
			Contract: contracts.Token,
			Submit:   func(context.Context) (common.Hash, error) { return hash, nil },
		}); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}

	f.receipts.mine(first, types.ReceiptStatusFailed)
	time.Sleep(50 * time.Millisecond)
	if st := f.hook.State(); st.Phase != PhaseConfirming || st.Hash != second {
		t.Fatalf("superseded run leaked into state: %+v", st)
	}

	f.receipts.mine(second, types.ReceiptStatusSuccessful)
	st := waitPhase(t, f.hook, PhaseConfirmed)
	if st.Hash != second {
		t.Fatalf("expected second hash, got %s", st.Hash.Hex())
	}
}

func TestSubscribeSeesPhases(t *testing.T) {
	f := setup(t, deployed)
	ch, unsubscribe := f.hook.Subscribe()
	defer unsubscribe()

	if st := <-ch; st.Phase != PhaseIdle {
		t.Fatalf("expected idle replay, got %s", st.Phase)
	}

	hash := common.HexToHash("0x03")
	f.receipts.mine(hash, types.ReceiptStatusSuccessful)
	if _, err := f.hook.Run(context.Background(), Request{
		Contract: contracts.Token,
		Submit:   func(context.Context) (common.Hash, error) { return hash, nil },
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case st := <-ch:
			if st.Phase == PhaseConfirmed {
				return
			}
		case <-timeout:
			t.Fatal("subscriber never saw confirmation")
		}
	}
}

func TestStateJSON(t *testing.T) {
	st := State{Phase: PhaseFailed, Err: apperrors.UserRejectedError(wallet.ErrRejected, "User rejected the request")}
	raw, err := st.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `"error":"User rejected the request"`
	if !strings.Contains(string(raw), want) || strings.Contains(string(raw), `"hash"`) {
		t.Fatalf("unexpected json %s", raw)
	}
}
