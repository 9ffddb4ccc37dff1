// Package interacttest provides hook dependencies backed by an in-memory
// receipt source for service tests.
package interacttest

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/network"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
)

// Receipts answers receipt lookups for mined hashes only.
type Receipts struct {
	mu       sync.Mutex
	statuses map[common.Hash]uint64
}

// TransactionReceipt implements txtracker.ReceiptSource.
func (r *Receipts) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.statuses[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{Status: st, BlockNumber: big.NewInt(1), GasUsed: 21000}, nil
}

// Mine makes hash available with the given receipt status.
func (r *Receipts) Mine(hash common.Hash, status uint64) {
	r.mu.Lock()
	r.statuses[hash] = status
	r.mu.Unlock()
}

// Fixture bundles hook dependencies on the default hardhat deployment.
type Fixture struct {
	Deps     interact.Deps
	Receipts *Receipts
	Tracker  *txtracker.Tracker
	Networks *network.Registry
}

// New builds a Fixture whose hooks invalidate through inv.
func New(t *testing.T, inv interact.Invalidator) *Fixture {
	t.Helper()
	return NewWithNetworks(t, inv, config.DefaultNetworks())
}

// NewWithNetworks is New with explicit deployments.
func NewWithNetworks(t *testing.T, inv interact.Invalidator, nets []config.NetworkConfig) *Fixture {
	t.Helper()
	reg, err := network.NewRegistry(nets, config.ChainIDHardhat)
	if err != nil {
		t.Fatalf("network registry: %v", err)
	}
	src := &Receipts{statuses: make(map[common.Hash]uint64)}
	tr := txtracker.NewTracker(src, txtracker.WithPollInterval(5*time.Millisecond))
	t.Cleanup(tr.Stop)

	return &Fixture{
		Deps:     interact.Deps{Tracker: tr, Cache: inv, Networks: reg, Logger: zap.NewNop()},
		Receipts: src,
		Tracker:  tr,
		Networks: reg,
	}
}

// Handle returns a tracked handle for hash without any hook involved.
func (f *Fixture) Handle(hash common.Hash, action string) *txtracker.Handle {
	return f.Tracker.Track(hash, txtracker.Meta{Action: action})
}

// AwaitStatus waits until handle reaches want or fails the test.
func AwaitStatus(t *testing.T, handle *txtracker.Handle, want txstore.Status) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	upd, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("waiting for %s: %v", handle.Hash().Hex(), err)
	}
	if upd.Status != want {
		t.Fatalf("expected status %s, got %s", want, upd.Status)
	}
}

// AwaitPhase polls state until it reaches want or fails the test.
func AwaitPhase(t *testing.T, state func() interact.State, want interact.Phase) interact.State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if st := state(); st.Phase == want {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	st := state()
	t.Fatalf("expected phase %s, got %s", want, st.Phase)
	return st
}
