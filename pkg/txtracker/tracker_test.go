package txtracker

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	testHash = common.HexToHash("0xabc1")
	testFrom = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

// scriptedSource returns NotFound for the first misses calls, then receipt.
type scriptedSource struct {
	mu      sync.Mutex
	misses  int
	calls   int
	receipt *types.Receipt
	err     error
}

func (s *scriptedSource) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.calls <= s.misses || s.receipt == nil {
		return nil, ethereum.NotFound
	}
	return s.receipt, nil
}

func receipt(status uint64) *types.Receipt {
	return &types.Receipt{Status: status, BlockNumber: big.NewInt(42), GasUsed: 51000}
}

func waitDone(t *testing.T, h *Handle) Update {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	upd, err := h.Wait(ctx)
	if err != nil {
		t.Fatalf("handle did not finish: %v", err)
	}
	return upd
}

func collect(ch <-chan Update) []txstore.Status {
	var out []txstore.Status
	for upd := range ch {
		out = append(out, upd.Status)
	}
	return out
}

func TestTrackConfirmed(t *testing.T) {
	src := &scriptedSource{misses: 2, receipt: receipt(types.ReceiptStatusSuccessful)}
	journal := txstore.NewMemoryStore()
	tr := NewTracker(src, WithPollInterval(5*time.Millisecond), WithJournal(journal))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "mint", Contract: "token", From: testFrom})
	sub := h.Subscribe()

	upd := waitDone(t, h)
	if upd.Status != txstore.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", upd.Status)
	}
	if upd.BlockNumber != 42 || upd.GasUsed != 51000 {
		t.Fatalf("receipt fields missing: %+v", upd)
	}
	if upd.Err != nil {
		t.Fatalf("unexpected error: %v", upd.Err)
	}

	seen := collect(sub)
	if seen[len(seen)-1] != txstore.StatusConfirmed {
		t.Fatalf("subscriber did not see confirmation: %v", seen)
	}
	for _, s := range seen {
		if s == txstore.StatusFailed {
			t.Fatalf("confirmed transaction also reported failed: %v", seen)
		}
	}

	rec, err := journal.Get(context.Background(), testHash.Hex())
	if err != nil {
		t.Fatalf("journal get: %v", err)
	}
	if rec.Status != txstore.StatusConfirmed || rec.BlockNumber != 42 || rec.Action != "mint" {
		t.Fatalf("journal not updated: %+v", rec)
	}
	if rec.ID != h.ID() {
		t.Fatalf("journal id mismatch: %s vs %s", rec.ID, h.ID())
	}
}

func TestTrackFailedReceipt(t *testing.T) {
	src := &scriptedSource{receipt: receipt(types.ReceiptStatusFailed)}
	tr := NewTracker(src, WithPollInterval(5*time.Millisecond))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "vote"})
	sub := h.Subscribe()
	upd := waitDone(t, h)
	if upd.Status != txstore.StatusFailed {
		t.Fatalf("expected failed, got %s", upd.Status)
	}

	// The subscriber may join late, so it sees a suffix of the lifecycle.
	seen := collect(sub)
	want := []txstore.Status{txstore.StatusSubmitted, txstore.StatusPending, txstore.StatusFailed}
	offset := len(want) - len(seen)
	if offset < 0 {
		t.Fatalf("expected at most %v, got %v", want, seen)
	}
	for i := range seen {
		if seen[i] != want[offset+i] {
			t.Fatalf("expected suffix of %v, got %v", want, seen)
		}
	}
}

func TestNeverConfirmsWithoutReceipt(t *testing.T) {
	src := &scriptedSource{err: errors.New("connection refused")}
	tr := NewTracker(src, WithPollInterval(5*time.Millisecond))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "send"})
	time.Sleep(50 * time.Millisecond)
	if s := h.Status(); s != txstore.StatusPending {
		t.Fatalf("expected pending while receipts fail, got %s", s)
	}
	h.Stop()

	upd := h.Snapshot()
	if upd.Status != txstore.StatusPending {
		t.Fatalf("stop changed status to %s", upd.Status)
	}
	if !errors.Is(upd.Err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", upd.Err)
	}
}

func TestTimeoutKeepsPending(t *testing.T) {
	src := &scriptedSource{}
	journal := txstore.NewMemoryStore()
	tr := NewTracker(src,
		WithPollInterval(5*time.Millisecond),
		WithTimeout(30*time.Millisecond),
		WithJournal(journal))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "mint"})
	upd := waitDone(t, h)
	if upd.Status != txstore.StatusPending {
		t.Fatalf("timeout must not fail the transaction, got %s", upd.Status)
	}
	if !errors.Is(upd.Err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", upd.Err)
	}

	rec, err := journal.Get(context.Background(), testHash.Hex())
	if err != nil {
		t.Fatalf("journal get: %v", err)
	}
	if rec.Status != txstore.StatusPending || rec.Error != ErrTimeout.Error() {
		t.Fatalf("unexpected journal record %+v", rec)
	}
}

func TestTrackSameHashReturnsHandle(t *testing.T) {
	tr := NewTracker(&scriptedSource{}, WithPollInterval(time.Hour))
	defer tr.Stop()

	a := tr.Track(testHash, Meta{Action: "mint"})
	b := tr.Track(testHash, Meta{Action: "mint"})
	if a != b {
		t.Fatal("expected the in-flight handle to be reused")
	}
	if got, ok := tr.Get(testHash); !ok || got != a {
		t.Fatal("expected handle in registry")
	}
}

func TestRegistryForgetsSettled(t *testing.T) {
	tr := NewTracker(&scriptedSource{receipt: receipt(types.ReceiptStatusSuccessful)},
		WithPollInterval(5*time.Millisecond))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "mint"})
	waitDone(t, h)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := tr.Get(testHash); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("settled handle still registered")
}

func TestStopEndsAllHandles(t *testing.T) {
	tr := NewTracker(&scriptedSource{}, WithPollInterval(5*time.Millisecond))
	a := tr.Track(common.HexToHash("0x01"), Meta{Action: "mint"})
	b := tr.Track(common.HexToHash("0x02"), Meta{Action: "vote"})
	tr.Stop()

	for _, h := range []*Handle{a, b} {
		select {
		case <-h.Done():
		default:
			t.Fatalf("handle %s still running after Stop", h.Hash().Hex())
		}
	}

	late := tr.Track(common.HexToHash("0x03"), Meta{Action: "send"})
	if !errors.Is(late.Snapshot().Err, ErrStopped) {
		t.Fatalf("expected stopped tracker to refuse tracking, got %v", late.Snapshot().Err)
	}
}

func TestWaitHonoursContext(t *testing.T) {
	tr := NewTracker(&scriptedSource{}, WithPollInterval(time.Hour))
	defer tr.Stop()

	h := tr.Track(testHash, Meta{Action: "mint"})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := h.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
