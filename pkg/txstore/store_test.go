package txstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/dapp-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/dapp-gateway/pkg/pgutil/migrations"
)

const (
	hashA = "0x1111111111111111111111111111111111111111111111111111111111111111"
	hashB = "0x2222222222222222222222222222222222222222222222222222222222222222"
	from  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func newRecord(hash string, submitted time.Time) *Record {
	return &Record{
		ID:          uuid.New(),
		Hash:        hash,
		Action:      "mint",
		Contract:    "token",
		Network:     "hardhat",
		ChainID:     31337,
		From:        from,
		Status:      StatusSubmitted,
		SubmittedAt: submitted.UTC().Truncate(time.Millisecond),
	}
}

func setupPGStore(t *testing.T) Store {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	if err := mghelper.CreateSchema(ctx, db, &TransactionDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return NewStore(db)
}

func stores(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory":   func(*testing.T) Store { return NewMemoryStore() },
		"postgres": setupPGStore,
	}
}

func TestStoreLifecycle(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			rec := newRecord(hashA, time.Now())

			if err := s.Save(ctx, rec); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.UpdateStatus(ctx, hashA, StatusUpdate{Status: StatusPending}); err != nil {
				t.Fatalf("UpdateStatus pending: %v", err)
			}
			if err := s.UpdateStatus(ctx, hashA, StatusUpdate{Status: StatusConfirmed, BlockNumber: 12, GasUsed: 51234}); err != nil {
				t.Fatalf("UpdateStatus confirmed: %v", err)
			}

			got, err := s.Get(ctx, hashA)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Status != StatusConfirmed || got.BlockNumber != 12 || got.GasUsed != 51234 {
				t.Fatalf("unexpected record %+v", got)
			}
			if got.ID != rec.ID || got.From != from || got.Action != "mint" {
				t.Fatalf("identity fields lost: %+v", got)
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			if _, err := s.Get(ctx, hashB); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if err := s.UpdateStatus(ctx, hashB, StatusUpdate{Status: StatusFailed}); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStoreSaveSupersedes(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()

			first := newRecord(hashA, time.Now().Add(-time.Minute))
			first.Status = StatusFailed
			first.Error = "execution reverted"
			if err := s.Save(ctx, first); err != nil {
				t.Fatalf("Save first: %v", err)
			}

			second := newRecord(hashA, time.Now())
			if err := s.Save(ctx, second); err != nil {
				t.Fatalf("Save second: %v", err)
			}

			got, err := s.Get(ctx, hashA)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != second.ID || got.Status != StatusSubmitted || got.Error != "" {
				t.Fatalf("expected superseded record, got %+v", got)
			}
		})
	}
}

func TestStoreListRecent(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			now := time.Now()

			if err := s.Save(ctx, newRecord(hashA, now.Add(-time.Hour))); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, newRecord(hashB, now)); err != nil {
				t.Fatalf("Save: %v", err)
			}

			list, err := s.ListRecent(ctx, 10)
			if err != nil {
				t.Fatalf("ListRecent: %v", err)
			}
			if len(list) != 2 || list[0].Hash != hashB {
				t.Fatalf("expected newest first, got %+v", list)
			}

			list, err = s.ListRecent(ctx, 1)
			if err != nil {
				t.Fatalf("ListRecent: %v", err)
			}
			if len(list) != 1 {
				t.Fatalf("expected limit to apply, got %d", len(list))
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusSubmitted.Terminal() {
		t.Fatal("pending and submitted are not terminal")
	}
	if !StatusConfirmed.Terminal() || !StatusFailed.Terminal() {
		t.Fatal("confirmed and failed are terminal")
	}
}

func TestMemoryStoreCapacity(t *testing.T) {
	s := NewMemoryStore(WithCapacity(2))
	ctx := context.Background()
	base := time.Now()

	hashC := "0x3333333333333333333333333333333333333333333333333333333333333333"
	// A is the oldest but still pending; B has finished.
	if err := s.Save(ctx, newRecord(hashA, base)); err != nil {
		t.Fatalf("Save A: %v", err)
	}
	if err := s.Save(ctx, newRecord(hashB, base.Add(time.Second))); err != nil {
		t.Fatalf("Save B: %v", err)
	}
	if err := s.UpdateStatus(ctx, hashB, StatusUpdate{Status: StatusConfirmed}); err != nil {
		t.Fatalf("UpdateStatus B: %v", err)
	}
	if err := s.Save(ctx, newRecord(hashC, base.Add(2*time.Second))); err != nil {
		t.Fatalf("Save C: %v", err)
	}

	if _, err := s.Get(ctx, hashB); !errors.Is(err, ErrNotFound) {
		t.Fatalf("finished record should be evicted first, got %v", err)
	}
	if _, err := s.Get(ctx, hashA); err != nil {
		t.Fatalf("pending record evicted: %v", err)
	}

	hashD := "0x4444444444444444444444444444444444444444444444444444444444444444"
	if err := s.Save(ctx, newRecord(hashD, base.Add(3*time.Second))); err != nil {
		t.Fatalf("Save D: %v", err)
	}
	recent, err := s.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 || recent[0].Hash != hashD || recent[1].Hash != hashC {
		t.Fatalf("unexpected records after eviction: %d", len(recent))
	}
}
