package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

type journalLookup struct {
	store txstore.Store
}

func (j *journalLookup) Transaction(ctx context.Context, hash string) (*txstore.Record, error) {
	return j.store.Get(ctx, common.HexToHash(hash).Hex())
}

func (j *journalLookup) Recent(ctx context.Context, limit int) ([]*txstore.Record, error) {
	return j.store.ListRecent(ctx, limit)
}

func setupTxRouter(t *testing.T, recs ...*txstore.Record) http.Handler {
	t.Helper()
	store := txstore.NewMemoryStore()
	for _, rec := range recs {
		if err := store.Save(context.Background(), rec); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}
	r := chi.NewRouter()
	registerTxRoutes(r, &journalLookup{store: store}, zap.NewNop())
	return r
}

func record(hash common.Hash, action string, at time.Time) *txstore.Record {
	return &txstore.Record{
		ID:          uuid.New(),
		Hash:        hash.Hex(),
		Action:      action,
		Contract:    "token",
		Network:     "hardhat",
		ChainID:     31337,
		Status:      txstore.StatusPending,
		SubmittedAt: at,
	}
}

func TestTxRoutes_Get(t *testing.T) {
	hash := common.HexToHash("0xabc1")
	router := setupTxRouter(t, record(hash, "mint_tokens", time.Now()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tx/"+hash.Hex(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got txstore.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Action != "mint_tokens" || got.Status != txstore.StatusPending {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestTxRoutes_GetErrors(t *testing.T) {
	router := setupTxRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tx/0x1234", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short hash status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tx/"+common.HexToHash("0x01").Hex(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown hash status = %d, want 404", rec.Code)
	}
}

func TestTxRoutes_List(t *testing.T) {
	now := time.Now()
	router := setupTxRouter(t,
		record(common.HexToHash("0x01"), "vote", now.Add(-time.Minute)),
		record(common.HexToHash("0x02"), "create_post", now),
		record(common.HexToHash("0x03"), "send_eth", now.Add(-time.Hour)),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tx?limit=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []txstore.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Action != "create_post" || got[1].Action != "vote" {
		t.Fatalf("unexpected list %+v", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tx?limit=zero", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status = %d, want 400", rec.Code)
	}
}
