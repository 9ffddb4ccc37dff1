package service

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/interact/interacttest"
	"github.com/chainsafe/dapp-gateway/pkg/nft"
	"github.com/chainsafe/dapp-gateway/pkg/nft/service/mocks"
)

func newNFTTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestNFTHTTP_Token(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Token(mock.Anything, mock.MatchedBy(func(id *big.Int) bool { return id.Int64() == 12 })).
		Return(&nft.Token{ID: "12", URI: "ipfs://x"}, nil).
		Once()

	rec := httptest.NewRecorder()
	newNFTTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nft/tokens/12", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got nft.Token
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != "12" {
		t.Fatalf("unexpected token %+v", got)
	}
}

func TestNFTHTTP_InvalidTokenID_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	for _, id := range []string{"abc", "-1"} {
		rec := httptest.NewRecorder()
		newNFTTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nft/tokens/"+id, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected status %d, got %d", id, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestNFTHTTP_MintAccepted(t *testing.T) {
	hash := common.HexToHash("0xee")
	handle := interacttest.New(t, nil).Handle(hash, ActionMint)

	svc := mocks.NewService(t)
	svc.EXPECT().Mint(mock.Anything, "Sunset", "Warm").Return(handle, nil).Once()

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name":"Sunset","description":"Warm"}`)
	newNFTTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/nft/mint", body))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	var got interact.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Hash != hash.Hex() {
		t.Fatalf("expected hash %s, got %s", hash.Hex(), got.Hash)
	}
}

func TestNFTHTTP_MintInvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newNFTTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/nft/mint", bytes.NewBufferString("nope")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
