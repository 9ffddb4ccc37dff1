package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/interact/interacttest"
	"github.com/chainsafe/dapp-gateway/pkg/token"
	"github.com/chainsafe/dapp-gateway/pkg/token/service/mocks"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newTokenTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestTokenHTTP_Balance(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Balance(mock.Anything, account).
		Return(&token.Balance{Address: account.Hex(), Raw: "5", Formatted: "0.000000000000000005"}, nil).
		Once()

	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token/balance/"+account.Hex(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got token.Balance
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Raw != "5" {
		t.Fatalf("expected raw 5, got %s", got.Raw)
	}
}

func TestTokenHTTP_BalanceInvalidAddress_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token/balance/0xnope", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "Invalid Ethereum address" {
		t.Fatalf("expected error %q, got %q", "Invalid Ethereum address", got.Error)
	}
}

func TestTokenHTTP_TransferInvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/transfer", bytes.NewBufferString("{invalid")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", got.Error)
	}
}

func TestTokenHTTP_TransferValidationMessage(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Transfer(mock.Anything, recipient.Hex(), "0").
		Return(nil, interact.ValidationError("Amount must be greater than 0")).
		Once()

	body := `{"to":"` + recipient.Hex() + `","amount":"0"}`
	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/transfer", bytes.NewBufferString(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "Amount must be greater than 0" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestTokenHTTP_MintAccepted(t *testing.T) {
	hash := common.HexToHash("0xcc")
	handle := interacttest.New(t, nil).Handle(hash, ActionMint)

	svc := mocks.NewService(t)
	svc.EXPECT().Mint(mock.Anything).Return(handle, nil).Once()

	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/mint", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	var got interact.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Hash != hash.Hex() || got.Action != ActionMint {
		t.Fatalf("unexpected submission %+v", got)
	}
}

func TestTokenHTTP_States(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().States().Return(map[string]interact.State{
		ActionMint:     {Phase: interact.PhaseConfirming},
		ActionTransfer: {Phase: interact.PhaseIdle},
	}).Once()

	rec := httptest.NewRecorder()
	newTokenTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token/state", nil))

	var got map[string]struct {
		Phase string `json:"phase"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got[ActionMint].Phase != "confirming" || got[ActionTransfer].Phase != "idle" {
		t.Fatalf("unexpected states %+v", got)
	}
}
