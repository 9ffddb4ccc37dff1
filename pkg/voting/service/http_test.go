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
	"github.com/chainsafe/dapp-gateway/pkg/voting"
	"github.com/chainsafe/dapp-gateway/pkg/voting/service/mocks"
)

func newVotingTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestVotingHTTP_RecentPostsCount(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().RecentPosts(mock.Anything, 5).Return([]voting.Post{{ID: 1, Exists: true}}, nil).Once()

	rec := httptest.NewRecorder()
	newVotingTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/voting/posts?count=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got []voting.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected posts %+v", got)
	}
}

func TestVotingHTTP_InvalidPostID_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	for _, path := range []string{"/voting/posts/0", "/voting/posts/abc"} {
		rec := httptest.NewRecorder()
		newVotingTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestVotingHTTP_VoteAccepted(t *testing.T) {
	hash := common.HexToHash("0x07")
	handle := interacttest.New(t, nil).Handle(hash, ActionVote)

	svc := mocks.NewService(t)
	svc.EXPECT().Vote(mock.Anything, uint64(5), true).Return(handle, nil).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/voting/posts/5/vote", bytes.NewBufferString(`{"isLike":true}`))
	newVotingTestServer(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	var got interact.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Action != ActionVote || got.Hash != hash.Hex() {
		t.Fatalf("unexpected submission %+v", got)
	}
}

func TestVotingHTTP_CreatePostInvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newVotingTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/voting/posts", bytes.NewBufferString("{")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
