package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
)

// CreatePostRequest is the body of POST /voting/posts.
type CreatePostRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// VoteRequest is the body of POST /voting/posts/{id}/vote.
type VoteRequest struct {
	IsLike bool `json:"isLike"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the voting endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/voting", func(r chi.Router) {
		r.Get("/posts", apphttp.HandleError(h.recent))
		r.Post("/posts", apphttp.HandleError(h.create))
		r.Get("/posts/{id}", apphttp.HandleError(h.post))
		r.Post("/posts/{id}/vote", apphttp.HandleError(h.vote))
		r.Get("/posts/{id}/votes/{address}", apphttp.HandleError(h.userVote))
		r.Get("/state", apphttp.HandleError(h.states))
	})
}

func (h *HTTP) recent(w http.ResponseWriter, r *http.Request) error {
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return interact.ValidationError("Invalid count")
		}
		count = n
	}
	posts, err := h.service.RecentPosts(r.Context(), count)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, posts)
	return nil
}

func (h *HTTP) post(w http.ResponseWriter, r *http.Request) error {
	id, err := parsePostID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	post, err := h.service.Post(r.Context(), id)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, post)
	return nil
}

func (h *HTTP) userVote(w http.ResponseWriter, r *http.Request) error {
	id, err := parsePostID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	addr, err := interact.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	vote, err := h.service.UserVote(r.Context(), id, addr)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, vote)
	return nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req CreatePostRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	handle, err := h.service.CreatePost(r.Context(), req.Content, req.Author)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusAccepted, interact.SubmissionOf(handle))
	return nil
}

func (h *HTTP) vote(w http.ResponseWriter, r *http.Request) error {
	id, err := parsePostID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	var req VoteRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	handle, err := h.service.Vote(r.Context(), id, req.IsLike)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusAccepted, interact.SubmissionOf(handle))
	return nil
}

func (h *HTTP) states(w http.ResponseWriter, _ *http.Request) error {
	h.writeJSON(w, http.StatusOK, h.service.States())
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func parsePostID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, interact.ValidationError("Invalid post id")
	}
	return id, nil
}
