package service

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
)

// MintRequest is the body of POST /nft/mint.
type MintRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the NFT endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/nft", func(r chi.Router) {
		r.Get("/info", apphttp.HandleError(h.info))
		r.Get("/balance/{address}", apphttp.HandleError(h.balance))
		r.Get("/owners/{address}/tokens", apphttp.HandleError(h.tokens))
		r.Get("/tokens/{id}", apphttp.HandleError(h.token))
		r.Get("/state", apphttp.HandleError(h.states))
		r.Post("/mint", apphttp.HandleError(h.mint))
	})
}

func (h *HTTP) info(w http.ResponseWriter, r *http.Request) error {
	info, err := h.service.Info(r.Context())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, info)
	return nil
}

func (h *HTTP) balance(w http.ResponseWriter, r *http.Request) error {
	addr, err := interact.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	bal, err := h.service.Balance(r.Context(), addr)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, bal)
	return nil
}

func (h *HTTP) tokens(w http.ResponseWriter, r *http.Request) error {
	addr, err := interact.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	holdings, err := h.service.TokensOf(r.Context(), addr)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, holdings)
	return nil
}

func (h *HTTP) token(w http.ResponseWriter, r *http.Request) error {
	id, err := parseTokenID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	tok, err := h.service.Token(r.Context(), id)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, tok)
	return nil
}

func (h *HTTP) states(w http.ResponseWriter, _ *http.Request) error {
	h.writeJSON(w, http.StatusOK, h.service.States())
	return nil
}

func (h *HTTP) mint(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req MintRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	handle, err := h.service.Mint(r.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusAccepted, interact.SubmissionOf(handle))
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// parseTokenID accepts a non-negative decimal token id.
func parseTokenID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() < 0 {
		return nil, interact.ValidationError("Invalid token id")
	}
	return id, nil
}
