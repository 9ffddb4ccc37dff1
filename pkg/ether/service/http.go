package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
)

// SendRequest is the body of POST /eth/send.
type SendRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the ether and wallet endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/wallet", apphttp.HandleError(h.wallet))
	r.Route("/eth", func(r chi.Router) {
		r.Get("/balance/{address}", apphttp.HandleError(h.balance))
		r.Get("/state", apphttp.HandleError(h.states))
		r.Post("/send", apphttp.HandleError(h.send))
	})
}

func (h *HTTP) wallet(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.service.Connection(r.Context())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, conn)
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

func (h *HTTP) states(w http.ResponseWriter, _ *http.Request) error {
	h.writeJSON(w, http.StatusOK, h.service.States())
	return nil
}

func (h *HTTP) send(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req SendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	handle, err := h.service.Send(r.Context(), req.To, req.Amount)
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
