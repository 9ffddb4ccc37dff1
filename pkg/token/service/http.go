package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
)

// TransferRequest is the body of POST /token/transfer.
type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the token endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/token", func(r chi.Router) {
		r.Get("/info", apphttp.HandleError(h.info))
		r.Get("/balance/{address}", apphttp.HandleError(h.balance))
		r.Get("/cooldown/{address}", apphttp.HandleError(h.cooldown))
		r.Get("/cooldown/{address}/stream", apphttp.HandleError(h.cooldownStream))
		r.Get("/state", apphttp.HandleError(h.states))
		r.Post("/mint", apphttp.HandleError(h.mint))
		r.Post("/transfer", apphttp.HandleError(h.transfer))
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

func (h *HTTP) cooldown(w http.ResponseWriter, r *http.Request) error {
	addr, err := interact.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	cd, err := h.service.Cooldown(r.Context(), addr)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, cd)
	return nil
}

// cooldownStream sends the countdown as server-sent events, one per second.
func (h *HTTP) cooldownStream(w http.ResponseWriter, r *http.Request) error {
	addr, err := interact.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		return apperrors.GeneralError(fmt.Errorf("streaming unsupported"))
	}
	updates, err := h.service.WatchCooldown(r.Context(), addr)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	for cd := range updates {
		data, err := json.Marshal(cd)
		if err != nil {
			h.logger.Warn("Failed to encode cooldown", zap.Error(err))
			continue
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return nil
		}
		flusher.Flush()
	}
	return nil
}

func (h *HTTP) states(w http.ResponseWriter, _ *http.Request) error {
	h.writeJSON(w, http.StatusOK, h.service.States())
	return nil
}

func (h *HTTP) mint(w http.ResponseWriter, r *http.Request) error {
	handle, err := h.service.Mint(r.Context())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusAccepted, interact.SubmissionOf(handle))
	return nil
}

func (h *HTTP) transfer(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req TransferRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	handle, err := h.service.Transfer(r.Context(), req.To, req.Amount)
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
