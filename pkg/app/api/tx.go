package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

const (
	defaultTxListLimit = 20
	maxTxListLimit     = 200
)

// txLookup finds journaled transactions.
type txLookup interface {
	Transaction(ctx context.Context, hash string) (*txstore.Record, error)
	Recent(ctx context.Context, limit int) ([]*txstore.Record, error)
}

type txHTTP struct {
	lookup txLookup
	logger *zap.Logger
}

func registerTxRoutes(r chi.Router, lookup txLookup, logger *zap.Logger) {
	h := &txHTTP{lookup: lookup, logger: logger}

	r.Get("/tx", apphttp.HandleError(h.list))
	r.Get("/tx/{hash}", apphttp.HandleError(h.get))
}

func (h *txHTTP) get(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "hash")
	hash, err := hexutil.Decode(raw)
	if err != nil || len(hash) != 32 {
		return apperrors.BadRequestError(err, "Invalid transaction hash")
	}

	rec, err := h.lookup.Transaction(r.Context(), raw)
	if errors.Is(err, txstore.ErrNotFound) {
		return apperrors.ResourceNotFoundError(err, "Transaction not found")
	}
	if err != nil {
		return apperrors.GeneralError(err)
	}
	apphttp.WriteJSON(w, http.StatusOK, rec)
	return nil
}

func (h *txHTTP) list(w http.ResponseWriter, r *http.Request) error {
	limit := defaultTxListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return apperrors.BadRequestError(err, "limit must be a positive integer")
		}
		limit = min(n, maxTxListLimit)
	}

	recs, err := h.lookup.Recent(r.Context(), limit)
	if err != nil {
		return apperrors.GeneralError(err)
	}
	apphttp.WriteJSON(w, http.StatusOK, recs)
	return nil
}
