package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
)

// LoginRequest carries a signed login message.
type LoginRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HTTP serves the login endpoints
type HTTP struct {
	validator *JWTValidator
	allowed   *Allowlist
	issuer    string
	skew      time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// RegisterRoutes registers the auth endpoints on the given chi router. The
// wallet signs the message from GET /auth/message and exchanges it for a
// token at POST /auth/login. Only signers in allowed receive a token.
func RegisterRoutes(r chi.Router, validator *JWTValidator, allowed *Allowlist, issuer string, skew time.Duration, logger *zap.Logger) {
	h := &HTTP{
		validator: validator,
		allowed:   allowed,
		issuer:    issuer,
		skew:      skew,
		now:       time.Now,
		logger:    logger,
	}

	r.Get("/auth/message", apphttp.HandleError(h.message))
	r.Post("/auth/login", apphttp.HandleError(h.login))
}

func (h *HTTP) message(w http.ResponseWriter, _ *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, map[string]string{"message": LoginMessage(h.issuer, h.now())})
	return nil
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	if !h.validator.IsConfigured() {
		return apperrors.ConfigurationError(ErrNotConfigured, "authentication is disabled")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if req.Signature == "" || req.Message == "" {
		return apperrors.UnAuthorizedError(nil, "signature and message required")
	}

	if err := CheckLoginMessage(req.Message, h.issuer, h.now(), h.skew); err != nil {
		return apperrors.UnAuthorizedError(err, "login message rejected")
	}
	addr, err := VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil {
		return apperrors.UnAuthorizedError(err, "invalid signature")
	}
	if !h.allowed.Allows(addr) {
		h.logger.Warn("Rejected login from unlisted address", zap.String("address", addr.Hex()))
		return apperrors.UnAuthorizedError(ErrNotAllowed, "address is not allowed")
	}

	token, expires, err := h.validator.Issue(addr)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	h.logger.Info("Issued access token", zap.String("address", addr.Hex()), zap.Time("expires_at", expires))
	apphttp.WriteJSON(w, http.StatusOK, &LoginResponse{Token: token, Address: addr.Hex(), ExpiresAt: expires})
	return nil
}
