package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
)

// RequireWrites rejects state-changing requests without a valid bearer
// token whose subject is in allowed. Safe methods pass through untouched.
// With an unconfigured validator every request passes.
func RequireWrites(v *JWTValidator, allowed *Allowlist, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v == nil || !v.IsConfigured() || isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "authorization required"))
				return
			}
			claims, err := v.ValidateToken(token)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			if !allowed.Allows(claims.Address()) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(ErrNotAllowed, "address is not allowed"))
				return
			}

			ctx := WithAddress(r.Context(), claims.Address())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
