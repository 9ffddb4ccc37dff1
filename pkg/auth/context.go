package auth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type contextKey struct{}

// WithAddress returns ctx carrying the authenticated account.
func WithAddress(ctx context.Context, addr common.Address) context.Context {
	return context.WithValue(ctx, contextKey{}, addr)
}

// AddressFromContext returns the account authenticated by RequireWrites.
func AddressFromContext(ctx context.Context) (common.Address, bool) {
	addr, ok := ctx.Value(contextKey{}).(common.Address)
	return addr, ok
}

// CallerField logs the authenticated account of ctx, if any.
func CallerField(ctx context.Context) zap.Field {
	addr, ok := AddressFromContext(ctx)
	if !ok {
		return zap.Skip()
	}
	return zap.String("caller", addr.Hex())
}
