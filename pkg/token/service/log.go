package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/auth"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/token"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
)

const serviceName = "TokenService"

// logService wraps Service with logging of the write paths. Reads are
// served from the cache and are not logged.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the token Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Info(ctx context.Context) (*token.Info, error) {
	return ls.svc.Info(ctx)
}

func (ls *logService) Balance(ctx context.Context, addr common.Address) (*token.Balance, error) {
	return ls.svc.Balance(ctx, addr)
}

func (ls *logService) Cooldown(ctx context.Context, addr common.Address) (*token.Cooldown, error) {
	return ls.svc.Cooldown(ctx, addr)
}

func (ls *logService) WatchCooldown(ctx context.Context, addr common.Address) (<-chan token.Cooldown, error) {
	return ls.svc.WatchCooldown(ctx, addr)
}

// Mint wraps the service method with logging
func (ls *logService) Mint(ctx context.Context) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("Mint started",
		zap.String("service", serviceName),
		zap.String("method", "Mint"),
		auth.CallerField(ctx),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Mint failed",
				zap.String("service", serviceName),
				zap.String("method", "Mint"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Mint completed",
			zap.String("service", serviceName),
			zap.String("method", "Mint"),
			zap.String("tx_hash", handle.Hash().Hex()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Mint(ctx)
}

// Transfer wraps the service method with logging
func (ls *logService) Transfer(ctx context.Context, to, amount string) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("Transfer started",
		zap.String("service", serviceName),
		zap.String("method", "Transfer"),
		zap.String("to", to),
		zap.String("amount", amount),
		auth.CallerField(ctx),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Transfer failed",
				zap.String("service", serviceName),
				zap.String("method", "Transfer"),
				zap.String("to", to),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Transfer completed",
			zap.String("service", serviceName),
			zap.String("method", "Transfer"),
			zap.String("to", to),
			zap.String("tx_hash", handle.Hash().Hex()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Transfer(ctx, to, amount)
}

func (ls *logService) States() map[string]interact.State {
	return ls.svc.States()
}
