package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/ether"
	"github.com/chainsafe/dapp-gateway/pkg/auth"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
)

const serviceName = "EtherService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ether Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Balance(ctx context.Context, addr common.Address) (*ether.Balance, error) {
	return ls.svc.Balance(ctx, addr)
}

// Send wraps the service method with logging
func (ls *logService) Send(ctx context.Context, to, amount string) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("Send started",
		zap.String("service", serviceName),
		zap.String("method", "Send"),
		zap.String("to", to),
		zap.String("amount", amount),
		auth.CallerField(ctx),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Send failed",
				zap.String("service", serviceName),
				zap.String("method", "Send"),
				zap.String("to", to),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Send completed",
			zap.String("service", serviceName),
			zap.String("method", "Send"),
			zap.String("to", to),
			zap.String("tx_hash", handle.Hash().Hex()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Send(ctx, to, amount)
}

func (ls *logService) Connection(ctx context.Context) (*ether.Connection, error) {
	return ls.svc.Connection(ctx)
}

func (ls *logService) States() map[string]interact.State {
	return ls.svc.States()
}
