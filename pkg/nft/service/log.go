package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/auth"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/nft"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
)

const (
	serviceName    = "NFTService"
	logFieldMaxLen = 50
)

// logService wraps Service with logging of the mint path
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the NFT Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Info(ctx context.Context) (*nft.Info, error) {
	return ls.svc.Info(ctx)
}

func (ls *logService) Balance(ctx context.Context, addr common.Address) (*nft.Balance, error) {
	return ls.svc.Balance(ctx, addr)
}

func (ls *logService) TokensOf(ctx context.Context, addr common.Address) (*nft.Holdings, error) {
	return ls.svc.TokensOf(ctx, addr)
}

func (ls *logService) TokenURI(ctx context.Context, id *big.Int) (string, error) {
	return ls.svc.TokenURI(ctx, id)
}

func (ls *logService) OwnerOf(ctx context.Context, id *big.Int) (common.Address, error) {
	return ls.svc.OwnerOf(ctx, id)
}

func (ls *logService) Token(ctx context.Context, id *big.Int) (*nft.Token, error) {
	return ls.svc.Token(ctx, id)
}

// Mint wraps the service method with logging
func (ls *logService) Mint(ctx context.Context, name, description string) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("Mint started",
		zap.String("service", serviceName),
		zap.String("method", "Mint"),
		zap.String("name", truncateString(name, logFieldMaxLen)),
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

	return ls.svc.Mint(ctx, name, description)
}

func (ls *logService) States() map[string]interact.State {
	return ls.svc.States()
}

// truncateString limits string length for logging
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
