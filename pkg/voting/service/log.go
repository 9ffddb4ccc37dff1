package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/auth"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/voting"
)

const (
	serviceName      = "VotingService"
	contentLogMaxLen = 50
)

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the voting Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Post(ctx context.Context, id uint64) (*voting.Post, error) {
	return ls.svc.Post(ctx, id)
}

func (ls *logService) RecentPosts(ctx context.Context, count int) ([]voting.Post, error) {
	return ls.svc.RecentPosts(ctx, count)
}

func (ls *logService) UserVote(ctx context.Context, id uint64, addr common.Address) (*voting.UserVote, error) {
	return ls.svc.UserVote(ctx, id, addr)
}

// CreatePost wraps the service method with logging
func (ls *logService) CreatePost(ctx context.Context, content, author string) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("CreatePost started",
		zap.String("service", serviceName),
		zap.String("method", "CreatePost"),
		zap.String("content", truncateString(content, contentLogMaxLen)),
		zap.String("author", author),
		auth.CallerField(ctx),
	)

	defer func() {
		ls.finish("CreatePost", start, handle, err)
	}()

	return ls.svc.CreatePost(ctx, content, author)
}

// Vote wraps the service method with logging
func (ls *logService) Vote(ctx context.Context, id uint64, isLike bool) (handle *txtracker.Handle, err error) {
	start := time.Now()

	ls.logger.Info("Vote started",
		zap.String("service", serviceName),
		zap.String("method", "Vote"),
		zap.Uint64("post_id", id),
		zap.Bool("is_like", isLike),
		auth.CallerField(ctx),
	)

	defer func() {
		ls.finish("Vote", start, handle, err)
	}()

	return ls.svc.Vote(ctx, id, isLike)
}

func (ls *logService) States() map[string]interact.State {
	return ls.svc.States()
}

func (ls *logService) finish(method string, start time.Time, handle *txtracker.Handle, err error) {
	duration := time.Since(start)
	if err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	ls.logger.Info(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("tx_hash", handle.Hash().Hex()),
		zap.Duration("duration", duration),
	)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
