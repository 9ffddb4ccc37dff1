package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/cache"
	"github.com/chainsafe/dapp-gateway/pkg/chain"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/voting"
)

// Hook actions.
const (
	ActionCreatePost = "create_post"
	ActionVote       = "vote"
)

// Service defines post reads, post creation and voting
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Post(ctx context.Context, id uint64) (*voting.Post, error)
	RecentPosts(ctx context.Context, count int) ([]voting.Post, error)
	UserVote(ctx context.Context, id uint64, addr common.Address) (*voting.UserVote, error)
	CreatePost(ctx context.Context, content, author string) (*txtracker.Handle, error)
	Vote(ctx context.Context, id uint64, isLike bool) (*txtracker.Handle, error)
	States() map[string]interact.State
}

type votingService struct {
	client    chain.ContractClient
	cache     *cache.Cache
	intervals config.CacheConfig
	create    *interact.Hook
	vote      *interact.Hook
	logger    *zap.Logger
}

// NewService creates the voting service.
func NewService(client chain.ContractClient, c *cache.Cache, deps interact.Deps, intervals config.CacheConfig) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &votingService{
		client:    client,
		cache:     c,
		intervals: intervals,
		create:    interact.NewHook(ActionCreatePost, deps),
		vote:      interact.NewHook(ActionVote, deps),
		logger:    logger,
	}
}

// Post returns post id. A post the contract does not know is reported as
// not found.
func (s *votingService) Post(ctx context.Context, id uint64) (*voting.Post, error) {
	if _, err := s.client.Resolve(contracts.Voting); err != nil {
		return nil, err
	}
	post, err := cache.Load(ctx, s.cache, voting.PostKey(id), s.intervals.Post, func(ctx context.Context) (voting.Post, error) {
		raw, err := chain.Call[voting.ContractPost](ctx, s.client, contracts.Voting, contracts.MethodGetPost, new(big.Int).SetUint64(id))
		if err != nil {
			return voting.Post{}, err
		}
		return voting.FormatPost(raw), nil
	})
	if err != nil {
		return nil, err
	}
	if !post.Exists {
		return nil, apperrors.ResourceNotFoundError(fmt.Errorf("post %d does not exist", id), "Post not found")
	}
	return &post, nil
}

func (s *votingService) RecentPosts(ctx context.Context, count int) ([]voting.Post, error) {
	if _, err := s.client.Resolve(contracts.Voting); err != nil {
		return nil, err
	}
	count = voting.ClampRecentCount(count)
	return cache.Load(ctx, s.cache, voting.RecentKey(count), s.intervals.RecentPosts, func(ctx context.Context) ([]voting.Post, error) {
		raw, err := chain.Call[[]voting.ContractPost](ctx, s.client, contracts.Voting, contracts.MethodGetRecentPosts, big.NewInt(int64(count)))
		if err != nil {
			return nil, err
		}
		posts := make([]voting.Post, 0, len(raw))
		for _, p := range raw {
			if !p.Exists {
				continue
			}
			posts = append(posts, voting.FormatPost(p))
		}
		return posts, nil
	})
}

func (s *votingService) UserVote(ctx context.Context, id uint64, addr common.Address) (*voting.UserVote, error) {
	if _, err := s.client.Resolve(contracts.Voting); err != nil {
		return nil, err
	}
	vote, err := cache.Load(ctx, s.cache, voting.VoteKey(id, addr), s.intervals.UserVote, func(ctx context.Context) (voting.UserVote, error) {
		out, err := s.client.Read(ctx, contracts.Voting, contracts.MethodGetUserVote, new(big.Int).SetUint64(id), addr)
		if err != nil {
			return voting.UserVote{}, err
		}
		if len(out) != 2 {
			return voting.UserVote{}, apperrors.GeneralError(fmt.Errorf("getUserVote returned %d values", len(out)))
		}
		hasVoted, ok1 := out[0].(bool)
		isLike, ok2 := out[1].(bool)
		if !ok1 || !ok2 {
			return voting.UserVote{}, apperrors.GeneralError(fmt.Errorf("getUserVote returned %T, %T", out[0], out[1]))
		}
		return voting.UserVote{PostID: id, Address: addr.Hex(), HasVoted: hasVoted, IsLike: isLike}, nil
	})
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *votingService) CreatePost(ctx context.Context, content, author string) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	content, author = strings.TrimSpace(content), strings.TrimSpace(author)
	return s.create.Run(ctx, interact.Request{
		Contract: contracts.Voting,
		From:     from,
		Validate: func() error {
			if err := interact.RequireText(content, "Content"); err != nil {
				return err
			}
			return interact.RequireText(author, "Author")
		},
		Submit: func(ctx context.Context) (common.Hash, error) {
			return s.client.Write(ctx, contracts.Voting, contracts.MethodCreatePost, nil, content, author)
		},
		Invalidate: []string{voting.RecentPattern},
	})
}

// Vote casts a like or dislike. Counts change in the cached post only once
// the transaction confirms and the entry refreshes.
func (s *votingService) Vote(ctx context.Context, id uint64, isLike bool) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	return s.vote.Run(ctx, interact.Request{
		Contract: contracts.Voting,
		From:     from,
		Validate: func() error {
			if id == 0 {
				return interact.ValidationError("Invalid post id")
			}
			return nil
		},
		Submit: func(ctx context.Context) (common.Hash, error) {
			return s.client.Write(ctx, contracts.Voting, contracts.MethodVoteOnPost, nil, new(big.Int).SetUint64(id), isLike)
		},
		Invalidate: []string{voting.PostKey(id), voting.VoteKey(id, from), voting.RecentPattern},
	})
}

func (s *votingService) States() map[string]interact.State {
	return map[string]interact.State{
		ActionCreatePost: s.create.State(),
		ActionVote:       s.vote.State(),
	}
}
