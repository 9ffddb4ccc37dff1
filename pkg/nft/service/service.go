package service

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/cache"
	"github.com/chainsafe/dapp-gateway/pkg/chain"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/nft"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/units"
)

// ActionMint names the mint hook.
const ActionMint = "mint_nft"

// Service defines the NFT reads and the paid mint
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Info(ctx context.Context) (*nft.Info, error)
	Balance(ctx context.Context, addr common.Address) (*nft.Balance, error)
	TokensOf(ctx context.Context, addr common.Address) (*nft.Holdings, error)
	TokenURI(ctx context.Context, id *big.Int) (string, error)
	OwnerOf(ctx context.Context, id *big.Int) (common.Address, error)
	Token(ctx context.Context, id *big.Int) (*nft.Token, error)
	Mint(ctx context.Context, name, description string) (*txtracker.Handle, error)
	States() map[string]interact.State
}

type nftService struct {
	client    chain.ContractClient
	cache     *cache.Cache
	intervals config.CacheConfig
	mint      *interact.Hook
	now       func() time.Time
	logger    *zap.Logger
}

// NewService creates the NFT service.
func NewService(client chain.ContractClient, c *cache.Cache, deps interact.Deps, intervals config.CacheConfig) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &nftService{
		client:    client,
		cache:     c,
		intervals: intervals,
		mint:      interact.NewHook(ActionMint, deps),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *nftService) Info(ctx context.Context) (*nft.Info, error) {
	addr, err := s.client.Resolve(contracts.NFT)
	if err != nil {
		return nil, err
	}
	info, err := cache.Load(ctx, s.cache, nft.KeyInfo, s.intervals.Info, func(ctx context.Context) (nft.Info, error) {
		name, err := chain.Call[string](ctx, s.client, contracts.NFT, contracts.MethodName)
		if err != nil {
			return nft.Info{}, err
		}
		symbol, err := chain.Call[string](ctx, s.client, contracts.NFT, contracts.MethodSymbol)
		if err != nil {
			return nft.Info{}, err
		}
		supply, err := chain.Call[*big.Int](ctx, s.client, contracts.NFT, contracts.MethodTotalSupply)
		if err != nil {
			return nft.Info{}, err
		}
		price, err := chain.Call[*big.Int](ctx, s.client, contracts.NFT, contracts.MethodMintPrice)
		if err != nil {
			return nft.Info{}, err
		}
		return nft.Info{
			Name:            name,
			Symbol:          symbol,
			TotalSupply:     supply.String(),
			MintPrice:       units.FormatEther(price),
			MintPriceWei:    price.String(),
			ContractAddress: addr.Hex(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *nftService) Balance(ctx context.Context, addr common.Address) (*nft.Balance, error) {
	if _, err := s.client.Resolve(contracts.NFT); err != nil {
		return nil, err
	}
	count, err := cache.Load(ctx, s.cache, nft.BalanceKey(addr), s.intervals.Balance, func(ctx context.Context) (*big.Int, error) {
		return chain.Call[*big.Int](ctx, s.client, contracts.NFT, contracts.MethodBalanceOf, addr)
	})
	if err != nil {
		return nil, err
	}
	return &nft.Balance{Address: addr.Hex(), Count: count.String()}, nil
}

func (s *nftService) TokensOf(ctx context.Context, addr common.Address) (*nft.Holdings, error) {
	if _, err := s.client.Resolve(contracts.NFT); err != nil {
		return nil, err
	}
	ids, err := cache.Load(ctx, s.cache, nft.TokensKey(addr), s.intervals.NFTList, func(ctx context.Context) ([]string, error) {
		raw, err := chain.Call[[]*big.Int](ctx, s.client, contracts.NFT, contracts.MethodTokensOfOwner, addr)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(raw))
		for _, id := range raw {
			ids = append(ids, id.String())
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return &nft.Holdings{Address: addr.Hex(), TokenIDs: ids, Count: len(ids)}, nil
}

// TokenURI is cached with the info interval since URIs never change after
// mint.
func (s *nftService) TokenURI(ctx context.Context, id *big.Int) (string, error) {
	if _, err := s.client.Resolve(contracts.NFT); err != nil {
		return "", err
	}
	return cache.Load(ctx, s.cache, nft.URIKey(id.String()), s.intervals.Info, func(ctx context.Context) (string, error) {
		return chain.Call[string](ctx, s.client, contracts.NFT, contracts.MethodTokenURI, id)
	})
}

func (s *nftService) OwnerOf(ctx context.Context, id *big.Int) (common.Address, error) {
	if _, err := s.client.Resolve(contracts.NFT); err != nil {
		return common.Address{}, err
	}
	return cache.Load(ctx, s.cache, nft.OwnerKey(id.String()), s.intervals.NFTList, func(ctx context.Context) (common.Address, error) {
		return chain.Call[common.Address](ctx, s.client, contracts.NFT, contracts.MethodOwnerOf, id)
	})
}

func (s *nftService) Token(ctx context.Context, id *big.Int) (*nft.Token, error) {
	uri, err := s.TokenURI(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.OwnerOf(ctx, id)
	if err != nil {
		return nil, err
	}

	tok := &nft.Token{ID: id.String(), Owner: owner.Hex(), URI: uri}
	if meta, err := nft.DecodeTokenURI(uri); err == nil {
		tok.Metadata = meta
	} else {
		s.logger.Debug("Token uri carries no inline metadata",
			zap.String("token_id", tok.ID), zap.Error(err))
	}
	return tok, nil
}

// Mint builds the metadata data URI and pays the mint price read at
// submission time.
func (s *nftService) Mint(ctx context.Context, name, description string) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)

	var uri string
	return s.mint.Run(ctx, interact.Request{
		Contract: contracts.NFT,
		From:     from,
		Validate: func() error {
			if err := interact.RequireText(name, "Name"); err != nil {
				return err
			}
			if err := interact.RequireText(description, "Description"); err != nil {
				return err
			}
			var err error
			uri, err = nft.EncodeTokenURI(nft.NewMetadata(name, description, s.now()))
			return err
		},
		Submit: func(ctx context.Context) (common.Hash, error) {
			price, err := chain.Call[*big.Int](ctx, s.client, contracts.NFT, contracts.MethodMintPrice)
			if err != nil {
				return common.Hash{}, err
			}
			return s.client.Write(ctx, contracts.NFT, contracts.MethodMint, price, uri)
		},
		Invalidate: []string{nft.BalanceKey(from), nft.TokensKey(from), nft.KeyInfo},
	})
}

func (s *nftService) States() map[string]interact.State {
	return map[string]interact.State{ActionMint: s.mint.State()}
}
