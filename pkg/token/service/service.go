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
	"github.com/chainsafe/dapp-gateway/pkg/token"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/units"
)

// Hook actions.
const (
	ActionMint     = "mint_tokens"
	ActionTransfer = "transfer_tokens"
)

// Service defines the token reads and writes
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Info(ctx context.Context) (*token.Info, error)
	Balance(ctx context.Context, addr common.Address) (*token.Balance, error)
	Cooldown(ctx context.Context, addr common.Address) (*token.Cooldown, error)
	WatchCooldown(ctx context.Context, addr common.Address) (<-chan token.Cooldown, error)
	Mint(ctx context.Context) (*txtracker.Handle, error)
	Transfer(ctx context.Context, to, amount string) (*txtracker.Handle, error)
	States() map[string]interact.State
}

type tokenService struct {
	client    chain.ContractClient
	cache     *cache.Cache
	intervals config.CacheConfig
	mint      *interact.Hook
	transfer  *interact.Hook
	logger    *zap.Logger
}

// NewService creates the token service. Reads go through c and writes
// through hooks built from deps.
func NewService(client chain.ContractClient, c *cache.Cache, deps interact.Deps, intervals config.CacheConfig) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tokenService{
		client:    client,
		cache:     c,
		intervals: intervals,
		mint:      interact.NewHook(ActionMint, deps),
		transfer:  interact.NewHook(ActionTransfer, deps),
		logger:    logger,
	}
}

func (s *tokenService) Info(ctx context.Context) (*token.Info, error) {
	addr, err := s.client.Resolve(contracts.Token)
	if err != nil {
		return nil, err
	}
	info, err := cache.Load(ctx, s.cache, token.KeyInfo, s.intervals.Info, func(ctx context.Context) (token.Info, error) {
		name, err := chain.Call[string](ctx, s.client, contracts.Token, contracts.MethodName)
		if err != nil {
			return token.Info{}, err
		}
		symbol, err := chain.Call[string](ctx, s.client, contracts.Token, contracts.MethodSymbol)
		if err != nil {
			return token.Info{}, err
		}
		decimals, err := chain.Call[uint8](ctx, s.client, contracts.Token, contracts.MethodDecimals)
		if err != nil {
			return token.Info{}, err
		}
		supply, err := chain.Call[*big.Int](ctx, s.client, contracts.Token, contracts.MethodTotalSupply)
		if err != nil {
			return token.Info{}, err
		}
		return token.Info{
			Name:            name,
			Symbol:          symbol,
			Decimals:        decimals,
			TotalSupply:     units.FormatUnits(supply, decimals),
			TotalSupplyRaw:  supply.String(),
			ContractAddress: addr.Hex(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *tokenService) Balance(ctx context.Context, addr common.Address) (*token.Balance, error) {
	if _, err := s.client.Resolve(contracts.Token); err != nil {
		return nil, err
	}
	raw, err := cache.Load(ctx, s.cache, token.BalanceKey(addr), s.intervals.Balance, func(ctx context.Context) (*big.Int, error) {
		return chain.Call[*big.Int](ctx, s.client, contracts.Token, contracts.MethodBalanceOf, addr)
	})
	if err != nil {
		return nil, err
	}

	bal := &token.Balance{
		Address:   addr.Hex(),
		Raw:       raw.String(),
		Formatted: units.FormatEther(raw),
		Display:   units.FormatDisplay(raw, units.EtherDecimals),
	}
	if info, _, ok := cache.Peek[token.Info](s.cache, token.KeyInfo); ok {
		bal.Symbol = info.Symbol
	}
	return bal, nil
}

func (s *tokenService) Cooldown(ctx context.Context, addr common.Address) (*token.Cooldown, error) {
	seconds, err := s.cooldownSeconds(ctx, addr)
	if err != nil {
		return nil, err
	}
	cd := token.NewCooldown(addr, seconds)
	return &cd, nil
}

func (s *tokenService) cooldownSeconds(ctx context.Context, addr common.Address) (uint64, error) {
	if _, err := s.client.Resolve(contracts.Token); err != nil {
		return 0, err
	}
	return cache.Load(ctx, s.cache, token.CooldownKey(addr), s.intervals.Cooldown, func(ctx context.Context) (uint64, error) {
		left, err := chain.Call[*big.Int](ctx, s.client, contracts.Token, contracts.MethodTimeUntilNextMint, addr)
		if err != nil {
			return 0, err
		}
		return token.SecondsOf(left), nil
	})
}

// WatchCooldown emits the countdown of addr once per second. The local
// counter is re-seeded whenever the cached cooldown refreshes. The channel
// closes when ctx ends.
func (s *tokenService) WatchCooldown(ctx context.Context, addr common.Address) (<-chan token.Cooldown, error) {
	seconds, err := s.cooldownSeconds(ctx, addr)
	if err != nil {
		return nil, err
	}
	refreshed, unsubscribe, _ := s.cache.Subscribe(token.CooldownKey(addr))

	out := make(chan token.Cooldown, 1)
	countdown := token.NewCountdown(seconds)
	out <- token.NewCooldown(addr, seconds)

	go func() {
		defer close(out)
		defer unsubscribe()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-refreshed:
				if !ok {
					refreshed = nil
					continue
				}
				if v, isSeconds := snap.Value.(uint64); isSeconds && snap.Err == nil {
					countdown.Seed(v)
				}
			case <-ticker.C:
				left := countdown.Tick()
				select {
				case out <- token.NewCooldown(addr, left):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *tokenService) Mint(ctx context.Context) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	return s.mint.Run(ctx, interact.Request{
		Contract: contracts.Token,
		From:     from,
		Submit: func(ctx context.Context) (common.Hash, error) {
			return s.client.Write(ctx, contracts.Token, contracts.MethodMintTokens, nil)
		},
		Invalidate: []string{token.BalanceKey(from), token.CooldownKey(from), token.KeyInfo},
	})
}

func (s *tokenService) Transfer(ctx context.Context, to, amount string) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	var (
		recipient common.Address
		value     *big.Int
	)
	return s.transfer.Run(ctx, interact.Request{
		Contract: contracts.Token,
		From:     from,
		Validate: func() error {
			var err error
			if recipient, err = interact.ParseAddress(to); err != nil {
				return err
			}
			value, err = interact.ParseAmount(amount, units.EtherDecimals)
			return err
		},
		Submit: func(ctx context.Context) (common.Hash, error) {
			return s.client.Write(ctx, contracts.Token, contracts.MethodTransfer, nil, recipient, value)
		},
		Invalidate: []string{token.BalanceKey(from), token.BalanceKey(common.HexToAddress(strings.TrimSpace(to)))},
	})
}

func (s *tokenService) States() map[string]interact.State {
	return map[string]interact.State{
		ActionMint:     s.mint.State(),
		ActionTransfer: s.transfer.State(),
	}
}
