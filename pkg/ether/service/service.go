package service

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/cache"
	"github.com/chainsafe/dapp-gateway/pkg/chain"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/ether"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	"github.com/chainsafe/dapp-gateway/pkg/units"
)

// ActionSend names the transfer hook.
const ActionSend = "send_eth"

// Service defines native balance reads and transfers
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Balance(ctx context.Context, addr common.Address) (*ether.Balance, error)
	Send(ctx context.Context, to, amount string) (*txtracker.Handle, error)
	Connection(ctx context.Context) (*ether.Connection, error)
	States() map[string]interact.State
}

type etherService struct {
	client    chain.NativeClient
	cache     *cache.Cache
	networks  chain.Resolver
	intervals config.CacheConfig
	send      *interact.Hook
	logger    *zap.Logger
}

// NewService creates the ether service.
func NewService(client chain.NativeClient, c *cache.Cache, deps interact.Deps, intervals config.CacheConfig) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &etherService{
		client:    client,
		cache:     c,
		networks:  deps.Networks,
		intervals: intervals,
		send:      interact.NewHook(ActionSend, deps),
		logger:    logger,
	}
}

func (s *etherService) Balance(ctx context.Context, addr common.Address) (*ether.Balance, error) {
	wei, err := cache.Load(ctx, s.cache, ether.BalanceKey(addr), s.intervals.Balance, func(ctx context.Context) (*big.Int, error) {
		return s.client.BalanceAt(ctx, addr)
	})
	if err != nil {
		return nil, err
	}
	bal := ether.NewBalance(addr, wei)
	return &bal, nil
}

// Send transfers amount ether to to. Native transfers have no contract to
// resolve.
func (s *etherService) Send(ctx context.Context, to, amount string) (*txtracker.Handle, error) {
	from, _ := s.client.Account()
	var (
		recipient common.Address
		value     *big.Int
	)
	return s.send.Run(ctx, interact.Request{
		From: from,
		Validate: func() error {
			var err error
			if recipient, err = interact.ParseAddress(to); err != nil {
				return err
			}
			value, err = interact.ParseAmount(amount, units.EtherDecimals)
			return err
		},
		Submit: func(ctx context.Context) (common.Hash, error) {
			return s.client.SendValue(ctx, recipient, value)
		},
		Invalidate: []string{ether.BalanceKey(from), ether.BalanceKey(common.HexToAddress(strings.TrimSpace(to)))},
	})
}

// Connection reports the signing account, the active network and, when
// connected, the account balance. A failed balance read does not fail the
// connection summary.
func (s *etherService) Connection(ctx context.Context) (*ether.Connection, error) {
	conn := &ether.Connection{}
	if s.networks != nil {
		net := s.networks.Active()
		conn.ChainID, conn.Network = net.ChainID, net.Name
	}

	addr, ok := s.client.Account()
	if !ok {
		return conn, nil
	}
	conn.Connected = true
	conn.Address = addr.Hex()

	bal, err := s.Balance(ctx, addr)
	if err != nil {
		s.logger.Warn("Failed to read wallet balance", zap.String("address", addr.Hex()), zap.Error(err))
		return conn, nil
	}
	conn.Balance = bal
	return conn, nil
}

func (s *etherService) States() map[string]interact.State {
	return map[string]interact.State{ActionSend: s.send.State()}
}
