// Package gateway assembles the chain client, confirmation tracker, read
// cache and contract services from configuration. The API server and the
// command line client share it.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/cache"
	"github.com/chainsafe/dapp-gateway/pkg/chain"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	etherservice "github.com/chainsafe/dapp-gateway/pkg/ether/service"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/network"
	nftservice "github.com/chainsafe/dapp-gateway/pkg/nft/service"
	"github.com/chainsafe/dapp-gateway/pkg/pgutil"
	tokenservice "github.com/chainsafe/dapp-gateway/pkg/token/service"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	"github.com/chainsafe/dapp-gateway/pkg/txtracker"
	votingservice "github.com/chainsafe/dapp-gateway/pkg/voting/service"
	"github.com/chainsafe/dapp-gateway/pkg/wallet"
)

// Gateway holds the wired services of one process.
type Gateway struct {
	Networks *network.Registry
	Client   *chain.Client
	Tracker  *txtracker.Tracker
	Journal  txstore.Store
	Cache    *cache.Cache

	Token  tokenservice.Service
	NFT    nftservice.Service
	Voting votingservice.Service
	Ether  etherservice.Service

	closers []func()
}

// Build dials the active network and wires every service. Wallet
// confirmation prompts, when enabled, read from in and write to out.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (*Gateway, error) {
	g := &Gateway{}
	ok := false
	defer func() {
		if !ok {
			g.Close()
		}
	}()

	registry, err := network.NewRegistry(cfg.Networks, cfg.ActiveNetwork)
	if err != nil {
		return nil, fmt.Errorf("networks: %w", err)
	}
	g.Networks = registry

	opts, err := chainOptions(cfg.Wallet, logger, in, out)
	if err != nil {
		return nil, err
	}
	client, err := chain.Dial(ctx, registry, opts...)
	if err != nil {
		return nil, err
	}
	g.Client = client
	g.closers = append(g.closers, client.Close)

	journal, err := openJournal(ctx, cfg, logger, g)
	if err != nil {
		return nil, err
	}
	g.Journal = journal

	g.Tracker = txtracker.NewTracker(client,
		txtracker.WithLogger(logger),
		txtracker.WithPollInterval(cfg.Tracker.PollInterval),
		txtracker.WithTimeout(cfg.Tracker.Timeout),
		txtracker.WithJournal(journal),
	)
	g.closers = append(g.closers, g.Tracker.Stop)

	readCache, err := openCache(ctx, cfg, logger, g)
	if err != nil {
		return nil, err
	}
	g.Cache = readCache

	deps := interact.Deps{
		Tracker:  g.Tracker,
		Cache:    readCache,
		Networks: registry,
		Logger:   logger,
	}
	g.Token = tokenservice.NewLog(tokenservice.NewService(client, readCache, deps, cfg.Cache), logger)
	g.NFT = nftservice.NewLog(nftservice.NewService(client, readCache, deps, cfg.Cache), logger)
	g.Voting = votingservice.NewLog(votingservice.NewService(client, readCache, deps, cfg.Cache), logger)
	g.Ether = etherservice.NewLog(etherservice.NewService(client, readCache, deps, cfg.Cache), logger)

	ok = true
	return g, nil
}

// Close releases resources in reverse order of acquisition.
func (g *Gateway) Close() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
	g.closers = nil
}

// Transaction returns the latest known state of a submitted transaction,
// preferring the live tracker over the journal.
func (g *Gateway) Transaction(ctx context.Context, hash string) (*txstore.Record, error) {
	h := common.HexToHash(hash)
	rec, err := g.Journal.Get(ctx, h.Hex())
	if err != nil {
		return nil, err
	}
	if live, ok := g.Tracker.Get(h); ok {
		snap := live.Snapshot()
		rec.Status = snap.Status
		rec.BlockNumber = snap.BlockNumber
		rec.GasUsed = snap.GasUsed
		if snap.Err != nil {
			rec.Error = snap.Err.Error()
		}
	}
	return rec, nil
}

// Recent lists the latest journaled transactions, newest first.
func (g *Gateway) Recent(ctx context.Context, limit int) ([]*txstore.Record, error) {
	return g.Journal.ListRecent(ctx, limit)
}

func chainOptions(cfg config.WalletConfig, logger *zap.Logger, in io.Reader, out io.Writer) ([]chain.Option, error) {
	opts := []chain.Option{
		chain.WithLogger(logger),
		chain.WithGasLimit(cfg.GasLimit),
	}

	if cfg.MaxGasPrice != "" {
		p, ok := new(big.Int).SetString(cfg.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", cfg.MaxGasPrice)
		}
		opts = append(opts, chain.WithMaxGasPrice(p))
	}

	w, err := wallet.FromConfig(cfg, in, out)
	switch {
	case errors.Is(err, wallet.ErrNoWallet):
		logger.Warn("No wallet configured, running read-only")
	case err != nil:
		return nil, fmt.Errorf("wallet: %w", err)
	default:
		opts = append(opts, chain.WithWallet(w))
	}
	return opts, nil
}

func openJournal(ctx context.Context, cfg *config.Config, logger *zap.Logger, g *Gateway) (txstore.Store, error) {
	if !cfg.Database.Enabled {
		logger.Info("Transaction journal kept in memory", zap.Int("capacity", cfg.Database.MemoryLimit))
		return txstore.NewMemoryStore(txstore.WithCapacity(cfg.Database.MemoryLimit)), nil
	}
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	g.closers = append(g.closers, func() { _ = db.Close() })
	return txstore.NewStore(db), nil
}

func openCache(ctx context.Context, cfg *config.Config, logger *zap.Logger, g *Gateway) (*cache.Cache, error) {
	opts := []cache.Option{
		cache.WithLogger(logger),
		cache.WithIdleTTL(cfg.Cache.IdleTTL),
	}
	if cfg.Redis.Enabled {
		store, err := cache.NewRedisStore(ctx, cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, func() { _ = store.Close() })
		opts = append(opts, cache.WithStore(store))
		logger.Info("Sharing read cache through redis", zap.String("prefix", cfg.Redis.KeyPrefix))
	}

	c := cache.New(opts...)
	g.closers = append(g.closers, c.Stop)
	return c, nil
}
