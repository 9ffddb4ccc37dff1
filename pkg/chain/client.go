// Package chain adapts go-ethereum to typed reads and writes against the
// dApp contracts on the active network.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainsafe/dapp-gateway/internal/metrics"
	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/network"
	"github.com/chainsafe/dapp-gateway/pkg/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// NativeTransferGas is the gas limit of a plain value transfer.
const NativeTransferGas uint64 = 21000

var (
	// ErrContractUnavailable is returned when no address is configured for a
	// contract on the active network.
	ErrContractUnavailable = network.ErrContractUnavailable
	// ErrNetwork marks transport and node failures.
	ErrNetwork = errors.New("network error")

	errWrongSigner = errors.New("signer does not match wallet account")
)

// Backend is the subset of ethclient.Client the adapter needs.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Resolver maps contract ids to addresses on the active network.
type Resolver interface {
	Resolve(id contracts.ID) (common.Address, error)
	Active() network.Network
}

// ContractClient performs contract reads and writes.
//
//go:generate mockery --name ContractClient --output ./mocks --with-expecter
type ContractClient interface {
	Read(ctx context.Context, id contracts.ID, method string, args ...any) ([]any, error)
	Write(ctx context.Context, id contracts.ID, method string, value *big.Int, args ...any) (common.Hash, error)
	Resolve(id contracts.ID) (common.Address, error)
	Account() (common.Address, bool)
}

// NativeClient reads balances and sends ether.
//
//go:generate mockery --name NativeClient --output ./mocks --with-expecter
type NativeClient interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	SendValue(ctx context.Context, to common.Address, value *big.Int) (common.Hash, error)
	Account() (common.Address, bool)
}

// Client implements ContractClient and NativeClient over a Backend.
type Client struct {
	backend  Backend
	resolver Resolver
	chainID  *big.Int
	closer   func()

	wallet      wallet.Wallet
	gasLimit    uint64
	maxGasPrice *big.Int
	logger      *zap.Logger
}

// NewClient creates a client over an existing backend. The chain id is taken
// from the active network of resolver.
func NewClient(backend Backend, resolver Resolver, opts ...Option) *Client {
	s := applyOptions(opts)
	return &Client{
		backend:     backend,
		resolver:    resolver,
		chainID:     big.NewInt(resolver.Active().ChainID),
		wallet:      s.wallet,
		gasLimit:    s.gasLimit,
		maxGasPrice: s.maxGasPrice,
		logger:      s.logger,
	}
}

// Dial connects to the RPC endpoint of the active network and checks that
// the node serves the expected chain.
func Dial(ctx context.Context, resolver Resolver, opts ...Option) (*Client, error) {
	net := resolver.Active()
	url := net.RPCURL
	if net.WSURL != "" {
		url = net.WSURL
	}
	if url == "" {
		return nil, fmt.Errorf("network %s has no rpc url", net.Name)
	}
	ec, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	remote, err := ec.ChainID(ctx)
	if err != nil {
		ec.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if remote.Int64() != net.ChainID {
		ec.Close()
		return nil, fmt.Errorf("rpc %s serves chain %s, expected %d", url, remote, net.ChainID)
	}

	c := NewClient(ec, resolver, opts...)
	c.closer = ec.Close

	fields := []zap.Field{
		zap.Int64("chain_id", net.ChainID),
		zap.String("network", net.Name),
		zap.String("rpc_url", url),
	}
	if addr, ok := c.Account(); ok {
		fields = append(fields, zap.String("account", addr.Hex()))
	}
	c.logger.Info("Connected to Ethereum", fields...)
	return c, nil
}

// Close closes the underlying RPC connection when the client owns it.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// ChainID returns the chain id of the active network.
func (c *Client) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

// Network returns the active network.
func (c *Client) Network() network.Network { return c.resolver.Active() }

// Account returns the wallet address, or false when running read-only.
func (c *Client) Account() (common.Address, bool) {
	if c.wallet == nil {
		return common.Address{}, false
	}
	return c.wallet.Address(), true
}

// Resolve returns the address of id on the active network.
func (c *Client) Resolve(id contracts.ID) (common.Address, error) {
	return c.resolver.Resolve(id)
}

// Read calls a view method and returns its unpacked outputs.
func (c *Client) Read(ctx context.Context, id contracts.ID, method string, args ...any) ([]any, error) {
	addr, err := c.resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	parsed, err := contracts.ABI(id)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	start := time.Now()
	var out []any
	bound := bind.NewBoundContract(addr, parsed, c.backend, c.backend, c.backend)
	err = bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	metrics.ChainReadDuration.WithLabelValues(string(id), method).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, apperrors.NetworkError(
			fmt.Errorf("%w: %s.%s: %w", ErrNetwork, id, method, err),
			fmt.Sprintf("failed to read %s.%s", id, method),
		)
	}
	return out, nil
}

// Write signs and broadcasts a contract call. The contract address is
// resolved before the wallet is touched.
func (c *Client) Write(ctx context.Context, id contracts.ID, method string, value *big.Int, args ...any) (common.Hash, error) {
	addr, err := c.resolver.Resolve(id)
	if err != nil {
		return common.Hash{}, err
	}
	parsed, err := contracts.ABI(id)
	if err != nil {
		return common.Hash{}, apperrors.GeneralError(err)
	}

	opts, err := c.transactor(ctx, c.gasLimit)
	if err != nil {
		return common.Hash{}, err
	}
	opts.Value = value

	tx, err := bind.NewBoundContract(addr, parsed, c.backend, c.backend, c.backend).Transact(opts, method, args...)
	if err != nil {
		return common.Hash{}, c.classify(err, fmt.Sprintf("%s.%s", id, method))
	}

	metrics.TransactionsSubmitted.WithLabelValues(string(id), method).Inc()
	c.logger.Info("Transaction submitted",
		zap.String("contract", string(id)),
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))
	return tx.Hash(), nil
}

// BalanceAt returns the latest ether balance of account in wei.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	bal, err := c.backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, apperrors.NetworkError(fmt.Errorf("%w: balance: %w", ErrNetwork, err), "failed to read balance")
	}
	return bal, nil
}

// SendValue transfers value wei from the wallet to to.
func (c *Client) SendValue(ctx context.Context, to common.Address, value *big.Int) (common.Hash, error) {
	opts, err := c.transactor(ctx, NativeTransferGas)
	if err != nil {
		return common.Hash{}, err
	}
	opts.Value = value

	tx, err := bind.NewBoundContract(to, abi.ABI{}, c.backend, c.backend, c.backend).Transfer(opts)
	if err != nil {
		return common.Hash{}, c.classify(err, "send")
	}

	metrics.TransactionsSubmitted.WithLabelValues("eth", "send").Inc()
	c.logger.Info("Value transfer submitted",
		zap.String("to", to.Hex()),
		zap.String("value", value.String()),
		zap.String("tx_hash", tx.Hash().Hex()))
	return tx.Hash(), nil
}

// Receipt returns the receipt of hash, or ethereum.NotFound while pending.
func (c *Client) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return c.backend.TransactionReceipt(ctx, hash)
}

// TransactionReceipt lets the client serve as a tracker backend.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return c.Receipt(ctx, hash)
}

// transactor returns signing options bound to the wallet with the pending
// nonce and, when configured, a capped gas price.
func (c *Client) transactor(ctx context.Context, gasLimit uint64) (*bind.TransactOpts, error) {
	if c.wallet == nil {
		return nil, apperrors.ConfigurationError(wallet.ErrNoWallet, "No wallet connected")
	}
	from := c.wallet.Address()
	chainID := c.ChainID()

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, apperrors.NetworkError(fmt.Errorf("%w: failed to get nonce: %w", ErrNetwork, err), "failed to get nonce")
	}

	auth := &bind.TransactOpts{
		From:     from,
		Nonce:    new(big.Int).SetUint64(nonce),
		GasLimit: gasLimit,
		Context:  ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, errWrongSigner
			}
			return c.wallet.SignTx(ctx, tx, chainID)
		},
	}

	if c.maxGasPrice != nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, apperrors.NetworkError(fmt.Errorf("%w: failed to suggest gas price: %w", ErrNetwork, err), "failed to suggest gas price")
		}
		if gasPrice.Cmp(c.maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", c.maxGasPrice.String()))
			gasPrice = new(big.Int).Set(c.maxGasPrice)
		}
		auth.GasPrice = gasPrice
	}
	return auth, nil
}

func (c *Client) classify(err error, action string) error {
	if errors.Is(err, wallet.ErrRejected) {
		metrics.WalletRejections.Inc()
		c.logger.Info("Transaction rejected by wallet", zap.String("action", action))
		return apperrors.UserRejectedError(err, "User rejected the request")
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.GeneralError(err)
	}
	c.logger.Warn("Transaction failed", zap.String("action", action), zap.Error(err))
	return apperrors.NetworkError(fmt.Errorf("%w: %s: %w", ErrNetwork, action, err), fmt.Sprintf("%s failed", action))
}

// Call reads a single-output method and converts the result to T.
func Call[T any](ctx context.Context, c ContractClient, id contracts.ID, method string, args ...any) (res T, err error) {
	out, err := c.Read(ctx, id, method, args...)
	if err != nil {
		return res, err
	}
	if len(out) == 0 {
		return res, apperrors.GeneralError(fmt.Errorf("%s.%s returned no values", id, method))
	}
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.GeneralError(fmt.Errorf("%s.%s: unexpected output type %T: %v", id, method, out[0], r))
		}
	}()
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}
