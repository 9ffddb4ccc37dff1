package chain

import (
	"math/big"

	"github.com/chainsafe/dapp-gateway/pkg/wallet"
	"go.uber.org/zap"
)

// Option configures the chain client.
type Option func(*settings)

type settings struct {
	logger      *zap.Logger
	wallet      wallet.Wallet
	gasLimit    uint64
	maxGasPrice *big.Int
}

// WithLogger sets a custom logger for the chain client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithWallet enables writes signed by w. Without a wallet the client is read-only.
func WithWallet(w wallet.Wallet) Option {
	return func(s *settings) { s.wallet = w }
}

// WithGasLimit fixes the gas limit of contract writes. Zero lets the node estimate.
func WithGasLimit(limit uint64) Option {
	return func(s *settings) { s.gasLimit = limit }
}

// WithMaxGasPrice caps the suggested gas price. Setting it forces legacy transactions.
func WithMaxGasPrice(p *big.Int) Option {
	return func(s *settings) { s.maxGasPrice = p }
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
