package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"

	"github.com/chainsafe/dapp-gateway/pkg/units"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ConfirmingWallet asks before every signature. Any answer other than
// "y" or "yes" rejects the transaction.
type ConfirmingWallet struct {
	next Wallet
	out  io.Writer

	mu sync.Mutex
	in *bufio.Reader
}

// NewConfirmingWallet decorates next with an interactive prompt.
func NewConfirmingWallet(next Wallet, in io.Reader, out io.Writer) *ConfirmingWallet {
	return &ConfirmingWallet{next: next, in: bufio.NewReader(in), out: out}
}

// Address returns the wrapped wallet's account.
func (w *ConfirmingWallet) Address() common.Address { return w.next.Address() }

// SignTx prompts and signs with the wrapped wallet on approval.
func (w *ConfirmingWallet) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	to := "contract creation"
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	fmt.Fprintf(w.out, "Sign transaction from %s\n  to:    %s\n  value: %s ETH\n  data:  %d bytes\n  chain: %s\nConfirm? [y/N]: ",
		w.next.Address().Hex(), to, units.FormatEther(tx.Value()), len(tx.Data()), chainID)

	line, err := w.in.ReadString('\n')
	if err != nil && line == "" {
		return nil, ErrRejected
	}
	if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
		return nil, ErrRejected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return w.next.SignTx(ctx, tx, chainID)
}
