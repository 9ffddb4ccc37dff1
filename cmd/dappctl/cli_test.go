package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/chainsafe/dapp-gateway/pkg/ether"
	ethermocks "github.com/chainsafe/dapp-gateway/pkg/ether/service/mocks"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/interact/interacttest"
	"github.com/chainsafe/dapp-gateway/pkg/token"
	tokenmocks "github.com/chainsafe/dapp-gateway/pkg/token/service/mocks"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
	votingmocks "github.com/chainsafe/dapp-gateway/pkg/voting/service/mocks"
)

var holder = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

type noTxs struct{}

func (noTxs) Transaction(context.Context, string) (*txstore.Record, error) {
	return nil, txstore.ErrNotFound
}

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &cli{
		token:   tokenmocks.NewService(t),
		voting:  votingmocks.NewService(t),
		ether:   ethermocks.NewService(t),
		txs:     noTxs{},
		account: func() (common.Address, bool) { return common.Address{}, false },
		out:     out,
	}, out
}

func TestCLI_TokenBalance(t *testing.T) {
	c, out := newTestCLI(t)
	c.token.(*tokenmocks.Service).EXPECT().
		Balance(mock.Anything, holder).
		Return(&token.Balance{Address: holder.Hex(), Display: "1,000", Symbol: "DT"}, nil).
		Once()

	if err := c.run(context.Background(), []string{"token", "balance", holder.Hex()}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "1,000 DT" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCLI_BalanceNeedsAddressWithoutWallet(t *testing.T) {
	c, _ := newTestCLI(t)

	if err := c.run(context.Background(), []string{"eth", "balance"}); err == nil {
		t.Fatalf("expected error without address or wallet")
	}
}

func TestCLI_EthBalanceJSON(t *testing.T) {
	c, out := newTestCLI(t)
	c.json = true
	c.account = func() (common.Address, bool) { return holder, true }
	bal := ether.NewBalance(holder, nil)
	c.ether.(*ethermocks.Service).EXPECT().
		Balance(mock.Anything, holder).
		Return(&bal, nil).
		Once()

	if err := c.run(context.Background(), []string{"eth", "balance"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	var got ether.Balance
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Address != holder.Hex() || got.Symbol != ether.Symbol {
		t.Fatalf("unexpected balance %+v", got)
	}
}

func TestCLI_VoteCastFollowsReceipt(t *testing.T) {
	fx := interacttest.New(t, nil)
	hash := common.HexToHash("0xfeed")
	handle := fx.Handle(hash, "vote")
	fx.Receipts.Mine(hash, 1)

	c, out := newTestCLI(t)
	c.voting.(*votingmocks.Service).EXPECT().
		Vote(mock.Anything, uint64(5), true).
		Return(handle, nil).
		Once()

	if err := c.run(context.Background(), []string{"vote", "cast", "5", "like"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "submitted "+hash.Hex()) {
		t.Fatalf("missing submission line in %q", out.String())
	}
	if !strings.Contains(out.String(), "confirmed in block 1") {
		t.Fatalf("missing confirmation line in %q", out.String())
	}
}

func TestCLI_RevertedWriteFails(t *testing.T) {
	fx := interacttest.New(t, nil)
	hash := common.HexToHash("0xbad")
	handle := fx.Handle(hash, "mint_tokens")
	fx.Receipts.Mine(hash, 0)

	c, _ := newTestCLI(t)
	c.token.(*tokenmocks.Service).EXPECT().Mint(mock.Anything).Return(handle, nil).Once()

	err := c.run(context.Background(), []string{"token", "mint"})
	if !errors.Is(err, interact.ErrReverted) {
		t.Fatalf("expected ErrReverted, got %v", err)
	}
}

func TestCLI_VoteCastRejectsBadChoice(t *testing.T) {
	c, _ := newTestCLI(t)

	if err := c.run(context.Background(), []string{"vote", "cast", "5", "maybe"}); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := c.run(context.Background(), []string{"vote", "cast", "five", "like"}); err == nil {
		t.Fatalf("expected invalid post id error")
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	c, _ := newTestCLI(t)

	if err := c.run(context.Background(), []string{"stake"}); !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}
	if err := c.run(context.Background(), []string{"tx", "0x01"}); err == nil {
		t.Fatalf("expected unknown transaction error")
	}
}
