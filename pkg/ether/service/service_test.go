package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/cache"
	"github.com/chainsafe/dapp-gateway/pkg/chain/mocks"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/ether"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/interact/interacttest"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

var (
	account   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	recipient = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func newTestService(t *testing.T) (Service, *mocks.NativeClient, *interacttest.Fixture, *cache.Cache) {
	t.Helper()
	c := cache.New(cache.WithLogger(zap.NewNop()))
	t.Cleanup(c.Stop)
	env := interacttest.New(t, c)
	client := mocks.NewNativeClient(t)
	return NewService(client, c, env.Deps, config.CacheConfig{Balance: time.Hour}), client, env, c
}

func TestEtherService_Balance(t *testing.T) {
	svc, client, _, _ := newTestService(t)
	client.EXPECT().BalanceAt(mock.Anything, account).Return(big.NewInt(5e13), nil).Once()

	bal, err := svc.Balance(context.Background(), account)
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if bal.Ether != "0.00005" || bal.Display != "< 0.0001" {
		t.Fatalf("unexpected balance %+v", bal)
	}
}

func TestEtherService_SendValidation(t *testing.T) {
	svc, client, _, _ := newTestService(t)
	client.EXPECT().Account().Return(account, true)

	cases := [][2]string{
		{"", "1"},
		{"0xabc", "1"},
		{recipient.Hex(), ""},
		{recipient.Hex(), "0"},
		{recipient.Hex(), "1e"},
		{recipient.Hex(), "1e80"},
	}
	for _, tc := range cases {
		if _, err := svc.Send(context.Background(), tc[0], tc[1]); !errors.Is(err, interact.ErrValidation) {
			t.Fatalf("Send(%q, %q) = %v, want validation error", tc[0], tc[1], err)
		}
	}
}

func TestEtherService_SendConfirmedRefreshesBalances(t *testing.T) {
	svc, client, env, c := newTestService(t)
	hash := common.HexToHash("0x0e")
	want := big.NewInt(25e16)

	client.EXPECT().Account().Return(account, true)
	client.EXPECT().BalanceAt(mock.Anything, recipient).Return(big.NewInt(0), nil).Once()
	client.EXPECT().BalanceAt(mock.Anything, recipient).Return(want, nil)
	client.EXPECT().
		SendValue(mock.Anything, recipient, mock.MatchedBy(func(v *big.Int) bool { return v.Cmp(want) == 0 })).
		Return(hash, nil).
		Once()

	ctx := context.Background()
	if _, err := svc.Balance(ctx, recipient); err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}

	// Surrounding whitespace must not change which balance is refreshed.
	handle, err := svc.Send(ctx, " "+recipient.Hex()+"\n", "0.25")
	if err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	if handle.Meta().Contract != "" {
		t.Fatalf("native transfer must not name a contract, got %q", handle.Meta().Contract)
	}
	env.Receipts.Mine(hash, 1)
	interacttest.AwaitStatus(t, handle, txstore.StatusConfirmed)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v, _, ok := cache.Peek[*big.Int](c, ether.BalanceKey(recipient)); ok && v.Cmp(want) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("recipient balance was not refreshed")
}

func TestEtherService_SendWithoutWallet(t *testing.T) {
	svc, client, _, _ := newTestService(t)
	client.EXPECT().Account().Return(common.Address{}, false)
	client.EXPECT().
		SendValue(mock.Anything, recipient, mock.Anything).
		Return(common.Hash{}, apperrors.ConfigurationError(nil, "No wallet connected")).
		Once()

	_, err := svc.Send(context.Background(), recipient.Hex(), "1")
	if !apperrors.Is(err, apperrors.CategoryNotSupported) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if st := svc.States()[ActionSend]; st.Phase != interact.PhaseIdle {
		t.Fatalf("expected idle phase, got %s", st.Phase)
	}
}

func TestEtherService_Connection(t *testing.T) {
	svc, client, _, _ := newTestService(t)
	client.EXPECT().Account().Return(account, true).Once()
	client.EXPECT().BalanceAt(mock.Anything, account).Return(big.NewInt(1e18), nil).Once()

	conn, err := svc.Connection(context.Background())
	if err != nil {
		t.Fatalf("Connection() failed: %v", err)
	}
	if !conn.Connected || conn.ChainID != config.ChainIDHardhat || conn.Balance == nil || conn.Balance.Ether != "1" {
		t.Fatalf("unexpected connection %+v", conn)
	}
}

func TestEtherService_ConnectionWithoutWallet(t *testing.T) {
	svc, client, _, _ := newTestService(t)
	client.EXPECT().Account().Return(common.Address{}, false).Once()

	conn, err := svc.Connection(context.Background())
	if err != nil {
		t.Fatalf("Connection() failed: %v", err)
	}
	if conn.Connected || conn.Balance != nil {
		t.Fatalf("unexpected connection %+v", conn)
	}
}
