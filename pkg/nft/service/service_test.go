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
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/interact"
	"github.com/chainsafe/dapp-gateway/pkg/interact/interacttest"
	"github.com/chainsafe/dapp-gateway/pkg/nft"
	"github.com/chainsafe/dapp-gateway/pkg/txstore"
)

var (
	account = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	nftAddr = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	created = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
)

var intervals = config.CacheConfig{
	Balance: time.Hour,
	Info:    time.Hour,
	NFTList: time.Hour,
}

func newTestService(t *testing.T, env *interacttest.Fixture, c *cache.Cache) (Service, *mocks.ContractClient) {
	t.Helper()
	client := mocks.NewContractClient(t)
	svc := NewService(client, c, env.Deps, intervals)
	svc.(*nftService).now = func() time.Time { return created }
	return svc, client
}

func newCache(t *testing.T) *cache.Cache {
	t.Helper()
	c := cache.New(cache.WithLogger(zap.NewNop()))
	t.Cleanup(c.Stop)
	return c
}

func TestNFTService_Info(t *testing.T) {
	c := newCache(t)
	svc, client := newTestService(t, interacttest.New(t, c), c)

	client.EXPECT().Resolve(contracts.NFT).Return(nftAddr, nil)
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodName).Return([]any{"Demo NFT"}, nil).Once()
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodSymbol).Return([]any{"DNFT"}, nil).Once()
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodTotalSupply).Return([]any{big.NewInt(7)}, nil).Once()
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodMintPrice).Return([]any{big.NewInt(1e16)}, nil).Once()

	info, err := svc.Info(context.Background())
	if err != nil {
		t.Fatalf("Info() failed: %v", err)
	}
	if info.MintPrice != "0.01" || info.MintPriceWei != "10000000000000000" {
		t.Fatalf("unexpected mint price %+v", info)
	}
	if info.TotalSupply != "7" || info.ContractAddress != nftAddr.Hex() {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestNFTService_TokensOf(t *testing.T) {
	c := newCache(t)
	svc, client := newTestService(t, interacttest.New(t, c), c)

	client.EXPECT().Resolve(contracts.NFT).Return(nftAddr, nil)
	client.EXPECT().
		Read(mock.Anything, contracts.NFT, contracts.MethodTokensOfOwner, account).
		Return([]any{[]*big.Int{big.NewInt(1), big.NewInt(4)}}, nil).
		Once()

	holdings, err := svc.TokensOf(context.Background(), account)
	if err != nil {
		t.Fatalf("TokensOf() failed: %v", err)
	}
	if holdings.Count != 2 || holdings.TokenIDs[0] != "1" || holdings.TokenIDs[1] != "4" {
		t.Fatalf("unexpected holdings %+v", holdings)
	}
}

func TestNFTService_TokenDecodesMetadata(t *testing.T) {
	c := newCache(t)
	svc, client := newTestService(t, interacttest.New(t, c), c)

	uri, err := nft.EncodeTokenURI(nft.NewMetadata("Sunset", "Warm", created))
	if err != nil {
		t.Fatalf("EncodeTokenURI() failed: %v", err)
	}
	id := big.NewInt(3)
	client.EXPECT().Resolve(contracts.NFT).Return(nftAddr, nil)
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodTokenURI, id).Return([]any{uri}, nil).Once()
	client.EXPECT().Read(mock.Anything, contracts.NFT, contracts.MethodOwnerOf, id).Return([]any{account}, nil).Once()

	tok, err := svc.Token(context.Background(), id)
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	if tok.Owner != account.Hex() || tok.Metadata == nil || tok.Metadata.Name != "Sunset" {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNFTService_MintPaysPriceAndInvalidates(t *testing.T) {
	c := newCache(t)
	env := interacttest.New(t, c)
	svc, client := newTestService(t, env, c)
	hash := common.HexToHash("0xdd")
	price := big.NewInt(1e16)

	client.EXPECT().Resolve(contracts.NFT).Return(nftAddr, nil)
	client.EXPECT().Account().Return(account, true)
	client.EXPECT().
		Read(mock.Anything, contracts.NFT, contracts.MethodBalanceOf, account).
		Return([]any{big.NewInt(0)}, nil).
		Once()
	client.EXPECT().
		Read(mock.Anything, contracts.NFT, contracts.MethodBalanceOf, account).
		Return([]any{big.NewInt(1)}, nil)
	client.EXPECT().
		Read(mock.Anything, contracts.NFT, contracts.MethodMintPrice).
		Return([]any{price}, nil).
		Once()
	client.EXPECT().
		Write(mock.Anything, contracts.NFT, contracts.MethodMint,
			mock.MatchedBy(func(v *big.Int) bool { return v.Cmp(price) == 0 }),
			mock.MatchedBy(func(uri string) bool {
				m, err := nft.DecodeTokenURI(uri)
				return err == nil && m.Name == "Sunset" && m.Description == "Warm"
			})).
		Return(hash, nil).
		Once()

	ctx := context.Background()
	if bal, err := svc.Balance(ctx, account); err != nil || bal.Count != "0" {
		t.Fatalf("unexpected balance %+v, %v", bal, err)
	}

	handle, err := svc.Mint(ctx, "  Sunset ", "Warm")
	if err != nil {
		t.Fatalf("Mint() failed: %v", err)
	}
	env.Receipts.Mine(hash, 1)
	interacttest.AwaitStatus(t, handle, txstore.StatusConfirmed)
	interacttest.AwaitPhase(t, func() interact.State { return svc.States()[ActionMint] }, interact.PhaseConfirmed)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v, _, ok := cache.Peek[*big.Int](c, nft.BalanceKey(account)); ok && v.Sign() > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("nft balance was not refreshed after mint")
}

func TestNFTService_MintRequiresFields(t *testing.T) {
	c := newCache(t)
	svc, client := newTestService(t, interacttest.New(t, c), c)
	client.EXPECT().Account().Return(account, true)

	for _, tc := range [][2]string{{"", "desc"}, {"name", "   "}} {
		_, err := svc.Mint(context.Background(), tc[0], tc[1])
		if !errors.Is(err, interact.ErrValidation) {
			t.Fatalf("Mint(%q, %q) = %v, want validation error", tc[0], tc[1], err)
		}
	}
}

func TestNFTService_MintWithoutDeploymentNeverWrites(t *testing.T) {
	c := newCache(t)
	env := interacttest.NewWithNetworks(t, c, []config.NetworkConfig{{
		ChainID:   config.ChainIDHardhat,
		Name:      "hardhat",
		Contracts: map[string]string{"token": "0x5FbDB2315678afecb367f032d93F642f64180aa3"},
	}})
	svc, client := newTestService(t, env, c)
	client.EXPECT().Account().Return(account, true)

	_, err := svc.Mint(context.Background(), "Sunset", "Warm")
	if !apperrors.Is(err, apperrors.CategoryNotSupported) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if st := svc.States()[ActionMint]; st.Phase != interact.PhaseIdle {
		t.Fatalf("expected idle phase, got %s", st.Phase)
	}
}
