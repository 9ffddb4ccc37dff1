// Package contracts embeds the ABIs of the three deployed dApp contracts.
package contracts

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ID identifies one of the deployed contracts. It is also the key used in
// the networks section of the configuration.
type ID string

const (
	Token  ID = "token"
	NFT    ID = "nft"
	Voting ID = "voting"
)

// All lists every known contract id.
var All = []ID{Token, NFT, Voting}

// Token methods.
const (
	MethodName              = "name"
	MethodSymbol            = "symbol"
	MethodDecimals          = "decimals"
	MethodTotalSupply       = "totalSupply"
	MethodBalanceOf         = "balanceOf"
	MethodTransfer          = "transfer"
	MethodMintTokens        = "mintTokens"
	MethodTimeUntilNextMint = "timeUntilNextMint"
)

// NFT methods not shared with the token.
const (
	MethodOwnerOf       = "ownerOf"
	MethodTokenURI      = "tokenURI"
	MethodMint          = "mint"
	MethodTokensOfOwner = "tokensOfOwner"
	MethodMintPrice     = "mintPrice"
)

// Voting methods.
const (
	MethodCreatePost     = "createPost"
	MethodVoteOnPost     = "voteOnPost"
	MethodGetPost        = "getPost"
	MethodGetRecentPosts = "getRecentPosts"
	MethodGetUserVote    = "getUserVote"
)

//go:embed abi/*.json
var abiFS embed.FS

var (
	parseOnce sync.Once
	parsed    map[ID]abi.ABI
	parseErr  error
)

func load() {
	parsed = make(map[ID]abi.ABI, len(All))
	for _, id := range All {
		raw, err := abiFS.ReadFile("abi/" + string(id) + ".json")
		if err != nil {
			parseErr = fmt.Errorf("read %s abi: %w", id, err)
			return
		}
		a, err := abi.JSON(bytes.NewReader(raw))
		if err != nil {
			parseErr = fmt.Errorf("parse %s abi: %w", id, err)
			return
		}
		parsed[id] = a
	}
}

// ABI returns the parsed ABI of the given contract.
func ABI(id ID) (abi.ABI, error) {
	parseOnce.Do(load)
	if parseErr != nil {
		return abi.ABI{}, parseErr
	}
	a, ok := parsed[id]
	if !ok {
		return abi.ABI{}, fmt.Errorf("unknown contract %q", id)
	}
	return a, nil
}

// MustABI is ABI for package initialisation and tests.
func MustABI(id ID) abi.ABI {
	a, err := ABI(id)
	if err != nil {
		panic(err)
	}
	return a
}

// Valid reports whether id names a known contract.
func (id ID) Valid() bool {
	for _, known := range All {
		if id == known {
			return true
		}
	}
	return false
}

func (id ID) String() string { return string(id) }

// Label is the human readable contract name used in messages.
func (id ID) Label() string {
	switch id {
	case Token:
		return "Token"
	case NFT:
		return "NFT"
	case Voting:
		return "Voting"
	}
	return string(id)
}
