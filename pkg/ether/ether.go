// Package ether holds the types of native ETH balances and transfers and
// the wallet connection summary.
package ether

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/dapp-gateway/pkg/units"
)

// Symbol of the native currency.
const Symbol = "ETH"

// BalanceKey is the cache key of the ether balance of addr.
func BalanceKey(addr common.Address) string {
	return "eth:balance:" + strings.ToLower(addr.Hex())
}

// Balance is the ether balance of one account.
type Balance struct {
	Address  string `json:"address"`
	Wei      string `json:"wei"`
	Ether    string `json:"ether"`
	Display  string `json:"display"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// NewBalance formats wei held by addr.
func NewBalance(addr common.Address, wei *big.Int) Balance {
	if wei == nil {
		wei = new(big.Int)
	}
	return Balance{
		Address:  addr.Hex(),
		Wei:      wei.String(),
		Ether:    units.FormatEther(wei),
		Display:  units.FormatDisplay(wei, units.EtherDecimals),
		Symbol:   Symbol,
		Decimals: units.EtherDecimals,
	}
}

// Connection describes the signing account and the active network.
type Connection struct {
	Connected bool     `json:"connected"`
	Address   string   `json:"address,omitempty"`
	ChainID   int64    `json:"chainId"`
	Network   string   `json:"network"`
	Balance   *Balance `json:"balance,omitempty"`
}

// FormatAmount renders a decimal ether amount for display: "0", "< 0.0001"
// or four fixed decimals.
func FormatAmount(amount string) string {
	return units.FormatDisplayString(amount)
}

// IsValidAmount reports whether amount is a positive decimal.
func IsValidAmount(amount string) bool {
	return units.IsPositive(strings.TrimSpace(amount))
}
