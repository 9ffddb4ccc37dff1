// Package token holds the types of the mintable ERC-20 token.
package token

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Cache key of the token metadata.
const KeyInfo = "token:info"

// BalanceKey is the cache key of the token balance of addr.
func BalanceKey(addr common.Address) string {
	return "token:balance:" + strings.ToLower(addr.Hex())
}

// CooldownKey is the cache key of the mint cooldown of addr.
func CooldownKey(addr common.Address) string {
	return "token:cooldown:" + strings.ToLower(addr.Hex())
}

// Info is the token metadata.
type Info struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Decimals        uint8  `json:"decimals"`
	TotalSupply     string `json:"totalSupply"`
	TotalSupplyRaw  string `json:"totalSupplyRaw"`
	ContractAddress string `json:"contractAddress"`
}

// Balance is the token balance of one account.
type Balance struct {
	Address   string `json:"address"`
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
	Display   string `json:"display"`
	Symbol    string `json:"symbol,omitempty"`
}

// Cooldown is the time left before an account may mint again.
type Cooldown struct {
	Address   string `json:"address"`
	Seconds   uint64 `json:"seconds"`
	Countdown string `json:"countdown"`
	CanMint   bool   `json:"canMint"`
}

// NewCooldown builds a Cooldown from the remaining seconds.
func NewCooldown(addr common.Address, seconds uint64) Cooldown {
	return Cooldown{
		Address:   addr.Hex(),
		Seconds:   seconds,
		Countdown: FormatCountdown(seconds),
		CanMint:   seconds == 0,
	}
}

// FormatCountdown renders seconds as HH:MM:SS. Hours are not wrapped.
func FormatCountdown(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Countdown is a local seconds counter re-seeded from the chain.
type Countdown struct {
	mu        sync.Mutex
	remaining uint64
}

// NewCountdown starts a countdown at seconds.
func NewCountdown(seconds uint64) *Countdown {
	return &Countdown{remaining: seconds}
}

// Seed replaces the remaining time.
func (c *Countdown) Seed(seconds uint64) {
	c.mu.Lock()
	c.remaining = seconds
	c.mu.Unlock()
}

// Tick removes one second, stopping at zero, and returns what is left.
func (c *Countdown) Tick() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) String() string {
	return FormatCountdown(c.Remaining())
}

// SecondsOf converts a timeUntilNextMint result to seconds.
func SecondsOf(v *big.Int) uint64 {
	if v == nil || v.Sign() <= 0 {
		return 0
	}
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
