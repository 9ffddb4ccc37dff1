package interact

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/chainsafe/dapp-gateway/pkg/units"
	"github.com/ethereum/go-ethereum/common"
)

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsValidAddress reports whether s is a 0x-prefixed 20 byte hex address.
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// ParseAddress validates s and returns it as an address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Address{}, ValidationError("Address is required")
	}
	if !IsValidAddress(s) {
		return common.Address{}, ValidationError("Invalid Ethereum address")
	}
	return common.HexToAddress(s), nil
}

// ParseAmount parses a positive decimal amount into base units.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ValidationError("Amount is required")
	}
	if !units.IsPositive(s) {
		return nil, ValidationError("Amount must be greater than 0")
	}
	v, err := units.ParseUnits(s, decimals)
	if err != nil {
		if errors.Is(err, units.ErrPrecision) {
			return nil, ValidationError("Amount has too many decimal places")
		}
		return nil, ValidationError("Invalid amount")
	}
	return v, nil
}

// RequireText rejects empty or whitespace-only input.
func RequireText(s, field string) error {
	if strings.TrimSpace(s) == "" {
		return ValidationError(field + " is required")
	}
	return nil
}
