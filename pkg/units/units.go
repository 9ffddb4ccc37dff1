// Package units converts between base-unit integers and decimal strings.
package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the exponent of wei per ether, also used by the token.
const EtherDecimals = 18

// maxUint256Digits is the decimal length of 2^256-1.
const maxUint256Digits = 78

var (
	// ErrNegative is returned when parsing an amount below zero.
	ErrNegative = errors.New("amount must not be negative")
	// ErrPrecision is returned when an amount has more fractional digits than the unit allows.
	ErrPrecision = errors.New("amount has too many decimal places")
	// ErrOverflow is returned when an amount does not fit in a uint256.
	ErrOverflow = errors.New("amount exceeds uint256")

	displayFloor = decimal.New(1, -4)
)

// FormatUnits renders v divided by 10^decimals without trailing zeros.
func FormatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -int32(decimals)).String()
}

// ParseUnits parses a decimal string into base units.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal: %w", err)
	}
	if d.IsNegative() {
		return nil, ErrNegative
	}
	if d.IsZero() {
		return new(big.Int), nil
	}
	// Checked before Shift so the exponent cannot wrap.
	if d.Exponent() > maxUint256Digits {
		return nil, ErrOverflow
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, ErrPrecision
	}
	// The exponent is bounded before BigInt expands it.
	if shifted.Exponent() > 0 && shifted.NumDigits()+int(shifted.Exponent()) > maxUint256Digits {
		return nil, ErrOverflow
	}
	v := shifted.BigInt()
	if v.Cmp(math.MaxBig256) > 0 {
		return nil, ErrOverflow
	}
	return v, nil
}

// FormatEther renders wei as ether.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// ParseEther parses an ether amount into wei.
func ParseEther(s string) (*big.Int, error) {
	return ParseUnits(s, EtherDecimals)
}

// FormatDisplay renders an amount for display: "0" for zero, "< 0.0001"
// for dust, and four fixed decimals otherwise.
func FormatDisplay(v *big.Int, decimals uint8) string {
	if v == nil || v.Sign() == 0 {
		return "0"
	}
	d := decimal.NewFromBigInt(v, -int32(decimals))
	if d.LessThan(displayFloor) {
		return "< 0.0001"
	}
	return d.StringFixed(4)
}

// FormatDisplayString is FormatDisplay for an already formatted decimal string.
func FormatDisplayString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsZero() {
		return "0"
	}
	if d.LessThan(displayFloor) {
		return "< 0.0001"
	}
	return d.StringFixed(4)
}

// IsPositive reports whether s parses as a finite decimal greater than zero.
func IsPositive(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}
