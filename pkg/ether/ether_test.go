package ether

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":         "0",
		"0.0":       "0",
		"0.00001":   "< 0.0001",
		"0.0001":    "0.0001",
		"1.5":       "1.5000",
		"12.345678": "12.3457",
		"garbage":   "0",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	for _, ok := range []string{"1", "0.5", " 2 "} {
		if !IsValidAmount(ok) {
			t.Fatalf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"", "0", "-1", "abc", "NaN"} {
		if IsValidAmount(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestNewBalance(t *testing.T) {
	addr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	wei, _ := new(big.Int).SetString("10000000000000000000000", 10)
	b := NewBalance(addr, wei)
	if b.Ether != "10000" || b.Display != "10000.0000" || b.Symbol != "ETH" {
		t.Fatalf("unexpected balance %+v", b)
	}
	if z := NewBalance(addr, nil); z.Wei != "0" || z.Display != "0" {
		t.Fatalf("unexpected zero balance %+v", z)
	}
}
