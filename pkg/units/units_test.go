package units

import (
	"errors"
	"math/big"
	"testing"
)

func TestParseAndFormatEther(t *testing.T) {
	tests := []struct {
		in   string
		wei  string
		back string
	}{
		{"1", "1000000000000000000", "1"},
		{"0.5", "500000000000000000", "0.5"},
		{"100", "100000000000000000000", "100"},
		{"0.000000000000000001", "1", "0.000000000000000001"},
		{"0", "0", "0"},
	}
	for _, tt := range tests {
		wei, err := ParseEther(tt.in)
		if err != nil {
			t.Fatalf("ParseEther(%q): %v", tt.in, err)
		}
		if wei.String() != tt.wei {
			t.Fatalf("ParseEther(%q) = %s, want %s", tt.in, wei, tt.wei)
		}
		if got := FormatEther(wei); got != tt.back {
			t.Fatalf("FormatEther(%s) = %q, want %q", wei, got, tt.back)
		}
	}
}

func TestParseUnitsErrors(t *testing.T) {
	if _, err := ParseUnits("abc", 18); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := ParseUnits("-1", 18); !errors.Is(err, ErrNegative) {
		t.Fatalf("expected ErrNegative, got %v", err)
	}
	if _, err := ParseUnits("1.234", 2); !errors.Is(err, ErrPrecision) {
		t.Fatalf("expected ErrPrecision, got %v", err)
	}
}

func TestParseUnitsBoundedToUint256(t *testing.T) {
	maxUint := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	v, err := ParseUnits(maxUint, 0)
	if err != nil {
		t.Fatalf("ParseUnits(max uint256): %v", err)
	}
	if v.String() != maxUint {
		t.Fatalf("unexpected value %s", v)
	}

	for _, in := range []string{
		"115792089237316195423570985008687907853269984665640564039457584007913129639936",
		"1e80",
		"1e5000000",
		"1e2147483640",
		"1e60",
	} {
		if _, err := ParseUnits(in, 18); !errors.Is(err, ErrOverflow) {
			t.Fatalf("ParseUnits(%q) = %v, want ErrOverflow", in, err)
		}
	}

	if v, err := ParseUnits("0e5000000", 18); err != nil || v.Sign() != 0 {
		t.Fatalf("ParseUnits(0e5000000) = %v, %v", v, err)
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		wei  *big.Int
		want string
	}{
		{big.NewInt(0), "0"},
		{nil, "0"},
		{big.NewInt(1), "< 0.0001"},
		{mustParse(t, "0.0001"), "0.0001"},
		{mustParse(t, "1.23456"), "1.2346"},
		{mustParse(t, "42"), "42.0000"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.wei, EtherDecimals); got != tt.want {
			t.Errorf("FormatDisplay(%v) = %q, want %q", tt.wei, got, tt.want)
		}
	}

	if got := FormatDisplayString("0.00001"); got != "< 0.0001" {
		t.Errorf("FormatDisplayString dust = %q", got)
	}
}

func TestIsPositive(t *testing.T) {
	for in, want := range map[string]bool{
		"1": true, "0.01": true, "0": false, "-1": false, "": false, "NaN": false, "Infinity": false, "1e3": true,
	} {
		if got := IsPositive(in); got != want {
			t.Errorf("IsPositive(%q) = %v, want %v", in, got, want)
		}
	}
}

func mustParse(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := ParseEther(s)
	if err != nil {
		t.Fatalf("ParseEther(%q): %v", s, err)
	}
	return v
}
