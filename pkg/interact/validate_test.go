package interact

import (
	"errors"
	"testing"
)

func TestParseAddress(t *testing.T) {
	if _, err := ParseAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
	for _, bad := range []string{"", "  ", "0x123", "f39Fd6e51aad88F6F4ce6aB8827279cffFb92266", "0xZZ9Fd6e51aad88F6F4ce6aB8827279cffFb92266"} {
		if _, err := ParseAddress(bad); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseAddress(%q) = %v, want validation error", bad, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1.5", 18)
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if v.String() != "1500000000000000000" {
		t.Fatalf("unexpected base units %s", v)
	}

	for _, bad := range []string{"", "0", "-1", "abc", "0.0000000000000000001", "1e80", "1e5000000"} {
		if _, err := ParseAmount(bad, 18); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseAmount(%q) = %v, want validation error", bad, err)
		}
	}
}

func TestRequireText(t *testing.T) {
	if err := RequireText("hello", "Content"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := RequireText(" \n", "Content"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
