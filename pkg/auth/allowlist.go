package auth

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotAllowed is returned for signers missing from the allowlist.
var ErrNotAllowed = errors.New("address is not allowed to write")

// Allowlist holds the accounts permitted to obtain write tokens. A nil or
// empty Allowlist permits nobody.
type Allowlist struct {
	addrs map[common.Address]struct{}
}

// NewAllowlist creates an allowlist of addrs.
func NewAllowlist(addrs ...common.Address) *Allowlist {
	l := &Allowlist{addrs: make(map[common.Address]struct{}, len(addrs))}
	for _, a := range addrs {
		l.addrs[a] = struct{}{}
	}
	return l
}

// ParseAllowlist builds an allowlist from hex addresses.
func ParseAllowlist(hexAddrs []string) (*Allowlist, error) {
	addrs := make([]common.Address, 0, len(hexAddrs))
	for _, s := range hexAddrs {
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid allowed address %q", s)
		}
		addrs = append(addrs, common.HexToAddress(s))
	}
	return NewAllowlist(addrs...), nil
}

// Allows reports whether addr may write.
func (l *Allowlist) Allows(addr common.Address) bool {
	if l == nil {
		return false
	}
	_, ok := l.addrs[addr]
	return ok
}

// Len returns the number of allowed accounts.
func (l *Allowlist) Len() int {
	if l == nil {
		return 0
	}
	return len(l.addrs)
}
