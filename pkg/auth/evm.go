package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// loginPrefix starts every login message; the unix time follows it.
const loginPrefix = "Sign in to "

// ErrStaleLogin is returned for login messages outside the allowed skew.
var ErrStaleLogin = errors.New("login message expired")

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	// Decode signature from hex
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length: expected 65, got %d", len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[64] >= 27 {
		sigBytes[64] -= 27
	}

	prefixedMsg := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	msgHash := crypto.Keccak256Hash([]byte(prefixedMsg))

	pubKey, err := crypto.SigToPub(msgHash.Bytes(), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// LoginMessage is the message a wallet signs to obtain a token from issuer.
func LoginMessage(issuer string, at time.Time) string {
	return fmt.Sprintf("%s%s at %d", loginPrefix, issuer, at.Unix())
}

// CheckLoginMessage verifies that message was built by LoginMessage for
// issuer within skew of now.
func CheckLoginMessage(message, issuer string, now time.Time, skew time.Duration) error {
	prefix := loginPrefix + issuer + " at "
	rest, ok := strings.CutPrefix(message, prefix)
	if !ok {
		return fmt.Errorf("unexpected login message %q", message)
	}
	unix, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid login timestamp: %w", err)
	}
	signedAt := time.Unix(unix, 0)
	if signedAt.Before(now.Add(-skew)) || signedAt.After(now.Add(skew)) {
		return ErrStaleLogin
	}
	return nil
}
