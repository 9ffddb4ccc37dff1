// Package wallet loads the signing account used for contract writes.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrRejected is returned when the wallet declines to sign.
	ErrRejected = errors.New("user rejected the request")
	// ErrNoWallet is returned when no signing key is configured.
	ErrNoWallet = errors.New("no wallet configured")
)

// Wallet supplies the account and signs transactions for it.
type Wallet interface {
	Address() common.Address
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Connection is the wallet connection state shown to users.
type Connection struct {
	Connected   bool   `json:"connected"`
	Address     string `json:"address,omitempty"`
	ChainID     int64  `json:"chainId"`
	NetworkName string `json:"network"`
	Balance     string `json:"balance,omitempty"`
}

// KeyWallet signs with an in-memory private key.
type KeyWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeyWallet wraps an ECDSA key.
func NewKeyWallet(key *ecdsa.PrivateKey) *KeyWallet {
	return &KeyWallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

// NewKeyWalletFromHex parses a hex private key with or without 0x prefix.
func NewKeyWalletFromHex(hexKey string) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	return NewKeyWallet(key), nil
}

// NewKeystoreWallet decrypts a go-ethereum keystore JSON file.
func NewKeystoreWallet(path, password string) (*KeyWallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}
	key, err := keystore.DecryptKey(raw, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
	}
	return NewKeyWallet(key.PrivateKey), nil
}

// Address returns the signing account.
func (w *KeyWallet) Address() common.Address { return w.address }

// SignTx signs tx for chainID with the latest signer.
func (w *KeyWallet) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
}

// FromConfig builds the configured wallet. When cfg.Confirm is set every
// signature is confirmed on in/out. It returns ErrNoWallet when neither a
// private key nor a keystore is configured.
func FromConfig(cfg config.WalletConfig, in io.Reader, out io.Writer) (Wallet, error) {
	var (
		w   Wallet
		err error
	)
	switch {
	case cfg.PrivateKey != "":
		w, err = NewKeyWalletFromHex(cfg.PrivateKey)
	case cfg.KeystorePath != "":
		w, err = NewKeystoreWallet(cfg.KeystorePath, cfg.KeystorePassword)
	default:
		return nil, ErrNoWallet
	}
	if err != nil {
		return nil, err
	}
	if cfg.Confirm {
		w = NewConfirmingWallet(w, in, out)
	}
	return w, nil
}
