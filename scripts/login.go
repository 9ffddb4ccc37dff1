//go:build ignore

// This script signs in to a running gateway and prints a bearer token.
// Run with: DAPP_LOGIN_KEY=<hex key> go run scripts/login.go [api url]

package main

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Default hardhat account #0
const defaultKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func main() {
	apiURL := "http://127.0.0.1:8081/api/v1"
	if len(os.Args) > 1 {
		apiURL = strings.TrimSuffix(os.Args[1], "/")
	}

	hexKey := os.Getenv("DAPP_LOGIN_KEY")
	if hexKey == "" {
		hexKey = defaultKey
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key: %v\n", err)
		os.Exit(1)
	}

	var challenge struct {
		Message string `json:"message"`
	}
	if err := getJSON(apiURL+"/auth/message", &challenge); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch login message: %v\n", err)
		os.Exit(1)
	}

	body, _ := json.Marshal(map[string]string{
		"message":   challenge.Message,
		"signature": signEIP191(challenge.Message, key),
	})
	resp, err := http.Post(apiURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Login failed (%d): %s\n", resp.StatusCode, raw)
		os.Exit(1)
	}

	var login struct {
		Token     string `json:"token"`
		Address   string `json:"address"`
		ExpiresAt string `json:"expiresAt"`
	}
	if err := json.Unmarshal(raw, &login); err != nil {
		fmt.Fprintf(os.Stderr, "Bad response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== dApp Gateway Access Token ===")
	fmt.Printf("Address: %s\n", login.Address)
	fmt.Printf("Expires: %s\n", login.ExpiresAt)
	fmt.Println()
	fmt.Println(login.Token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' -X POST %s/token/mint\n", login.Token, apiURL)
}

func signEIP191(message string, key *ecdsa.PrivateKey) string {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(message))
	hash := crypto.Keccak256Hash([]byte(prefix + message))
	sig, _ := crypto.Sign(hash.Bytes(), key)
	if sig[64] < 27 {
		sig[64] += 27
	}
	return "0x" + hex.EncodeToString(sig)
}

func getJSON(url string, out any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
