// Package nft holds the types of the paid-mint ERC-721 collection and the
// token metadata carried in data URIs.
package nft

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Cache key of the collection metadata.
const KeyInfo = "nft:info"

const (
	dataURIPrefix       = "data:application/json;base64,"
	plainDataURIPrefix  = "data:application/json,"
	placeholderImageURL = "https://via.placeholder.com/400x400?text="
)

// ErrUnsupportedURI is returned for token URIs that are not inline JSON.
var ErrUnsupportedURI = errors.New("unsupported token uri")

// BalanceKey is the cache key of the number of tokens held by addr.
func BalanceKey(addr common.Address) string {
	return "nft:balance:" + strings.ToLower(addr.Hex())
}

// TokensKey is the cache key of the token ids held by addr.
func TokensKey(addr common.Address) string {
	return "nft:tokens:" + strings.ToLower(addr.Hex())
}

// URIKey is the cache key of the token URI of id.
func URIKey(id string) string { return "nft:uri:" + id }

// OwnerKey is the cache key of the owner of id.
func OwnerKey(id string) string { return "nft:owner:" + id }

// Info is the collection metadata.
type Info struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	TotalSupply     string `json:"totalSupply"`
	MintPrice       string `json:"mintPrice"`
	MintPriceWei    string `json:"mintPriceWei"`
	ContractAddress string `json:"contractAddress"`
}

// Balance is the number of tokens held by one account.
type Balance struct {
	Address string `json:"address"`
	Count   string `json:"count"`
}

// Holdings lists the token ids held by one account.
type Holdings struct {
	Address  string   `json:"address"`
	TokenIDs []string `json:"tokenIds"`
	Count    int      `json:"count"`
}

// Token is a single minted token with its decoded metadata, when the URI
// carries inline JSON.
type Token struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner,omitempty"`
	URI      string    `json:"uri"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Attribute is one metadata trait.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Metadata is the ERC-721 metadata JSON stored in the token URI.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// NewMetadata describes a token created at now with a placeholder image.
func NewMetadata(name, description string, now time.Time) Metadata {
	return Metadata{
		Name:        name,
		Description: description,
		Image:       PlaceholderImage(name),
		Attributes: []Attribute{{
			TraitType: "Created",
			Value:     now.UTC().Format("2006-01-02T15:04:05.000Z"),
		}},
	}
}

// PlaceholderImage returns the placeholder image URL labelled with name.
func PlaceholderImage(name string) string {
	return placeholderImageURL + url.PathEscape(name)
}

// EncodeTokenURI renders m as a base64 JSON data URI.
func EncodeTokenURI(m Metadata) (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeTokenURI parses inline JSON data URIs. Other schemes return
// ErrUnsupportedURI.
func DecodeTokenURI(uri string) (*Metadata, error) {
	var raw []byte
	switch {
	case strings.HasPrefix(uri, dataURIPrefix):
		b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
		if err != nil {
			return nil, fmt.Errorf("decode token uri: %w", err)
		}
		raw = b
	case strings.HasPrefix(uri, plainDataURIPrefix):
		s, err := url.PathUnescape(strings.TrimPrefix(uri, plainDataURIPrefix))
		if err != nil {
			return nil, fmt.Errorf("decode token uri: %w", err)
		}
		raw = []byte(s)
	default:
		return nil, ErrUnsupportedURI
	}

	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode token uri: %w", err)
	}
	return &m, nil
}
