// Package network maps chain ids to the contract deployments on them.
package network

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/ethereum/go-ethereum/common"
)

// ErrContractUnavailable is returned when the active network has no address
// for a contract. Callers receive it wrapped in a ConfigurationError.
var ErrContractUnavailable = errors.New("contract not available on this network")

// ErrUnknownNetwork is returned when switching to a chain id that is not configured.
var ErrUnknownNetwork = errors.New("unknown network")

// Network is one chain and its contract deployments.
type Network struct {
	ChainID   int64
	Name      string
	RPCURL    string
	WSURL     string
	Contracts map[contracts.ID]common.Address
}

// Address returns the deployment of id, or false when it is not deployed.
func (n Network) Address(id contracts.ID) (common.Address, bool) {
	addr, ok := n.Contracts[id]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, false
	}
	return addr, true
}

// Registry holds every configured network and tracks the active one.
type Registry struct {
	mu       sync.RWMutex
	networks map[int64]Network
	active   int64
}

// NewRegistry builds a registry from configuration.
func NewRegistry(cfgs []config.NetworkConfig, active int64) (*Registry, error) {
	r := &Registry{networks: make(map[int64]Network, len(cfgs))}
	for _, c := range cfgs {
		n := Network{
			ChainID:   c.ChainID,
			Name:      c.Name,
			RPCURL:    c.RPCURL,
			WSURL:     c.WSURL,
			Contracts: make(map[contracts.ID]common.Address, len(c.Contracts)),
		}
		for key, hex := range c.Contracts {
			id := contracts.ID(key)
			if !id.Valid() {
				return nil, fmt.Errorf("network %s: unknown contract %q", c.Name, key)
			}
			if hex == "" {
				continue
			}
			if !common.IsHexAddress(hex) {
				return nil, fmt.Errorf("network %s: invalid %s address %q", c.Name, key, hex)
			}
			n.Contracts[id] = common.HexToAddress(hex)
		}
		r.networks[c.ChainID] = n
	}
	if err := r.Switch(active); err != nil {
		return nil, err
	}
	return r, nil
}

// Active returns the active network.
func (r *Registry) Active() Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.networks[r.active]
}

// Switch makes chainID the active network.
func (r *Registry) Switch(chainID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.networks[chainID]; !ok {
		return fmt.Errorf("%w: chain id %d", ErrUnknownNetwork, chainID)
	}
	r.active = chainID
	return nil
}

// Get returns the network with chainID.
func (r *Registry) Get(chainID int64) (Network, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.networks[chainID]
	return n, ok
}

// List returns every network ordered by chain id.
func (r *Registry) List() []Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Network, 0, len(r.networks))
	for _, n := range r.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

// Resolve returns the address of id on the active network. An unresolved
// contract yields a ConfigurationError wrapping ErrContractUnavailable.
func (r *Registry) Resolve(id contracts.ID) (common.Address, error) {
	n := r.Active()
	if addr, ok := n.Address(id); ok {
		return addr, nil
	}
	return common.Address{}, apperrors.ConfigurationError(
		fmt.Errorf("%w: %s on %s (%d)", ErrContractUnavailable, id, n.Name, n.ChainID),
		fmt.Sprintf("%s contract not available on this network", id.Label()),
	)
}
