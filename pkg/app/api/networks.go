package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apphttp "github.com/chainsafe/dapp-gateway/pkg/app/http"
	"github.com/chainsafe/dapp-gateway/pkg/contracts"
	"github.com/chainsafe/dapp-gateway/pkg/network"
)

// NetworkView describes one configured network. Contracts maps every
// contract id to its address, empty when it is not deployed there.
type NetworkView struct {
	ChainID   int64             `json:"chainId"`
	Name      string            `json:"name"`
	Active    bool              `json:"active"`
	Contracts map[string]string `json:"contracts"`
}

type networkLister interface {
	List() []network.Network
	Active() network.Network
}

func registerNetworkRoutes(r chi.Router, networks networkLister) {
	r.Get("/networks", apphttp.HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		apphttp.WriteJSON(w, http.StatusOK, networkViews(networks))
		return nil
	}))
}

func networkViews(networks networkLister) []NetworkView {
	active := networks.Active().ChainID
	list := networks.List()
	out := make([]NetworkView, 0, len(list))
	for _, n := range list {
		view := NetworkView{
			ChainID:   n.ChainID,
			Name:      n.Name,
			Active:    n.ChainID == active,
			Contracts: make(map[string]string, len(contracts.All)),
		}
		for _, id := range contracts.All {
			view.Contracts[id.String()] = ""
			if addr, ok := n.Address(id); ok {
				view.Contracts[id.String()] = addr.Hex()
			}
		}
		out = append(out, view)
	}
	return out
}
