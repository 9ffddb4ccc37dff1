package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/chainsafe/dapp-gateway/pkg/config"
	"github.com/chainsafe/dapp-gateway/pkg/network"
)

func TestNetworkRoutes(t *testing.T) {
	reg, err := network.NewRegistry(config.DefaultNetworks(), config.ChainIDHardhat)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	r := chi.NewRouter()
	registerNetworkRoutes(r, reg)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/networks", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []NetworkView
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(config.DefaultNetworks()) {
		t.Fatalf("expected %d networks, got %d", len(config.DefaultNetworks()), len(got))
	}
	for _, n := range got {
		switch n.ChainID {
		case config.ChainIDHardhat:
			if !n.Active || n.Contracts["token"] == "" {
				t.Fatalf("hardhat should be active with a token deployment: %+v", n)
			}
		case config.ChainIDSepolia:
			if n.Active || n.Contracts["voting"] != "" {
				t.Fatalf("sepolia should be inactive and undeployed: %+v", n)
			}
		}
	}
}
