package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/dapp-gateway/pkg/app"
	"github.com/chainsafe/dapp-gateway/pkg/app/api"
	"github.com/chainsafe/dapp-gateway/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (built-in networks when empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
