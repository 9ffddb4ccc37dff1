// Command dappctl drives the dApp contracts from a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/chainsafe/dapp-gateway/pkg/app/gateway"
	apperrors "github.com/chainsafe/dapp-gateway/pkg/app/errors"
	"github.com/chainsafe/dapp-gateway/pkg/config"
)

const usageText = `Usage:
  dappctl [flags] <command> [args]

Commands:
  wallet                                 connection status of the active network
  token info|balance [addr]|cooldown [-watch] [addr]|mint|transfer <to> <amount>
  nft info|list [addr]|show <id>|mint -name <name> [-description <text>]
  vote posts [-count n]|show <id>|post -author <name> <content>|cast <id> like|dislike|mine <id> [addr]
  eth balance [addr]|send <to> <amount>
  tx <hash>

Flags:
`

func main() {
	configPath := flag.String("config", "", "Path to configuration file (built-in networks when empty)")
	chainID := flag.Int64("network", 0, "Chain id of the network to use")
	asJSON := flag.Bool("json", false, "Print results as JSON")
	confirm := flag.Bool("confirm", true, "Ask before signing each transaction")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *chainID != 0 {
		cfg.ActiveNetwork = *chainID
	}
	cfg.Wallet.Confirm = *confirm
	cfg.Logging = config.LoggingConfig{Level: *logLevel, Format: "console", OutputPath: "stderr"}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, err := gateway.Build(ctx, cfg, logger, os.Stdin, os.Stderr)
	if err != nil {
		logger.Error("Failed to connect", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := newCLI(gw, os.Stdout)
	c.json = *asJSON
	err = c.run(ctx, flag.Args())
	gw.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperrors.MessageOf(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
