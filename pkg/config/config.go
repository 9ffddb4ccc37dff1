package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets and the active network.
const (
	EnvWalletPrivateKey       = "DAPP_WALLET_PRIVATE_KEY"
	EnvWalletKeystorePassword = "DAPP_WALLET_KEYSTORE_PASSWORD"
	EnvJWTSecret              = "DAPP_API_JWT_SECRET"
	EnvAllowedAddresses       = "DAPP_API_ALLOWED_ADDRESSES"
	EnvDatabasePassword       = "DAPP_DATABASE_PASSWORD"
	EnvActiveNetwork          = "DAPP_ACTIVE_NETWORK"
)

// Chain IDs of the networks the dApp ships with.
const (
	ChainIDMainnet int64 = 1
	ChainIDGoerli  int64 = 5
	ChainIDSepolia int64 = 11155111
	ChainIDHardhat int64 = 31337
)

// Config represents the application configuration
type Config struct {
	Server        ServerConfig     `yaml:"server"`
	Database      DatabaseConfig   `yaml:"database"`
	Redis         RedisConfig      `yaml:"redis"`
	Networks      []NetworkConfig  `yaml:"networks" validate:"omitempty,dive"`
	ActiveNetwork int64            `yaml:"active_network" default:"31337" validate:"gt=0"`
	Wallet        WalletConfig     `yaml:"wallet"`
	Tracker       TrackerConfig    `yaml:"tracker"`
	Cache         CacheConfig      `yaml:"cache"`
	Auth          AuthConfig       `yaml:"auth"`
	Logging       LoggingConfig    `yaml:"logging"`
	Monitoring    MonitoringConfig `yaml:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"127.0.0.1"`
	Port            int           `yaml:"port" default:"8081" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains settings for the optional transaction journal database.
// When Enabled is false the journal is kept in memory.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user" default:"dapp"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"dapp_gateway"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`

	// MemoryLimit caps the in-memory journal used when Enabled is false.
	MemoryLimit int `yaml:"memory_limit" default:"1000" validate:"gte=0"`
}

// RedisConfig contains settings for the optional shared read cache backing.
type RedisConfig struct {
	Enabled   bool   `yaml:"enabled"`
	URL       string `yaml:"url" default:"redis://localhost:6379/0" validate:"required_if=Enabled true"`
	KeyPrefix string `yaml:"key_prefix" default:"dapp:cache:"`
}

// NetworkConfig describes one chain and the contract deployments on it.
// An empty contract address disables every operation on that contract.
type NetworkConfig struct {
	ChainID   int64             `yaml:"chain_id" validate:"gt=0"`
	Name      string            `yaml:"name" validate:"required"`
	RPCURL    string            `yaml:"rpc_url"`
	WSURL     string            `yaml:"ws_url"`
	Contracts map[string]string `yaml:"contracts" validate:"dive,keys,oneof=token nft voting,endkeys,omitempty,eth_addr"`
}

// WalletConfig contains signing settings. With neither a private key nor a
// keystore configured the client runs read-only.
type WalletConfig struct {
	PrivateKey       string `yaml:"private_key"`
	KeystorePath     string `yaml:"keystore_path"`
	KeystorePassword string `yaml:"keystore_password"`
	Confirm          bool   `yaml:"confirm"`
	GasLimit         uint64 `yaml:"gas_limit" default:"300000"`
	MaxGasPrice      string `yaml:"max_gas_price" validate:"omitempty,numeric"`
}

// TrackerConfig controls receipt polling.
type TrackerConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" default:"2s" validate:"gt=0"`
	Timeout      time.Duration `yaml:"timeout" default:"10m"`
}

// CacheConfig holds the refresh interval for every kind of contract read.
type CacheConfig struct {
	Balance     time.Duration `yaml:"balance" default:"10s" validate:"gt=0"`
	Cooldown    time.Duration `yaml:"cooldown" default:"1s" validate:"gt=0"`
	Info        time.Duration `yaml:"info" default:"60s" validate:"gt=0"`
	NFTList     time.Duration `yaml:"nft_list" default:"30s" validate:"gt=0"`
	Post        time.Duration `yaml:"post" default:"10s" validate:"gt=0"`
	RecentPosts time.Duration `yaml:"recent_posts" default:"15s" validate:"gt=0"`
	UserVote    time.Duration `yaml:"user_vote" default:"5s" validate:"gt=0"`
	IdleTTL     time.Duration `yaml:"idle_ttl" default:"10m"`
}

// AuthConfig protects write endpoints of the API. An empty secret disables
// auth. Only AllowedAddresses may log in for write access.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret" validate:"omitempty,min=16"`
	Issuer           string        `yaml:"issuer" default:"dapp-gateway"`
	TokenTTL         time.Duration `yaml:"token_ttl" default:"24h" validate:"gt=0"`
	LoginSkew        time.Duration `yaml:"login_skew" default:"5m" validate:"gt=0"`
	AllowedAddresses []string      `yaml:"allowed_addresses" validate:"dive,eth_addr"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// Load reads configuration from a YAML file, applies defaults and
// environment overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes configuration from YAML bytes.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Networks) == 0 {
		cfg.Networks = DefaultNetworks()
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied and the
// built-in networks, as used when no config file is given.
func Default() (*Config, error) {
	return Parse(nil)
}

// DefaultNetworks returns the networks of the original deployment: the local
// hardhat node has contracts, the public testnets are not deployed yet.
func DefaultNetworks() []NetworkConfig {
	return []NetworkConfig{
		{
			ChainID: ChainIDHardhat,
			Name:    "hardhat",
			RPCURL:  "http://127.0.0.1:8545",
			Contracts: map[string]string{
				"token":  "0x5FbDB2315678afecb367f032d93F642f64180aa3",
				"nft":    "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
				"voting": "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
			},
		},
		{
			ChainID:   ChainIDSepolia,
			Name:      "sepolia",
			RPCURL:    "https://eth-sepolia.g.alchemy.com/v2/your-alchemy-api-key",
			Contracts: map[string]string{"token": "", "nft": "", "voting": ""},
		},
		{
			ChainID:   ChainIDGoerli,
			Name:      "goerli",
			RPCURL:    "https://eth-goerli.g.alchemy.com/v2/your-alchemy-api-key",
			Contracts: map[string]string{"token": "", "nft": "", "voting": ""},
		},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvWalletPrivateKey); v != "" {
		cfg.Wallet.PrivateKey = v
	}
	if v := os.Getenv(EnvWalletKeystorePassword); v != "" {
		cfg.Wallet.KeystorePassword = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv(EnvAllowedAddresses); v != "" {
		cfg.Auth.AllowedAddresses = strings.Split(v, ",")
		for i := range cfg.Auth.AllowedAddresses {
			cfg.Auth.AllowedAddresses[i] = strings.TrimSpace(cfg.Auth.AllowedAddresses[i])
		}
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvActiveNetwork); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvActiveNetwork, err)
		}
		cfg.ActiveNetwork = id
	}
	return nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	seen := make(map[int64]bool, len(cfg.Networks))
	for _, n := range cfg.Networks {
		if seen[n.ChainID] {
			return fmt.Errorf("duplicate network chain_id %d", n.ChainID)
		}
		seen[n.ChainID] = true
	}
	if !seen[cfg.ActiveNetwork] {
		return fmt.Errorf("active_network %d is not configured", cfg.ActiveNetwork)
	}

	if cfg.Auth.JWTSecret != "" && len(cfg.Auth.AllowedAddresses) == 0 {
		return errors.New("auth.allowed_addresses is required when auth.jwt_secret is set")
	}

	if cfg.Wallet.PrivateKey != "" && cfg.Wallet.KeystorePath != "" {
		return errors.New("wallet.private_key and wallet.keystore_path are mutually exclusive")
	}
	return nil
}
