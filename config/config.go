package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// WALLETCONN_CLUSTER or WALLETCONN_SOLANA_RPC_URL.
const EnvPrefix = "WALLETCONN"

type Config struct {
	Cluster string       `mapstructure:"cluster" validate:"required,oneof=mainnet testnet devnet"`
	EVM     EVMConfig    `mapstructure:"evm"`
	Solana  SolanaConfig `mapstructure:"solana"`
	Aptos   AptosConfig  `mapstructure:"aptos"`
	// EVMChainIDs overrides the expected network id of EVM chains, keyed by
	// chain name.
	EVMChainIDs map[string]uint64 `mapstructure:"-"`
}

type EVMConfig struct {
	// Chains are the names of the EVM chains to build wallets for.
	Chains     []string `mapstructure:"chains" validate:"dive,required"`
	RPCURL     string   `mapstructure:"rpc_url" validate:"omitempty,url"`
	WalletName string   `mapstructure:"wallet_name"`
	// LedgerPath is a BIP-32 derivation path. When set, a Ledger wallet is
	// added for every chain.
	LedgerPath string `mapstructure:"ledger_path"`
}

type SolanaConfig struct {
	RPCURL      string `mapstructure:"rpc_url" validate:"omitempty,url"`
	KeypairPath string `mapstructure:"keypair_path"`
	WalletName  string `mapstructure:"wallet_name"`
}

type AptosConfig struct {
	Network    string `mapstructure:"network" validate:"omitempty,oneof=mainnet testnet devnet localnet"`
	NodeURL    string `mapstructure:"node_url" validate:"omitempty,url"`
	PrivateKey string `mapstructure:"private_key"`
	WalletName string `mapstructure:"wallet_name"`
}

var defaults = map[string]any{
	"cluster":             ClusterTestnet,
	"evm.chains":          []string{},
	"evm.rpc_url":         "",
	"evm.wallet_name":     "Injected",
	"evm.ledger_path":     "",
	"solana.rpc_url":      "",
	"solana.keypair_path": "",
	"solana.wallet_name":  "Phantom",
	"aptos.network":       "",
	"aptos.node_url":      "",
	"aptos.private_key":   "",
	"aptos.wallet_name":   "Petra",
}

// Load reads the configuration file at path, which may be empty, and the
// WALLETCONN_* environment variables. Environment variables win over the
// file. Variables from a .env file in the working directory are loaded first
// unless already set; a missing .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Lists and maps coming from the environment are plain strings.
	cfg.EVM.Chains = splitList(v.Get("evm.chains"))

	overrides, err := chainIDOverrides(v.Get("evm_chain_ids"))
	if err != nil {
		return nil, err
	}
	cfg.EVMChainIDs = overrides

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// splitList accepts a list or a comma separated string.
func splitList(raw any) []string {
	if s, ok := raw.(string); ok {
		raw = strings.Split(s, ",")
	}

	var out []string
	for _, item := range cast.ToStringSlice(raw) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// chainIDOverrides accepts a map or a "name=id,name=id" string.
func chainIDOverrides(raw any) (map[string]uint64, error) {
	if raw == nil {
		return nil, nil
	}

	entries := map[string]any{}
	if s, ok := raw.(string); ok {
		for _, pair := range splitList(s) {
			name, id, found := strings.Cut(pair, "=")
			if !found {
				return nil, fmt.Errorf("invalid evm_chain_ids entry %q", pair)
			}
			entries[strings.TrimSpace(name)] = strings.TrimSpace(id)
		}
	} else {
		m, err := cast.ToStringMapE(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid evm_chain_ids: %w", err)
		}
		entries = m
	}

	out := make(map[string]uint64, len(entries))
	for name, value := range entries {
		id, err := cast.ToUint64E(value)
		if err != nil {
			return nil, fmt.Errorf("invalid network id for %s: %w", name, err)
		}
		out[name] = id
	}

	return out, nil
}
