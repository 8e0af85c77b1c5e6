package config

import (
	"fmt"
	"maps"

	"github.com/aptos-labs/aptos-go-sdk"
	chainsel "github.com/smartcontractkit/chain-selectors"

	aptossdk "github.com/smartcontractkit/walletconn/sdk/aptos"
	"github.com/smartcontractkit/walletconn/types"
)

const (
	ClusterMainnet = "mainnet"
	ClusterTestnet = "testnet"
	ClusterDevnet  = "devnet"
)

// evmNetworks is the EVM network id every chain is expected on, per cluster.
var evmNetworks = map[string]map[types.ChainID]uint64{
	ClusterMainnet: {
		types.ChainIDEthereum:  chainsel.ETHEREUM_MAINNET.EvmChainID,
		types.ChainIDBSC:       chainsel.BINANCE_SMART_CHAIN_MAINNET.EvmChainID,
		types.ChainIDPolygon:   chainsel.POLYGON_MAINNET.EvmChainID,
		types.ChainIDAvalanche: chainsel.AVALANCHE_MAINNET.EvmChainID,
		types.ChainIDOasis:     42262,
		types.ChainIDAurora:    1313161554,
		types.ChainIDFantom:    250,
		types.ChainIDKarura:    686,
		types.ChainIDAcala:     787,
		types.ChainIDKlaytn:    8217,
		types.ChainIDCelo:      chainsel.CELO_MAINNET.EvmChainID,
		types.ChainIDMoonbeam:  1284,
		types.ChainIDNeon:      245022934,
		types.ChainIDArbitrum:  chainsel.ETHEREUM_MAINNET_ARBITRUM_1.EvmChainID,
		types.ChainIDOptimism:  chainsel.ETHEREUM_MAINNET_OPTIMISM_1.EvmChainID,
		types.ChainIDBase:      chainsel.ETHEREUM_MAINNET_BASE_1.EvmChainID,
	},
	ClusterTestnet: {
		types.ChainIDEthereum:  5,
		types.ChainIDBSC:       chainsel.BINANCE_SMART_CHAIN_TESTNET.EvmChainID,
		types.ChainIDPolygon:   80001,
		types.ChainIDAvalanche: chainsel.AVALANCHE_TESTNET_FUJI.EvmChainID,
		types.ChainIDOasis:     42261,
		types.ChainIDAurora:    1313161555,
		types.ChainIDFantom:    4002,
		types.ChainIDKarura:    596,
		types.ChainIDAcala:     597,
		types.ChainIDKlaytn:    1001,
		types.ChainIDCelo:      44787,
		types.ChainIDMoonbeam:  1287,
		types.ChainIDNeon:      245022926,
		types.ChainIDArbitrum:  421613,
		types.ChainIDOptimism:  420,
		types.ChainIDBase:      84531,
	},
	// The devnet runs local geth nodes for ethereum and bsc only.
	ClusterDevnet: {
		types.ChainIDEthereum: chainsel.GETH_TESTNET.EvmChainID,
		types.ChainIDBSC:      1397,
	},
}

var aptosNetworks = map[string]aptos.NetworkConfig{
	ClusterMainnet: aptos.MainnetConfig,
	ClusterTestnet: aptos.TestnetConfig,
	ClusterDevnet:  aptos.DevnetConfig,
}

// Networks is the expected network table of one cluster.
type Networks struct {
	cluster string
	evm     map[types.ChainID]uint64
	aptos   aptos.NetworkConfig
}

// NewNetworks returns the table of cluster with the EVM ids in overrides
// replacing the defaults.
func NewNetworks(cluster string, overrides map[types.ChainID]uint64) (*Networks, error) {
	defaults, ok := evmNetworks[cluster]
	if !ok {
		return nil, fmt.Errorf("unknown cluster %q", cluster)
	}

	evm := maps.Clone(defaults)
	for chain, id := range overrides {
		if !types.IsEVMChain(chain) {
			return nil, fmt.Errorf("chain %s is not an EVM chain", chain)
		}
		evm[chain] = id
	}

	return &Networks{cluster: cluster, evm: evm, aptos: aptosNetworks[cluster]}, nil
}

// NetworksFromConfig builds the table for the configured cluster.
func NetworksFromConfig(cfg *Config) (*Networks, error) {
	overrides := make(map[types.ChainID]uint64, len(cfg.EVMChainIDs))
	for name, id := range cfg.EVMChainIDs {
		chain, err := types.ChainIDFromString(name)
		if err != nil {
			return nil, err
		}
		overrides[chain] = id
	}

	networks, err := NewNetworks(cfg.Cluster, overrides)
	if err != nil {
		return nil, err
	}

	if cfg.Aptos.Network != "" {
		networks.aptos, err = aptossdk.NetworkConfigByName(cfg.Aptos.Network)
		if err != nil {
			return nil, err
		}
	}

	return networks, nil
}

func (n *Networks) Cluster() string {
	return n.cluster
}

func (n *Networks) ExpectedEVMNetwork(chain types.ChainID) (uint64, bool) {
	id, ok := n.evm[chain]

	return id, ok
}

func (n *Networks) ExpectedAptosNetwork() string {
	return n.aptos.Name
}

// AptosNetwork returns the full config of the expected Aptos network.
func (n *Networks) AptosNetwork() aptos.NetworkConfig {
	return n.aptos
}
