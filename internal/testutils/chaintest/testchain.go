package chaintest

import (
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/walletconn/types"
)

var (
	Chain1       = types.ChainIDEthereum
	Chain1EVMID  = cselectors.ETHEREUM_MAINNET.EvmChainID // 1
	Chain1TestID = cselectors.GETH_TESTNET.EvmChainID     // 1337

	Chain2      = types.ChainIDBSC
	Chain2EVMID = cselectors.BINANCE_SMART_CHAIN_MAINNET.EvmChainID // 56

	Chain3      = types.ChainIDPolygon
	Chain3EVMID = cselectors.POLYGON_MAINNET.EvmChainID // 137

	// TestInvalidChainID is a chain id that doesn't exist.
	TestInvalidChainID = types.ChainID(0)
)

const (
	TestEVMAddress1 = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"
	TestEVMAddress2 = "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0"

	TestSolanaAddress = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	TestTerraAddress  = "terra1x46rqay4d3cssq8gxxvqz8xt6nwlz4td20k38v"
	TestAptosAddress  = "0x9f1e6ca6e7c9d1cd12e0e1a9f5a9c0e6e29b6bba9e6f5d87a1d1d4e6c9e0a1b2"
)
