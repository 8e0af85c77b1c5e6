package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "walletconn.yaml", `
cluster: mainnet
evm:
  chains: [ethereum, bsc]
  rpc_url: http://localhost:8545
  ledger_path: m/44'/60'/0'/0/0
solana:
  rpc_url: https://api.mainnet-beta.solana.com
  keypair_path: /tmp/id.json
aptos:
  network: mainnet
evm_chain_ids:
  ethereum: 1337
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ClusterMainnet, cfg.Cluster)
	assert.Equal(t, []string{"ethereum", "bsc"}, cfg.EVM.Chains)
	assert.Equal(t, "http://localhost:8545", cfg.EVM.RPCURL)
	assert.Equal(t, "Injected", cfg.EVM.WalletName)
	assert.Equal(t, "m/44'/60'/0'/0/0", cfg.EVM.LedgerPath)
	assert.Equal(t, "/tmp/id.json", cfg.Solana.KeypairPath)
	assert.Equal(t, "Phantom", cfg.Solana.WalletName)
	assert.Equal(t, "mainnet", cfg.Aptos.Network)
	assert.Equal(t, map[string]uint64{"ethereum": 1337}, cfg.EVMChainIDs)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "empty.yaml", "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, ClusterTestnet, cfg.Cluster)
	assert.Empty(t, cfg.EVM.Chains)
	assert.Empty(t, cfg.EVMChainIDs)
	assert.Equal(t, "Petra", cfg.Aptos.WalletName)
}

//nolint:paralleltest // t.Setenv
func TestLoad_Env(t *testing.T) {
	t.Setenv("WALLETCONN_CLUSTER", "devnet")
	t.Setenv("WALLETCONN_EVM_CHAINS", "ethereum, bsc")
	t.Setenv("WALLETCONN_EVM_CHAIN_IDS", "ethereum=1338,bsc=1398")
	t.Setenv("WALLETCONN_SOLANA_WALLET_NAME", "Solflare")

	cfg, err := Load(writeConfig(t, "walletconn.yaml", "cluster: mainnet\n"))
	require.NoError(t, err)

	assert.Equal(t, ClusterDevnet, cfg.Cluster)
	assert.Equal(t, []string{"ethereum", "bsc"}, cfg.EVM.Chains)
	assert.Equal(t, map[string]uint64{"ethereum": 1338, "bsc": 1398}, cfg.EVMChainIDs)
	assert.Equal(t, "Solflare", cfg.Solana.WalletName)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown cluster",
			content: "cluster: moonnet\n",
			wantErr: "Field validation for 'Cluster' failed on the 'oneof' tag",
		},
		{
			name:    "invalid rpc url",
			content: "evm:\n  rpc_url: not a url\n",
			wantErr: "Field validation for 'RPCURL' failed on the 'url' tag",
		},
		{
			name:    "unknown aptos network",
			content: "aptos:\n  network: moonnet\n",
			wantErr: "Field validation for 'Network' failed on the 'oneof' tag",
		},
		{
			name:    "invalid network id",
			content: "evm_chain_ids:\n  ethereum: one\n",
			wantErr: "invalid network id for ethereum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, "walletconn.yaml", tt.content))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}
