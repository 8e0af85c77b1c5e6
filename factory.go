package walletconn

import (
	"context"
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/walletconn/config"
	"github.com/smartcontractkit/walletconn/sdk"
	aptossdk "github.com/smartcontractkit/walletconn/sdk/aptos"
	"github.com/smartcontractkit/walletconn/sdk/evm"
	solanasdk "github.com/smartcontractkit/walletconn/sdk/solana"
	"github.com/smartcontractkit/walletconn/types"
)

// walletFactory builds wallets for the chains of one config, sharing clients
// between chains of the same family.
type walletFactory struct {
	cfg      *config.Config
	networks *config.Networks

	evmBackend evm.Backend
	evmClient  *ethclient.Client
}

// NewWalletsFromConfig builds the wallets described by cfg: an RPC wallet and
// optionally a Ledger per configured EVM chain, a keypair wallet for Solana,
// and a private key wallet for Aptos. Wallets are returned unconnected.
func NewWalletsFromConfig(ctx context.Context, cfg *config.Config, networks *config.Networks) ([]sdk.Wallet, error) {
	chains, err := configuredChains(cfg)
	if err != nil {
		return nil, err
	}

	f := &walletFactory{cfg: cfg, networks: networks}

	var wallets []sdk.Wallet
	for _, chain := range chains {
		built, err := f.newWallets(ctx, chain)
		if err != nil {
			return nil, fmt.Errorf("failed to build wallets for %s: %w", chain, err)
		}
		wallets = append(wallets, built...)
	}

	return wallets, nil
}

func configuredChains(cfg *config.Config) ([]types.ChainID, error) {
	chains := make([]types.ChainID, 0, len(cfg.EVM.Chains)+2)
	for _, name := range cfg.EVM.Chains {
		chain, err := types.ChainIDFromString(name)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	if cfg.Solana.KeypairPath != "" {
		chains = append(chains, types.ChainIDSolana)
	}
	if cfg.Aptos.PrivateKey != "" {
		chains = append(chains, types.ChainIDAptos)
	}

	return chains, nil
}

func (f *walletFactory) newWallets(ctx context.Context, chain types.ChainID) ([]sdk.Wallet, error) {
	family, err := types.GetChainFamily(chain)
	if err != nil {
		return nil, err
	}

	switch family {
	case chainsel.FamilyEVM:
		return f.newEVMWallets(ctx, chain)
	case chainsel.FamilySolana:
		return f.newSolanaWallets()
	case chainsel.FamilyAptos:
		return f.newAptosWallets()
	default:
		return nil, NewUnsupportedChainError(chain, family)
	}
}

func (f *walletFactory) newEVMWallets(ctx context.Context, chain types.ChainID) ([]sdk.Wallet, error) {
	if f.cfg.EVM.RPCURL == "" {
		return nil, fmt.Errorf("evm.rpc_url is required for chain %s", chain)
	}

	if f.evmBackend == nil {
		backend, err := evm.NewRPCBackend(ctx, f.cfg.EVM.RPCURL)
		if err != nil {
			return nil, err
		}
		f.evmBackend = backend
	}

	wallets := []sdk.Wallet{evm.NewWallet(f.cfg.EVM.WalletName, chain, f.evmBackend)}

	if f.cfg.EVM.LedgerPath == "" {
		return wallets, nil
	}

	path, err := accounts.ParseDerivationPath(f.cfg.EVM.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger derivation path: %w", err)
	}
	if f.evmClient == nil {
		client, err := ethclient.DialContext(ctx, f.cfg.EVM.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", f.cfg.EVM.RPCURL, err)
		}
		f.evmClient = client
	}

	ledgers, err := evm.NewLedgerWallets(chain, f.evmClient, path)
	if err != nil {
		// A missing USB stack only costs the Ledger option.
		sdk.LoggerFrom(ctx).Warnf("ledger wallets unavailable for %s: %v", chain, err)

		return wallets, nil
	}
	for _, ledger := range ledgers {
		wallets = append(wallets, ledger)
	}

	return wallets, nil
}

func (f *walletFactory) newSolanaWallets() ([]sdk.Wallet, error) {
	var client *rpc.Client
	if f.cfg.Solana.RPCURL != "" {
		client = rpc.New(f.cfg.Solana.RPCURL)
	}

	w, err := solanasdk.NewKeypairWallet(f.cfg.Solana.WalletName, f.cfg.Solana.KeypairPath, client)
	if err != nil {
		return nil, err
	}

	return []sdk.Wallet{w}, nil
}

func (f *walletFactory) newAptosWallets() ([]sdk.Wallet, error) {
	network := f.networks.AptosNetwork()
	if f.cfg.Aptos.NodeURL != "" {
		network.NodeUrl = f.cfg.Aptos.NodeURL
	}

	client, err := aptos.NewClient(network)
	if err != nil {
		return nil, fmt.Errorf("failed to create aptos client: %w", err)
	}

	w, err := aptossdk.NewPrivateKeyWallet(f.cfg.Aptos.WalletName, f.cfg.Aptos.PrivateKey, client, network)
	if err != nil {
		return nil, err
	}

	return []sdk.Wallet{w}, nil
}
