package walletconn

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/walletconn"
	"github.com/smartcontractkit/walletconn/config"
	"github.com/smartcontractkit/walletconn/sdk"
	"github.com/smartcontractkit/walletconn/types"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg        *config.Config
	networks   *config.Networks
	lggr       sdk.Logger
	registry   *walletconn.Registry
	dialog     *walletconn.Dialog
	reconciler *walletconn.Reconciler
}

func BuildWalletConnCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		a          app
	)

	cmd := cobra.Command{
		Use:           "walletconn",
		Short:         "Connect and inspect wallets across chains",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, configPath, verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (yaml, json or toml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	cmd.AddCommand(buildWalletsCmd(&a))
	cmd.AddCommand(buildStatusCmd(&a))
	cmd.AddCommand(buildSwitchNetworkCmd(&a))
	cmd.AddCommand(buildBalanceCmd(&a))

	return &cmd
}

func (a *app) setup(cmd *cobra.Command, configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	networks, err := config.NetworksFromConfig(cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx := sdk.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	wallets, err := walletconn.NewWalletsFromConfig(ctx, cfg, networks)
	if err != nil {
		return err
	}

	registry := walletconn.NewRegistry(walletconn.WithLogger(logger))
	if err := registry.AddWallets(wallets...); err != nil {
		registry.Close()

		return err
	}

	a.cfg = cfg
	a.networks = networks
	a.lggr = logger
	a.registry = registry
	a.dialog = walletconn.NewDialog(registry)
	a.reconciler = walletconn.NewReconciler(registry, networks)

	return nil
}

// shutdown disconnects every wallet the command connected.
func (a *app) shutdown(ctx context.Context) error {
	if a.registry == nil {
		return nil
	}
	defer a.registry.Close()

	return a.registry.DisconnectAll(context.WithoutCancel(ctx))
}

// connect selects a wallet of chain through the dialog. An empty name picks
// the first wallet registered for the chain.
func (a *app) connect(ctx context.Context, chain types.ChainID, name string) (sdk.Wallet, error) {
	a.dialog.Open(chain)
	defer a.dialog.Close()

	options := a.dialog.Options()
	if len(options) == 0 {
		return nil, fmt.Errorf("no wallet configured for chain %s", chain)
	}
	if name == "" {
		name = options[0].Name
	}

	if err := a.dialog.Select(ctx, name); err != nil {
		return nil, err
	}

	w, ok := a.registry.ActiveWallet(chain)
	if !ok {
		return nil, fmt.Errorf("wallet %s disconnected from chain %s", name, chain)
	}

	return w, nil
}

// withConnection runs fn with the chosen wallet connected and disconnects
// everything afterwards.
func (a *app) withConnection(
	ctx context.Context, chainName, walletName string, fn func(chain types.ChainID, w sdk.Wallet) error,
) (err error) {
	chain, err := types.ChainIDFromString(chainName)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, a.shutdown(ctx))
	}()

	w, err := a.connect(ctx, chain, walletName)
	if err != nil {
		return err
	}

	return fn(chain, w)
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
