package walletconn

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/walletconn"
	"github.com/smartcontractkit/walletconn/sdk"
	"github.com/smartcontractkit/walletconn/types"
)

func buildSwitchNetworkCmd(a *app) *cobra.Command {
	var (
		chainName  string
		walletName string
	)

	cmd := &cobra.Command{
		Use:   "switch-network",
		Short: "Move an EVM wallet to the network expected by the configured cluster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			return a.withConnection(ctx, chainName, walletName, func(chain types.ChainID, w sdk.Wallet) error {
				verdict := a.reconciler.IsWalletReady(ctx, chain, walletconn.WithAutoSwitch(false))
				if verdict.IsReady {
					fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s is already on the expected network", w.Name()))

					return nil
				}

				if err := verdict.ForceNetworkSwitch(ctx); err != nil {
					return fmt.Errorf("failed to switch network: %w", err)
				}

				printVerdict(cmd.OutOrStdout(), chain, w, a.reconciler.IsWalletReady(ctx, chain, walletconn.WithAutoSwitch(false)))

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "", "EVM chain to switch, e.g. ethereum or bsc")
	cmd.Flags().StringVar(&walletName, "wallet", "", "Wallet to connect, defaults to the first configured one")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}
