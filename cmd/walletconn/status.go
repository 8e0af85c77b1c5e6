package walletconn

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/walletconn"
	"github.com/smartcontractkit/walletconn/sdk"
	"github.com/smartcontractkit/walletconn/types"
)

func buildStatusCmd(a *app) *cobra.Command {
	var (
		chainName    string
		walletName   string
		noAutoSwitch bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Connect a wallet and report whether it is ready for the configured cluster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			return a.withConnection(ctx, chainName, walletName, func(chain types.ChainID, w sdk.Wallet) error {
				verdict := a.reconciler.IsWalletReady(ctx, chain, walletconn.WithAutoSwitch(!noAutoSwitch))
				printVerdict(cmd.OutOrStdout(), chain, w, verdict)
				// Let a switch request finish before the wallet is disconnected.
				a.reconciler.Wait()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "", "Chain to connect to, e.g. ethereum, solana or aptos")
	cmd.Flags().StringVar(&walletName, "wallet", "", "Wallet to connect, defaults to the first configured one")
	cmd.Flags().BoolVar(&noAutoSwitch, "no-auto-switch", false, "Do not ask the wallet to switch networks")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}

func printVerdict(out io.Writer, chain types.ChainID, w sdk.Wallet, verdict walletconn.Verdict) {
	fmt.Fprintf(out, "Chain:   %s\n", color.CyanString(chain.String()))
	fmt.Fprintf(out, "Wallet:  %s\n", w.Name())
	if verdict.WalletAddress != "" {
		fmt.Fprintf(out, "Address: %s\n", walletconn.ShortAddress(verdict.WalletAddress))
	}

	if verdict.IsReady {
		fmt.Fprintf(out, "Status:  %s\n", color.GreenString("ready"))

		return
	}
	fmt.Fprintf(out, "Status:  %s\n", color.RedString(verdict.StatusMessage))
}
