package walletconn

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func buildWalletsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "List the configured wallets per chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.registry.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cluster: %s\n", color.CyanString(a.networks.Cluster()))

			chains := a.registry.Chains()
			if len(chains) == 0 {
				fmt.Fprintln(out, color.YellowString("No wallets configured"))

				return nil
			}

			for _, chain := range chains {
				fmt.Fprintf(out, "\n%s", color.CyanString(chain.String()))
				if id, ok := a.networks.ExpectedEVMNetwork(chain); ok {
					fmt.Fprintf(out, " (chain id %d)", id)
				}
				fmt.Fprintln(out)

				for _, w := range a.registry.AvailableWallets(chain) {
					fmt.Fprintf(out, "  - %s\n", w.Name())
				}
			}

			return nil
		},
	}
}
