package walletconn

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/walletconn/sdk"
	aptossdk "github.com/smartcontractkit/walletconn/sdk/aptos"
	solanasdk "github.com/smartcontractkit/walletconn/sdk/solana"
	"github.com/smartcontractkit/walletconn/types"
)

// Native token decimals.
const (
	weiDecimals     = 18
	lamportDecimals = 9
	octaDecimals    = 8
)

func buildBalanceCmd(a *app) *cobra.Command {
	var (
		chainName  string
		walletName string
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the native token balance of a wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			return a.withConnection(ctx, chainName, walletName, func(chain types.ChainID, w sdk.Wallet) error {
				balance, err := a.balance(ctx, chain, w)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", w.Name(), chain, balance.String())

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "", "Chain of the wallet, e.g. ethereum, solana or aptos")
	cmd.Flags().StringVar(&walletName, "wallet", "", "Wallet to connect, defaults to the first configured one")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}

func (a *app) balance(ctx context.Context, chain types.ChainID, w sdk.Wallet) (decimal.Decimal, error) {
	switch w := w.(type) {
	case *solanasdk.Wallet:
		lamports, err := w.Balance(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		return decimal.NewFromUint64(lamports).Shift(-lamportDecimals), nil

	case *aptossdk.Wallet:
		octas, err := w.Balance(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		return decimal.NewFromUint64(octas).Shift(-octaDecimals), nil
	}

	if !types.IsEVMChain(chain) {
		return decimal.Zero, fmt.Errorf("balance is not supported for wallet %s on %s", w.Name(), chain)
	}

	client, err := ethclient.DialContext(ctx, a.cfg.EVM.RPCURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to dial %s: %w", a.cfg.EVM.RPCURL, err)
	}
	defer client.Close()

	wei, err := client.BalanceAt(ctx, common.HexToAddress(w.Address()), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance of %s: %w", w.Address(), err)
	}

	return decimal.NewFromBigInt(wei, -weiDecimals), nil
}
