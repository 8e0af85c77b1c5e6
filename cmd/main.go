package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/walletconn/cmd/walletconn"
)

func main() {
	rootCmd := walletconn.BuildWalletConnCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
