// Package balance handles the balance reporting command
package balance

import (
	"fmt"

	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
)

// Cmd represents the balance command
var Cmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the total balance across all accounts",
	Long:  `Sum every account's balance converted to the configured default currency.`,
	Run:   balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) {
	tr, _, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	total, err := tr.Balance()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to compute balance")
		return
	}
	fmt.Printf("Total balance: %s %s\n", total.StringFixed(2), root.Cfg.DefaultCurrency())
}
