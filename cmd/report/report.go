// Package report handles the spending report command
package report

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
	"spendtrack/internal/analytics"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Report totals grouped by category or account",
	Long: `Report transaction totals grouped by category or account, optionally
restricted to a transaction type and a date range.

Example:
  spendtrack report -t Expense -g Category --from 2024-01-01 --to 2024-12-31`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.TransactionType, "type", "t", "All", "Transaction type (Income, Expense, Transfer or All)")
	Cmd.Flags().StringVarP(&root.GroupBy, "group-by", "g", "Category", "Grouping key (Category or Account)")
	Cmd.Flags().StringVar(&root.FromDate, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	Cmd.Flags().StringVar(&root.ToDate, "to", "", "End date (YYYY-MM-DD, inclusive)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	tr, _, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	txs, err := tr.Transactions("")
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to list transactions")
		return
	}
	if root.FromDate != "" || root.ToDate != "" {
		to := root.ToDate
		if to == "" {
			to = "9999-12-31"
		}
		txs = analytics.FilterByDateRange(txs, root.FromDate, to)
	}

	totals, err := analytics.Totals(txs,
		analytics.TransactionType(root.TransactionType),
		analytics.GroupBy(root.GroupBy))
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to compute report")
		return
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%-24s %12s\n", key, totals[key].StringFixed(2))
	}
}
