// Package categorize handles the bulk categorization command
package categorize

import (
	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Recategorize all stored transactions",
	Long: `Run every stored transaction through the rule list again. Categories are
recomputed from scratch, so edits to the rule list take effect everywhere.`,
	Run: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	if err := tr.CategorizeAll(); err != nil {
		root.Log.WithError(err).Fatal("Categorization failed")
		return
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.Info("Categorization completed successfully!")
}
