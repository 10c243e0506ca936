// Package rules handles the rule management commands
package rules

import (
	"fmt"

	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
	"spendtrack/internal/logging"
	"spendtrack/internal/store"
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage categorization rules",
	Long: `List, import and delete categorization rules. Rules are kept in order:
the first matching rule decides a transaction's category.`,
	Run: listFunc,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import rules from a YAML rule book",
	Long: `Import rules from a YAML rule book file. Rules append to the existing
list in file order, so the book's order becomes their precedence.`,
	Run: importFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the rule at a given position",
	Run:   deleteFunc,
}

func init() {
	importCmd.Flags().StringVarP(&root.RuleBookFile, "file", "f", "", "Rule book YAML file (required)")
	_ = importCmd.MarkFlagRequired("file")

	deleteCmd.Flags().IntVarP(&root.RuleIndex, "index", "x", -1, "Zero-based rule position (required)")
	_ = deleteCmd.MarkFlagRequired("index")

	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	tr, _, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	rules := tr.Rules()
	for i, rule := range rules {
		fmt.Printf("%3d  %s\n", i, rule)
	}
	if len(rules) == 0 {
		root.Log.Info("No rules yet, import a rule book with 'spendtrack rules import'")
	}
}

func importFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	rules, err := store.LoadRuleBook(root.RuleBookFile)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read rule book")
		return
	}

	for _, rule := range rules {
		if err := tr.AddRule(rule); err != nil {
			root.Log.WithError(err).Fatal("Failed to add rule")
			return
		}
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.WithField(logging.FieldCount, len(rules)).Info("Imported rules")
}

func deleteFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	if err := tr.DeleteRule(root.RuleIndex); err != nil {
		root.Log.WithError(err).Fatal("Failed to delete rule")
		return
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.Info("Deleted rule")
}
