// Package importcsv handles the CSV import command
package importcsv

import (
	"github.com/spf13/cobra"

	"spendtrack/cmd/root"
	"spendtrack/internal/importer"
	"spendtrack/internal/logging"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV bank export into an account",
	Long: `Import a CSV bank export into an account. Column flags map the export's
headers onto the transaction fields; several description columns may be
given and join with ", ". Each imported transaction runs through transfer
detection and the rule engine.

Example:
  spendtrack import -i export.csv -a Checking --id-column Ref --date-column "Booking Date" --debit-column Debit --credit-column Credit`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputFile, "input", "i", "", "Input CSV file (required)")
	Cmd.Flags().StringVarP(&root.AccountName, "account", "a", "", "Target account name (required)")
	Cmd.Flags().StringVar(&root.IDColumn, "id-column", "", "Column holding the transaction identifier (required)")
	Cmd.Flags().StringVar(&root.DateColumn, "date-column", "", "Column holding the booking date (required)")
	Cmd.Flags().StringVar(&root.PayeeColumn, "payee-column", "", "Column holding the payee")
	Cmd.Flags().StringSliceVar(&root.DescriptionColumns, "description-column", nil, "Column(s) holding the description")
	Cmd.Flags().StringVar(&root.DebitColumn, "debit-column", "", "Column holding debit amounts")
	Cmd.Flags().StringVar(&root.CreditColumn, "credit-column", "", "Column holding credit amounts")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("account")
	_ = Cmd.MarkFlagRequired("id-column")
	_ = Cmd.MarkFlagRequired("date-column")
}

func importFunc(cmd *cobra.Command, args []string) {
	tr, st, err := root.OpenTracker()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load data")
		return
	}

	mapping := importer.ColumnMapping{
		TransactionID: root.IDColumn,
		Date:          root.DateColumn,
		Payee:         root.PayeeColumn,
		Description:   root.DescriptionColumns,
		Debit:         root.DebitColumn,
		Credit:        root.CreditColumn,
	}

	result, err := importer.New(tr, root.Log).ImportFile(root.InputFile, root.AccountName, mapping)
	if err != nil {
		root.Log.WithError(err).Fatal("Import failed")
		return
	}
	if err := root.SaveTracker(tr, st); err != nil {
		root.Log.WithError(err).Fatal("Failed to save data")
		return
	}
	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: root.InputFile},
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
	).Info("Import completed successfully!")
}
