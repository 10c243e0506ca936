package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
	"spendtrack/internal/tracker"
)

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	tr := tracker.New(tracker.Config{DefaultCurrency: models.CurrencyCHF}, &logging.MockLogger{})
	require.NoError(t, tr.AddAccount(models.Account{
		Name:     "Checking",
		IBAN:     "CH9300762011623852957",
		Currency: models.CurrencyCHF,
	}))
	require.NoError(t, tr.AddAccount(models.Account{
		Name:          "Savings",
		IBAN:          "CH5604835012345678009",
		AccountNumber: "12345678009",
		Currency:      models.CurrencyCHF,
	}))
	return tr
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func bankMapping() ColumnMapping {
	return ColumnMapping{
		TransactionID: "Ref",
		Date:          "Booking Date",
		Payee:         "Counterparty",
		Description:   []string{"Text 1", "Text 2"},
		Debit:         "Debit",
		Credit:        "Credit",
	}
}

func TestImportFile(t *testing.T) {
	tr := newTestTracker(t)
	require.NoError(t, tr.AddRule(models.Rule{
		Conditions: []models.Condition{
			{Field: models.FieldDescription, Relation: models.RelationContains, Values: []string{"netflix"}},
		},
		Action:   models.ActionCategorize,
		Category: "Subscriptions",
		Operator: models.OperatorAll,
	}))

	csv := `Ref,Booking Date,Counterparty,Text 1,Text 2,Debit,Credit
t1,15.03.2024,NETFLIX,NETFLIX.COM,monthly,-15.99,
t2,16.03.2024,Employer,Salary March,,,"5'000.00"
t3,17.03.2024,Me,Transfer to CH5604835012345678009,,200.00,
`
	path := writeCSV(t, csv)

	result, err := New(tr, &logging.MockLogger{}).ImportFile(path, "Checking", bankMapping())

	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 3}, result)

	txs, err := tr.Transactions("Checking")
	require.NoError(t, err)
	require.Len(t, txs, 3)

	netflix := txs[0]
	assert.Equal(t, "2024-03-15", netflix.Date, "dates normalize to ISO 8601")
	assert.Equal(t, "NETFLIX.COM, monthly", netflix.Description)
	assert.Equal(t, "15.99", netflix.Debit.String(), "amounts import as magnitudes")
	assert.Equal(t, "Subscriptions", netflix.Category)

	salary := txs[1]
	assert.Equal(t, "5000", salary.Credit.String(), "thousand separators are tolerated")
	assert.True(t, salary.Debit.IsZero())
	assert.Equal(t, models.CategoryOther, salary.Category)

	transfer := txs[2]
	assert.Equal(t, "Savings", transfer.TransferTo, "IBAN heuristic marks the transfer")
	assert.Equal(t, "Checking", transfer.TransferFrom)
}

func TestImportFile_CountsDuplicates(t *testing.T) {
	tr := newTestTracker(t)
	csv := `Ref,Booking Date,Counterparty,Text 1,Text 2,Debit,Credit
t1,15.03.2024,Coop,weekly shop,,42.50,
t1,15.03.2024,Coop,weekly shop,,42.50,
`
	path := writeCSV(t, csv)

	result, err := New(tr, &logging.MockLogger{}).ImportFile(path, "Checking", bankMapping())

	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2, Duplicates: 1}, result)

	txs, err := tr.Transactions("Checking")
	require.NoError(t, err)
	assert.Len(t, txs, 1, "the duplicate overwrote the first row")
}

func TestImportFile_UnknownAccount(t *testing.T) {
	tr := newTestTracker(t)
	path := writeCSV(t, "Ref,Booking Date,Debit\n")

	_, err := New(tr, &logging.MockLogger{}).ImportFile(path, "Missing", bankMapping())

	assert.Error(t, err)
}

func TestImportFile_MissingIDColumn(t *testing.T) {
	tr := newTestTracker(t)
	csv := `Booking Date,Counterparty,Text 1,Text 2,Debit,Credit
15.03.2024,Coop,shop,,42.50,
`
	path := writeCSV(t, csv)

	_, err := New(tr, &logging.MockLogger{}).ImportFile(path, "Checking", bankMapping())

	assert.Error(t, err)
}

func TestColumnMapping_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mapping ColumnMapping
		wantErr bool
	}{
		{"valid", bankMapping(), false},
		{"debit only", ColumnMapping{TransactionID: "Ref", Date: "Date", Debit: "Debit"}, false},
		{"no id", ColumnMapping{Date: "Date", Debit: "Debit"}, true},
		{"no date", ColumnMapping{TransactionID: "Ref", Debit: "Debit"}, true},
		{"no amounts", ColumnMapping{TransactionID: "Ref", Date: "Date"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
