// Package importer turns tabular bank exports into tracked transactions.
// Exports differ per bank, so the caller maps source column headers onto the
// transaction schema; rows then flow through transfer detection and the rule
// engine before landing in the tracker.
package importer

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
	"spendtrack/internal/tracker"
)

// ColumnMapping names the source CSV columns holding each transaction field.
// Description may list several columns; their non-empty values join with
// ", ". Debit or Credit may be left empty when the export lacks the column.
type ColumnMapping struct {
	TransactionID string
	Date          string
	Payee         string
	Description   []string
	Debit         string
	Credit        string
}

// Validate checks the mapping names the columns an import cannot do without.
func (m ColumnMapping) Validate() error {
	if m.TransactionID == "" {
		return fmt.Errorf("column mapping needs a transaction_id column")
	}
	if m.Date == "" {
		return fmt.Errorf("column mapping needs a date column")
	}
	if m.Debit == "" && m.Credit == "" {
		return fmt.Errorf("column mapping needs a debit or credit column")
	}
	return nil
}

// Result summarizes one import run.
type Result struct {
	Imported   int
	Duplicates int
}

// Importer reads CSV exports into a tracker.
type Importer struct {
	tracker *tracker.Tracker
	logger  logging.Logger
}

// New creates an importer writing into the given tracker.
func New(tr *tracker.Tracker, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{tracker: tr, logger: logger}
}

// ImportFile reads the CSV file and adds each row to the named account.
// Every imported transaction runs through the legacy transfer heuristic and
// the rule engine. Rows whose identifier already exists overwrite the stored
// transaction and are counted as duplicates.
func (i *Importer) ImportFile(path, accountName string, mapping ColumnMapping) (Result, error) {
	account, ok := i.tracker.Account(accountName)
	if !ok {
		return Result{}, fmt.Errorf("account %q does not exist", accountName)
	}
	if err := mapping.Validate(); err != nil {
		return Result{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := gocsv.CSVToMaps(file)
	if err != nil {
		return Result{}, fmt.Errorf("error parsing CSV file: %w", err)
	}

	return i.importRows(rows, account, mapping)
}

func (i *Importer) importRows(rows []map[string]string, account models.Account, mapping ColumnMapping) (Result, error) {
	accounts := i.tracker.Accounts()
	rules := i.tracker.Rules()
	engine := i.tracker.Engine()

	var result Result
	for n, row := range rows {
		tx, err := transactionFromRow(row, account, mapping)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", n+1, err)
		}

		engine.DetectTransfer(&tx, accounts)
		if err := engine.Categorize(&tx, rules); err != nil {
			return result, fmt.Errorf("row %d: %w", n+1, err)
		}

		if i.tracker.AddTransaction(tx) {
			result.Duplicates++
		}
		result.Imported++
	}

	i.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: account.Name},
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
	).Info("Imported transactions")
	if result.Duplicates > 0 {
		i.logger.WithField(logging.FieldCount, result.Duplicates).Warn("Duplicate transactions overwritten")
	}
	return result, nil
}

// transactionFromRow builds one transaction from a header-keyed CSV row.
func transactionFromRow(row map[string]string, account models.Account, mapping ColumnMapping) (models.Transaction, error) {
	id, ok := row[mapping.TransactionID]
	if !ok || strings.TrimSpace(id) == "" {
		return models.Transaction{}, fmt.Errorf("missing value for column %q", mapping.TransactionID)
	}
	date, ok := row[mapping.Date]
	if !ok {
		return models.Transaction{}, fmt.Errorf("missing value for column %q", mapping.Date)
	}

	var descriptionParts []string
	for _, column := range mapping.Description {
		if value := strings.TrimSpace(row[column]); value != "" {
			descriptionParts = append(descriptionParts, value)
		}
	}

	debit := decimalColumn(row, mapping.Debit)
	credit := decimalColumn(row, mapping.Credit)

	return models.NewTransaction(
		strings.TrimSpace(id),
		models.NormalizeDate(date),
		strings.TrimSpace(row[mapping.Payee]),
		strings.Join(descriptionParts, ", "),
		debit,
		credit,
		account.Name,
		account.Currency,
	), nil
}

func decimalColumn(row map[string]string, column string) decimal.Decimal {
	if column == "" {
		return decimal.Zero
	}
	return models.ParseAmount(row[column])
}
