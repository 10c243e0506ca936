// Package analytics provides the aggregation helpers behind balance and
// spending reports: transaction type filters, date-range filtering, and
// grouped totals.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"spendtrack/internal/models"
)

// TransactionType partitions transactions for reporting. Transfers between
// the user's own accounts are neither income nor expense.
type TransactionType string

const (
	TypeIncome   TransactionType = "Income"
	TypeExpense  TransactionType = "Expense"
	TypeTransfer TransactionType = "Transfer"
	TypeAll      TransactionType = "All"
)

// GroupBy selects the key grouped totals aggregate on.
type GroupBy string

const (
	GroupByCategory GroupBy = "Category"
	GroupByAccount  GroupBy = "Account"
)

// FilterByType returns the transactions of the given type.
func FilterByType(txs []models.Transaction, transactionType TransactionType) ([]models.Transaction, error) {
	var filtered []models.Transaction
	switch transactionType {
	case TypeExpense:
		for _, tx := range txs {
			if tx.Debit.IsPositive() && tx.Category != models.CategoryTransfer {
				filtered = append(filtered, tx)
			}
		}
	case TypeIncome:
		for _, tx := range txs {
			if tx.Credit.IsPositive() && tx.Category != models.CategoryTransfer {
				filtered = append(filtered, tx)
			}
		}
	case TypeTransfer:
		for _, tx := range txs {
			if tx.Category == models.CategoryTransfer {
				filtered = append(filtered, tx)
			}
		}
	case TypeAll:
		filtered = append(filtered, txs...)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", transactionType)
	}
	return filtered, nil
}

// FilterByDateRange returns the transactions dated within [start, end].
// Dates are ISO 8601 strings, so lexicographic comparison is chronological.
func FilterByDateRange(txs []models.Transaction, start, end string) []models.Transaction {
	var filtered []models.Transaction
	for _, tx := range txs {
		if tx.Date >= start && tx.Date <= end {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Totals sums the transactions of the given type grouped by category or
// account. Expenses sum debits, income sums credits, everything else sums the
// net credit minus debit.
func Totals(txs []models.Transaction, transactionType TransactionType, by GroupBy) (map[string]decimal.Decimal, error) {
	filtered, err := FilterByType(txs, transactionType)
	if err != nil {
		return nil, err
	}

	key, err := groupKey(by)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, tx := range filtered {
		totals[key(tx)] = totals[key(tx)].Add(amountFor(tx, transactionType))
	}
	return totals, nil
}

func groupKey(by GroupBy) (func(models.Transaction) string, error) {
	switch by {
	case GroupByCategory:
		return func(tx models.Transaction) string { return tx.Category }, nil
	case GroupByAccount:
		return func(tx models.Transaction) string { return tx.Account }, nil
	}
	return nil, fmt.Errorf("unknown grouping %q", by)
}

func amountFor(tx models.Transaction, transactionType TransactionType) decimal.Decimal {
	switch transactionType {
	case TypeExpense:
		return tx.Debit
	case TypeIncome:
		return tx.Credit
	}
	return tx.Credit.Sub(tx.Debit)
}
