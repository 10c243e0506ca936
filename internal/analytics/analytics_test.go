package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/models"
)

func sampleTransactions() []models.Transaction {
	groceries := models.NewTransaction("1", "2024-01-05", "Coop", "shop",
		decimal.RequireFromString("50"), decimal.Zero, "Checking", models.CurrencyCHF)
	groceries.Category = "Groceries"

	salary := models.NewTransaction("2", "2024-01-25", "Employer", "salary",
		decimal.Zero, decimal.RequireFromString("5000"), "Checking", models.CurrencyCHF)
	salary.Category = "Salary"

	transfer := models.NewTransaction("3", "2024-02-01", "Me", "to savings",
		decimal.RequireFromString("200"), decimal.Zero, "Checking", models.CurrencyCHF)
	transfer.Category = models.CategoryTransfer
	transfer.TransferTo = "Savings"

	dining := models.NewTransaction("4", "2024-02-10", "Pizzeria", "dinner",
		decimal.RequireFromString("35"), decimal.Zero, "Card", models.CurrencyCHF)
	dining.Category = "Restaurants"

	return []models.Transaction{groceries, salary, transfer, dining}
}

func TestFilterByType(t *testing.T) {
	txs := sampleTransactions()

	tests := []struct {
		transactionType TransactionType
		wantIDs         []string
	}{
		{TypeExpense, []string{"1", "4"}},
		{TypeIncome, []string{"2"}},
		{TypeTransfer, []string{"3"}},
		{TypeAll, []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.transactionType), func(t *testing.T) {
			filtered, err := FilterByType(txs, tt.transactionType)
			require.NoError(t, err)

			var ids []string
			for _, tx := range filtered {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByType_Unknown(t *testing.T) {
	_, err := FilterByType(sampleTransactions(), "Spending")
	assert.Error(t, err)
}

func TestFilterByDateRange(t *testing.T) {
	filtered := FilterByDateRange(sampleTransactions(), "2024-01-01", "2024-01-31")

	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "2", filtered[1].ID)
}

func TestTotals_ExpenseByCategory(t *testing.T) {
	totals, err := Totals(sampleTransactions(), TypeExpense, GroupByCategory)

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.True(t, totals["Groceries"].Equal(decimal.RequireFromString("50")))
	assert.True(t, totals["Restaurants"].Equal(decimal.RequireFromString("35")))
	_, hasTransfer := totals[models.CategoryTransfer]
	assert.False(t, hasTransfer, "transfers are not expenses")
}

func TestTotals_AllByAccount(t *testing.T) {
	totals, err := Totals(sampleTransactions(), TypeAll, GroupByAccount)

	require.NoError(t, err)
	assert.True(t, totals["Checking"].Equal(decimal.RequireFromString("4750")), "got %s", totals["Checking"])
	assert.True(t, totals["Card"].Equal(decimal.RequireFromString("-35")))
}

func TestTotals_UnknownGrouping(t *testing.T) {
	_, err := Totals(sampleTransactions(), TypeAll, "Payee")
	assert.Error(t, err)
}
