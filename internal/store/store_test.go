package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), &logging.MockLogger{})
}

func TestMissingFilesLoadEmpty(t *testing.T) {
	s := newTestStore(t)

	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	transactions, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)

	rules, err := s.LoadRules()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestAccountsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	accounts := map[string]models.Account{
		"Checking": {
			Name:            "Checking",
			Bank:            "BCV",
			IBAN:            "CH9300762011623852957",
			Currency:        models.CurrencyCHF,
			StartingBalance: decimal.RequireFromString("100"),
			Balance:         decimal.RequireFromString("250.50"),
		},
	}

	require.NoError(t, s.SaveAccounts(accounts))

	loaded, err := s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "BCV", loaded["Checking"].Bank)
	assert.True(t, loaded["Checking"].Balance.Equal(decimal.RequireFromString("250.50")))
}

func TestTransactionsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	tx := models.NewTransaction("tx-1", "2024-03-15", "Coop", "weekly shop",
		decimal.RequireFromString("42.50"), decimal.Zero, "Checking", models.CurrencyCHF)
	tx.Category = "Groceries"

	require.NoError(t, s.SaveTransactions(map[string]models.Transaction{tx.ID: tx}))

	loaded, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Groceries", loaded["tx-1"].Category)
	assert.True(t, loaded["tx-1"].Debit.Equal(tx.Debit))
}

func TestRulesRoundTrip_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	rules := []models.Rule{
		{
			Conditions: []models.Condition{
				{Field: models.FieldPayee, Relation: models.RelationContains, Values: []string{"coop"}},
			},
			Action:   models.ActionCategorize,
			Category: "Groceries",
			Operator: models.OperatorAll,
		},
		{
			Action:   models.ActionCategorize,
			Category: "Catch All",
			Operator: models.OperatorAll,
		},
	}

	require.NoError(t, s.SaveRules(rules))

	loaded, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Groceries", loaded[0].Category, "insertion order is the precedence and must survive persistence")
	assert.Equal(t, "Catch All", loaded[1].Category)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), RulesFile), []byte("{not json"), 0600))

	_, err := s.LoadRules()
	assert.Error(t, err)
}

func TestLoadRuleBook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	book := `rules:
  - conditions:
      - field: description
        relation: contains
        values: [netflix]
    action: categorize as
    category: Subscriptions
    operator: all
  - conditions:
      - field: payee
        relation: is
        values: [Jane Doe]
    action: transfer to
    category: Savings
    operator: all
`
	require.NoError(t, os.WriteFile(path, []byte(book), 0600))

	rules, err := LoadRuleBook(path)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, models.ActionCategorize, rules[0].Action)
	assert.Equal(t, models.ActionTransferTo, rules[1].Action)
}

func TestLoadRuleBook_RejectsInvalidRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	book := `rules:
  - conditions:
      - field: memo
        relation: contains
        values: [x]
    action: categorize as
    category: Broken
    operator: all
`
	require.NoError(t, os.WriteFile(path, []byte(book), 0600))

	_, err := LoadRuleBook(path)
	assert.Error(t, err)
}
