// Package tracker owns the user's accounts, the ordered rule list, and the
// transactions, and runs bulk categorization over them. It replaces the
// session-scoped state of earlier designs with an explicitly owned object.
package tracker

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"spendtrack/internal/engine"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

// Config holds tracker-level settings.
type Config struct {
	// DefaultCurrency is the reporting currency total balances convert to.
	DefaultCurrency models.Currency
}

// Tracker is the root domain object. It is not safe for concurrent use;
// callers own the synchronization, matching the single-threaded evaluation
// model of the engine.
type Tracker struct {
	accounts     map[string]models.Account
	rules        []models.Rule
	transactions map[string]models.Transaction
	engine       *engine.Engine
	logger       logging.Logger
	config       Config
}

// New creates an empty tracker.
func New(cfg Config, logger logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = models.CurrencyCHF
	}
	return &Tracker{
		accounts:     make(map[string]models.Account),
		transactions: make(map[string]models.Transaction),
		engine:       engine.New(logger),
		logger:       logger,
		config:       cfg,
	}
}

// Engine returns the categorization engine the tracker uses.
func (t *Tracker) Engine() *engine.Engine {
	return t.engine
}

// AddAccount registers an account. Duplicate names or IBANs and invalid
// accounts are rejected.
func (t *Tracker) AddAccount(account models.Account) error {
	if account.ConflictsWith(t.accounts) {
		return fmt.Errorf("account %q already exists", account.Name)
	}
	if !account.Valid() {
		return fmt.Errorf("account %q is not valid: name and IBAN are required", account.Name)
	}
	t.accounts[account.Name] = account
	t.logger.WithField(logging.FieldAccount, account.Name).Debug("Added account")
	return nil
}

// DeleteAccount removes an account by name.
func (t *Tracker) DeleteAccount(name string) error {
	if _, ok := t.accounts[name]; !ok {
		return fmt.Errorf("account %q does not exist", name)
	}
	delete(t.accounts, name)
	t.logger.WithField(logging.FieldAccount, name).Debug("Deleted account")
	return nil
}

// Account looks up an account by name.
func (t *Tracker) Account(name string) (models.Account, bool) {
	account, ok := t.accounts[name]
	return account, ok
}

// Accounts returns a copy of the account collection keyed by name.
func (t *Tracker) Accounts() map[string]models.Account {
	accounts := make(map[string]models.Account, len(t.accounts))
	for name, account := range t.accounts {
		accounts[name] = account
	}
	return accounts
}

// AddRule appends a rule to the ordered list. The rule is validated upfront
// so a misconfigured rule fails here rather than during evaluation.
// Duplicates are rejected; rules are never edited in place.
func (t *Tracker) AddRule(rule models.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	for _, existing := range t.rules {
		if rule.Equal(existing) {
			return fmt.Errorf("rule already exists: %s", rule)
		}
	}
	t.rules = append(t.rules, rule)
	t.logger.WithField(logging.FieldRule, rule.String()).Debug("Added rule")
	return nil
}

// DeleteRule removes the rule at the given position in the ordered list.
func (t *Tracker) DeleteRule(index int) error {
	if index < 0 || index >= len(t.rules) {
		return fmt.Errorf("no rule at index %d", index)
	}
	rule := t.rules[index]
	t.rules = append(t.rules[:index], t.rules[index+1:]...)
	t.logger.WithField(logging.FieldRule, rule.String()).Debug("Deleted rule")
	return nil
}

// Rules returns a copy of the rule list in insertion order.
func (t *Tracker) Rules() []models.Rule {
	return append([]models.Rule{}, t.rules...)
}

// AddTransaction stores a transaction keyed by its identifier and reports
// whether an existing transaction was overwritten.
func (t *Tracker) AddTransaction(tx models.Transaction) bool {
	_, replaced := t.transactions[tx.ID]
	t.transactions[tx.ID] = tx
	return replaced
}

// Transactions returns the transactions of one account, or of all accounts
// when name is empty, sorted by date then identifier.
func (t *Tracker) Transactions(name string) ([]models.Transaction, error) {
	if name != "" {
		if _, ok := t.accounts[name]; !ok {
			return nil, fmt.Errorf("account %q does not exist", name)
		}
	}

	txs := make([]models.Transaction, 0, len(t.transactions))
	for _, tx := range t.transactions {
		if name == "" || tx.Account == name {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date < txs[j].Date
		}
		return txs[i].ID < txs[j].ID
	})
	return txs, nil
}

// CategorizeAll recomputes every transaction's category from scratch against
// the current rule list. The pass is idempotent.
func (t *Tracker) CategorizeAll() error {
	for id, tx := range t.transactions {
		if err := t.engine.Categorize(&tx, t.rules); err != nil {
			return err
		}
		t.transactions[id] = tx
	}
	t.logger.WithField(logging.FieldCount, len(t.transactions)).Info("Categorized transactions")
	return nil
}

// Balance sums all account balances converted to the default currency.
func (t *Tracker) Balance() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, account := range t.accounts {
		converted, err := models.Convert(account.Balance, account.Currency, t.config.DefaultCurrency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("account %q: %w", account.Name, err)
		}
		total = total.Add(converted)
	}
	return total, nil
}

// Load replaces the tracker's contents from persisted data. Accounts and
// rules go through the same validation as interactive adds.
func (t *Tracker) Load(accounts map[string]models.Account, rules []models.Rule, transactions map[string]models.Transaction) error {
	t.accounts = make(map[string]models.Account, len(accounts))
	t.rules = nil
	t.transactions = make(map[string]models.Transaction, len(transactions))

	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := t.AddAccount(accounts[name]); err != nil {
			return err
		}
	}
	for _, rule := range rules {
		if err := t.AddRule(rule); err != nil {
			return err
		}
	}
	for id, tx := range transactions {
		t.transactions[id] = tx
	}
	return nil
}
