// Package store provides functionality for storing and retrieving the
// tracker's data. Accounts, transactions and rules persist as JSON files in
// a data directory; a YAML rule book can additionally seed the rule list.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

// Data file names inside the data directory.
const (
	AccountsFile     = "accounts.json"
	TransactionsFile = "transactions.json"
	RulesFile        = "rules.json"
)

// File permissions for the data directory and its files.
const (
	permDirectory = 0750
	permDataFile  = 0600
)

// Store reads and writes the tracker's data files. A missing file loads as
// empty rather than failing, so a fresh data directory just works.
type Store struct {
	dir    string
	logger logging.Logger
}

// New creates a store rooted at dir.
func New(dir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// LoadAccounts loads the account collection keyed by account name.
func (s *Store) LoadAccounts() (map[string]models.Account, error) {
	accounts := make(map[string]models.Account)
	if err := s.loadJSON(AccountsFile, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAccounts writes the account collection.
func (s *Store) SaveAccounts(accounts map[string]models.Account) error {
	return s.saveJSON(AccountsFile, accounts)
}

// LoadTransactions loads the transaction collection keyed by identifier.
func (s *Store) LoadTransactions() (map[string]models.Transaction, error) {
	transactions := make(map[string]models.Transaction)
	if err := s.loadJSON(TransactionsFile, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SaveTransactions writes the transaction collection.
func (s *Store) SaveTransactions(transactions map[string]models.Transaction) error {
	return s.saveJSON(TransactionsFile, transactions)
}

// LoadRules loads the ordered rule list. The slice order is the rule
// precedence, so the file stores a JSON array, never an object.
func (s *Store) LoadRules() ([]models.Rule, error) {
	var rules []models.Rule
	if err := s.loadJSON(RulesFile, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveRules writes the ordered rule list.
func (s *Store) SaveRules(rules []models.Rule) error {
	if rules == nil {
		rules = []models.Rule{}
	}
	return s.saveJSON(RulesFile, rules)
}

// loadJSON reads a data file into out. A missing file leaves out untouched.
func (s *Store) loadJSON(filename string, out interface{}) error {
	path := filepath.Join(s.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, path).Debug("Data file not found, starting empty")
			return nil
		}
		return fmt.Errorf("error reading %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing %s: %w", filename, err)
	}
	return nil
}

// saveJSON writes a data file, creating the data directory if needed.
func (s *Store) saveJSON(filename string, in interface{}) error {
	if err := os.MkdirAll(s.dir, permDirectory); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filename, err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, permDataFile); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	s.logger.WithField(logging.FieldFile, path).Debug("Saved data file")
	return nil
}

// ruleBook is the YAML layout of a rule book file.
type ruleBook struct {
	Rules []models.Rule `yaml:"rules"`
}

// LoadRuleBook reads rules from a YAML file. Rule books let users maintain
// their rule list in an editable config file and import it in one go; the
// order in the file becomes the rule precedence.
func LoadRuleBook(path string) ([]models.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rule book: %w", err)
	}

	var book ruleBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("error parsing rule book: %w", err)
	}

	for _, rule := range book.Rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}
	return book.Rules, nil
}
