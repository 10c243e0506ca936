package models

import (
	"github.com/shopspring/decimal"
)

// Account is a bank account owned by the user. Its name identifies it within
// the tracker; the IBAN and account number are used by the legacy transfer
// detection heuristic.
type Account struct {
	Name            string          `json:"name" yaml:"name"`
	Bank            string          `json:"bank" yaml:"bank"`
	AccountNumber   string          `json:"account_number" yaml:"account_number"`
	IBAN            string          `json:"iban" yaml:"iban"`
	Currency        Currency        `json:"currency" yaml:"currency"`
	StartingBalance decimal.Decimal `json:"starting_balance" yaml:"starting_balance"`
	Balance         decimal.Decimal `json:"balance" yaml:"balance"`
}

// Valid reports whether the account carries the minimum identifying data.
func (a Account) Valid() bool {
	return a.Name != "" && a.IBAN != ""
}

// ConflictsWith reports whether an account with the same name or IBAN already
// exists in the given collection.
func (a Account) ConflictsWith(accounts map[string]Account) bool {
	for _, existing := range accounts {
		if a.Name == existing.Name || a.IBAN == existing.IBAN {
			return true
		}
	}
	return false
}
