package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendtrack/internal/ruleerror"
)

// Categories with fixed meaning to the engine.
const (
	// CategoryOther is assigned when no rule matches a transaction.
	CategoryOther = "Other"
	// CategoryTransfer is forced when a transfer rule matches.
	CategoryTransfer = "Transfer"
)

// Transaction represents one recorded financial movement in an account.
// Debit and credit are always stored as non-negative magnitudes; the sign is
// implied by which of the two is non-zero.
type Transaction struct {
	ID           string          `json:"transaction_id" yaml:"transaction_id"`
	Date         string          `json:"date" yaml:"date"` // ISO 8601
	Payee        string          `json:"payee" yaml:"payee"`
	Description  string          `json:"description" yaml:"description"`
	Debit        decimal.Decimal `json:"debit" yaml:"debit"`
	Credit       decimal.Decimal `json:"credit" yaml:"credit"`
	Account      string          `json:"account" yaml:"account"`
	Currency     Currency        `json:"currency" yaml:"currency"`
	Category     string          `json:"category" yaml:"category"`
	TransferTo   string          `json:"transfer_to" yaml:"transfer_to"`
	TransferFrom string          `json:"transfer_from" yaml:"transfer_from"`
}

// NewTransaction creates a transaction with the debit/credit sign convention
// enforced: both amounts are stored as absolute values. The category defaults
// to CategoryOther until the engine assigns one.
func NewTransaction(id, date, payee, description string, debit, credit decimal.Decimal, account string, currency Currency) Transaction {
	return Transaction{
		ID:          id,
		Date:        date,
		Payee:       payee,
		Description: description,
		Debit:       debit.Abs(),
		Credit:      credit.Abs(),
		Account:     account,
		Currency:    currency,
		Category:    CategoryOther,
	}
}

// Transaction field names as rule conditions refer to them. The names match
// the serialized keys.
const (
	FieldTransactionID = "transaction_id"
	FieldDate          = "date"
	FieldPayee         = "payee"
	FieldDescription   = "description"
	FieldDebit         = "debit"
	FieldCredit        = "credit"
	FieldAccount       = "account"
	FieldCurrency      = "currency"
	FieldCategory      = "category"
	FieldTransferTo    = "transfer_to"
	FieldTransferFrom  = "transfer_from"
)

// FieldNames lists the recognized condition target fields in schema order.
var FieldNames = []string{
	FieldTransactionID,
	FieldDate,
	FieldPayee,
	FieldDescription,
	FieldDebit,
	FieldCredit,
	FieldAccount,
	FieldCurrency,
	FieldCategory,
	FieldTransferTo,
	FieldTransferFrom,
}

// fieldAccessors maps field names to accessors returning the field's string
// representation. Lookup goes through this map instead of reflection so
// unknown fields can be rejected at rule load time.
var fieldAccessors = map[string]func(*Transaction) string{
	FieldTransactionID: func(t *Transaction) string { return t.ID },
	FieldDate:          func(t *Transaction) string { return t.Date },
	FieldPayee:         func(t *Transaction) string { return t.Payee },
	FieldDescription:   func(t *Transaction) string { return t.Description },
	FieldDebit:         func(t *Transaction) string { return t.Debit.String() },
	FieldCredit:        func(t *Transaction) string { return t.Credit.String() },
	FieldAccount:       func(t *Transaction) string { return t.Account },
	FieldCurrency:      func(t *Transaction) string { return string(t.Currency) },
	FieldCategory:      func(t *Transaction) string { return t.Category },
	FieldTransferTo:    func(t *Transaction) string { return t.TransferTo },
	FieldTransferFrom:  func(t *Transaction) string { return t.TransferFrom },
}

// numericFields holds the fields that compare numerically rather than as
// strings.
var numericFields = map[string]func(*Transaction) decimal.Decimal{
	FieldDebit:  func(t *Transaction) decimal.Decimal { return t.Debit },
	FieldCredit: func(t *Transaction) decimal.Decimal { return t.Credit },
}

// KnownField reports whether name is part of the transaction schema.
func KnownField(name string) bool {
	_, ok := fieldAccessors[name]
	return ok
}

// NumericField reports whether name compares numerically.
func NumericField(name string) bool {
	_, ok := numericFields[name]
	return ok
}

// Field returns the string representation of the named field.
func (t *Transaction) Field(name string) (string, error) {
	accessor, ok := fieldAccessors[name]
	if !ok {
		return "", &ruleerror.UnknownFieldError{Field: name}
	}
	return accessor(t), nil
}

// DecimalField returns the named field as a decimal. Only valid for fields
// for which NumericField reports true.
func (t *Transaction) DecimalField(name string) (decimal.Decimal, error) {
	accessor, ok := numericFields[name]
	if !ok {
		return decimal.Zero, &ruleerror.UnknownFieldError{Field: name}
	}
	return accessor(t), nil
}

// ParseAmount parses a string amount to a decimal, tolerating the formats
// seen in bank exports: comma decimal separators, currency codes and symbols,
// and apostrophe thousand separators. Unparseable input yields zero.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.ReplaceAll(amountStr, ",", ".")
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "CHF", "")
	amount = strings.ReplaceAll(amount, "EUR", "")
	amount = strings.ReplaceAll(amount, "USD", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateFormats are the date layouts commonly found in financial exports.
// European day-first layouts come first since ambiguous dates are most often
// Swiss bank data.
var dateFormats = []string{
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	"01/02/2006",
	"January 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"Jan 02, 2006",
}

// NormalizeDate standardizes date strings to ISO 8601 (YYYY-MM-DD). Input
// that cannot be parsed is returned unchanged.
func NormalizeDate(dateStr string) string {
	cleanDate := strings.TrimSpace(dateStr)
	if cleanDate == "" {
		return ""
	}

	if isoDatePattern.MatchString(cleanDate) {
		return cleanDate
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return dateStr
}
