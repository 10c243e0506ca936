// Package engine implements the rule-based transaction categorization engine.
// It evaluates an ordered rule list against transactions and assigns the
// category and transfer linkage in place.
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
	"spendtrack/internal/ruleerror"
)

// Engine evaluates categorization rules. It borrows read access to the rule
// list and mutates only the transaction handed to it, so a single instance is
// safe to share across batch runs.
type Engine struct {
	logger logging.Logger
}

// New creates an Engine. A nil logger falls back to the default.
func New(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{logger: logger}
}

// Categorize assigns the transaction's category and transfer linkage from the
// first matching rule in stored order. When no rule matches, the category
// falls back to models.CategoryOther exactly once at the end; earlier
// non-matching rules never reset it. Errors from malformed rules propagate
// and leave the transaction's category untouched.
func (e *Engine) Categorize(tx *models.Transaction, rules []models.Rule) error {
	for _, rule := range rules {
		applies, err := e.ruleApplies(tx, rule)
		if err != nil {
			return err
		}
		if !applies {
			continue
		}

		switch rule.Action {
		case models.ActionTransferTo:
			tx.TransferTo = rule.Category
			tx.Category = models.CategoryTransfer
		case models.ActionTransferFrom:
			tx.TransferFrom = rule.Category
			tx.Category = models.CategoryTransfer
		default:
			tx.Category = rule.Category
		}

		e.logger.WithFields(
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			logging.Field{Key: logging.FieldRule, Value: rule.String()},
			logging.Field{Key: logging.FieldCategory, Value: tx.Category},
		).Debug("Rule matched transaction")
		return nil
	}

	tx.Category = models.CategoryOther
	return nil
}

// CategorizeAll runs Categorize over every transaction with the same,
// unchanged rule list. Transaction order does not affect the outcome.
func (e *Engine) CategorizeAll(txs []*models.Transaction, rules []models.Rule) error {
	for _, tx := range txs {
		if err := e.Categorize(tx, rules); err != nil {
			return err
		}
	}
	return nil
}

// ruleApplies reports whether all conditions of the rule hold for the
// transaction. An empty condition list applies unconditionally. The declared
// "any" operator has no evaluator; rule validation rejects it before rules
// get here.
func (e *Engine) ruleApplies(tx *models.Transaction, rule models.Rule) (bool, error) {
	for _, condition := range rule.Conditions {
		holds, err := e.checkCondition(tx, condition)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}
	return true, nil
}

// checkCondition decides whether one condition holds for one transaction.
func (e *Engine) checkCondition(tx *models.Transaction, condition models.Condition) (bool, error) {
	fieldValue, err := tx.Field(condition.Field)
	if err != nil {
		return false, err
	}

	switch condition.Relation {
	case models.RelationContains:
		// Case-insensitive: both sides are lower-cased before comparing.
		fieldLower := strings.ToLower(fieldValue)
		for _, value := range condition.Values {
			if strings.Contains(fieldLower, strings.ToLower(value)) {
				return true, nil
			}
		}
		return false, nil

	case models.RelationEquals:
		if len(condition.Values) != 1 {
			return false, &ruleerror.InvalidRuleError{
				Reason: fmt.Sprintf("%q condition on %q needs exactly one value, got %d", models.RelationEquals, condition.Field, len(condition.Values)),
			}
		}
		return e.fieldEquals(tx, condition.Field, fieldValue, condition.Values[0])

	case models.RelationOneOf:
		// Empty value lists never match.
		for _, value := range condition.Values {
			if fieldValue == value {
				return true, nil
			}
		}
		return false, nil
	}

	return false, &ruleerror.UnknownRelationError{Relation: string(condition.Relation)}
}

// fieldEquals compares type-aware: numeric fields compare as decimals so
// "15.99" and "15.990" are equal, everything else compares as exact strings.
func (e *Engine) fieldEquals(tx *models.Transaction, field, fieldValue, want string) (bool, error) {
	if !models.NumericField(field) {
		return fieldValue == want, nil
	}

	fieldDec, err := tx.DecimalField(field)
	if err != nil {
		return false, err
	}
	wantDec, err := decimal.NewFromString(want)
	if err != nil {
		return false, &ruleerror.InvalidRuleError{
			Reason: fmt.Sprintf("non-numeric value %q compared against numeric field %q", want, field),
		}
	}
	return fieldDec.Equal(wantDec), nil
}
