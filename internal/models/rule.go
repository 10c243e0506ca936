package models

import (
	"fmt"
	"reflect"
	"strings"

	"spendtrack/internal/ruleerror"
)

// Relation determines how a condition compares a field against its values.
type Relation string

const (
	RelationContains Relation = "contains"
	RelationEquals   Relation = "is"
	RelationOneOf    Relation = "one of"
)

// Action is what a rule does to a transaction when it applies.
type Action string

const (
	ActionCategorize   Action = "categorize as"
	ActionTransferTo   Action = "transfer to"
	ActionTransferFrom Action = "transfer from"
)

// Operator combines a rule's conditions. Only OperatorAll is implemented;
// OperatorAny is declared in the data model but has never been wired to an
// evaluator, and validation rejects it rather than silently evaluating "all".
type Operator string

const (
	OperatorAny Operator = "any"
	OperatorAll Operator = "all"
)

// Condition is a single field/relation/values comparison within a rule.
type Condition struct {
	Field    string   `json:"field" yaml:"field"`
	Relation Relation `json:"relation" yaml:"relation"`
	Values   []string `json:"values" yaml:"values"`
}

// String returns a display representation of the condition.
func (c Condition) String() string {
	return fmt.Sprintf("%s %s [%s]", c.Field, c.Relation, strings.Join(c.Values, ", "))
}

// Validate checks the condition against the transaction schema.
func (c Condition) Validate() error {
	if !KnownField(c.Field) {
		return &ruleerror.UnknownFieldError{Field: c.Field}
	}
	switch c.Relation {
	case RelationContains, RelationOneOf:
	case RelationEquals:
		if len(c.Values) != 1 {
			return &ruleerror.InvalidRuleError{
				Reason: fmt.Sprintf("%q condition on %q needs exactly one value, got %d", RelationEquals, c.Field, len(c.Values)),
			}
		}
	default:
		return &ruleerror.UnknownRelationError{Relation: string(c.Relation)}
	}
	return nil
}

// Rule is a user-defined predicate plus an action. A rule applies when all of
// its conditions hold; rules are kept in insertion order and the first
// matching rule wins, so the ordered slice is the only precedence mechanism.
type Rule struct {
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Action     Action      `json:"action" yaml:"action"`
	Category   string      `json:"category" yaml:"category"`
	Operator   Operator    `json:"operator" yaml:"operator"`
}

// String returns a display representation of the rule.
func (r Rule) String() string {
	conditions := make([]string, len(r.Conditions))
	for i, condition := range r.Conditions {
		conditions[i] = condition.String()
	}
	return fmt.Sprintf("Rule: IF %s THEN %s %s", strings.Join(conditions, ", "), r.Action, r.Category)
}

// Validate checks the rule upfront so misconfiguration surfaces at load time
// instead of during evaluation. A rule with zero conditions is legal and
// matches every transaction.
func (r Rule) Validate() error {
	switch r.Action {
	case ActionCategorize, ActionTransferTo, ActionTransferFrom:
	default:
		return &ruleerror.InvalidRuleError{Reason: fmt.Sprintf("unknown action %q", r.Action)}
	}
	switch r.Operator {
	case OperatorAll, "":
	case OperatorAny:
		return &ruleerror.UnsupportedOperatorError{Operator: string(r.Operator)}
	default:
		return &ruleerror.InvalidRuleError{Reason: fmt.Sprintf("unknown operator %q", r.Operator)}
	}
	for _, condition := range r.Conditions {
		if err := condition.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether two rules are identical. Rules are never edited in
// place; editing is delete plus re-add, so value equality is what duplicate
// detection needs.
func (r Rule) Equal(other Rule) bool {
	return reflect.DeepEqual(r, other)
}
