// Package ruleerror defines the error types raised while evaluating
// categorization rules. All of them indicate a misconfigured rule and
// propagate to the caller; there is no skip-and-continue mode.
package ruleerror

import "fmt"

// UnknownFieldError indicates a condition references a field that is not part
// of the transaction schema.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown transaction field %q", e.Field)
}

// InvalidRuleError indicates a rule is structurally invalid, e.g. an "is"
// condition without exactly one comparison value.
type InvalidRuleError struct {
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule: %s", e.Reason)
}

// UnknownRelationError indicates a condition uses a relation outside the
// recognized set (contains, is, one of).
type UnknownRelationError struct {
	Relation string
}

func (e *UnknownRelationError) Error() string {
	return fmt.Sprintf("unknown relation %q", e.Relation)
}

// UnsupportedOperatorError indicates a rule declares an operator the
// evaluator does not implement. Only "all" is supported; "any" is declared in
// the data model but has never been wired up.
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported rule operator %q (only \"all\" is implemented)", e.Operator)
}
