package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Rule names the script rule a statement broke.
type Rule string

const (
	RuleUnknownMember      Rule = "unknown member"
	RuleBarePureCall       Rule = "pure function used as a statement"
	RuleImperativeMutation Rule = "imperative mutation of a property"
	RuleNotAssignable      Rule = "not assignable"
	RuleNotCallable        Rule = "not callable"
	RuleInvalidExpression  Rule = "invalid expression"
	RuleTypeMismatch       Rule = "type mismatch"
	RuleArity              Rule = "wrong number of arguments"
	RuleMissingBody        Rule = "missing configuration body"
)

// SemanticsError is a statement the schema forbids. Nothing the statement
// would have changed has been changed.
type SemanticsError struct {
	Type   string
	Member string
	Rule   Rule
	Detail string
	Range  hcl.Range
	Cause  error
}

func (e *SemanticsError) Error() string {
	msg := fmt.Sprintf("script error in '%s', member '%s': %s: %s", e.Type, e.Member, e.Rule, e.Detail)
	if e.Range.Filename != "" {
		return e.Range.String() + ": " + msg
	}
	return msg
}

func (e *SemanticsError) Unwrap() error {
	return e.Cause
}

func semanticsError(typeName, member string, rule Rule, rng hcl.Range, format string, args ...any) *SemanticsError {
	return &SemanticsError{
		Type:   typeName,
		Member: member,
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
		Range:  rng,
	}
}
