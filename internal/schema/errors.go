package schema

import "fmt"

// DefinitionRule names the declaration rule a node type violated.
type DefinitionRule string

const (
	RuleAmbiguousMarkers      DefinitionRule = "ambiguous markers"
	RuleIncompatibleSignature DefinitionRule = "incompatible signature"
	RuleMissingBinding        DefinitionRule = "missing binding"
	RuleDuplicateMember       DefinitionRule = "duplicate member"
	RuleUnknownType           DefinitionRule = "unknown type"
	RuleInvisibleValueType    DefinitionRule = "value type not schema-visible"
)

// DefinitionError is a defect in how a node type declares its members. It is
// found while building the schema and is fatal: no script may run against a
// type that failed to build.
type DefinitionError struct {
	Type   string
	Member string
	Rule   DefinitionRule
	Detail string
}

func (e *DefinitionError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("schema definition error in type '%s': %s: %s", e.Type, e.Rule, e.Detail)
	}
	return fmt.Sprintf("schema definition error in type '%s', member '%s': %s: %s", e.Type, e.Member, e.Rule, e.Detail)
}

func definitionError(typeName, member string, rule DefinitionRule, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Type:   typeName,
		Member: member,
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
	}
}
