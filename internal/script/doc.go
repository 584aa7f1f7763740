// Package script applies restricted script statements to a configuration
// node, enforcing the schema built by package schema.
//
// The statement model is deliberately small. An Assign replaces the whole
// value of an assignable property. An Invoke calls a configuring or adding
// function with a nested body of statements. Expressions are HCL
// expressions, evaluated with the pure functions visible in the current
// scope and in every enclosing one.
//
// Each statement is planned before it is applied. Planning resolves every
// name, evaluates every expression and checks every value, including those
// of nested bodies, so a statement that breaks a rule is rejected before it
// can mutate anything. Statements that were applied earlier stay applied.
package script
