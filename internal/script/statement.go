package script

import "github.com/hashicorp/hcl/v2"

// Statement is one script statement.
type Statement interface {
	statement()
	// SourceRange reports where the statement came from, if known.
	SourceRange() hcl.Range
}

// Assign is `Name = Expr`.
type Assign struct {
	Name  string
	Expr  hcl.Expression
	Range hcl.Range
}

// Invoke is a call of Name with positional Args and an optional body. A
// dotted Name such as `id.set` calls a method on a member.
type Invoke struct {
	Name    string
	Args    []hcl.Expression
	Body    []Statement
	HasBody bool
	Range   hcl.Range
}

func (Assign) statement() {}
func (Invoke) statement() {}

func (s Assign) SourceRange() hcl.Range { return s.Range }
func (s Invoke) SourceRange() hcl.Range { return s.Range }
