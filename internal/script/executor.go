package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/nodepath"
	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Executor runs statements against nodes using the schemas of a registry.
type Executor struct {
	schemas *schema.Registry
}

// NewExecutor returns an executor backed by schemas.
func NewExecutor(schemas *schema.Registry) *Executor {
	return &Executor{schemas: schemas}
}

// Execute plans and applies stmts one at a time against root, stopping at
// the first error.
func (x *Executor) Execute(ctx context.Context, root object.Node, path nodepath.Path, stmts []Statement) error {
	logger := ctxlog.FromContext(ctx)

	typ, err := x.schemas.Type(ctx, root.NodeType())
	if err != nil {
		return err
	}
	sc := &scope{typ: typ}

	for _, stmt := range stmts {
		o, err := x.plan(ctx, sc, stmt)
		if err != nil {
			logger.Warn("Rejected script statement.", "error", err)
			return err
		}
		if err := o.apply(ctx, root, path); err != nil {
			return fmt.Errorf("applying statement at %s: %w", stmt.SourceRange(), err)
		}
	}
	logger.Debug("Script applied.", "type", typ.Name(), "statements", len(stmts))
	return nil
}

// Check plans stmts without applying any of them.
func (x *Executor) Check(ctx context.Context, typeName string, stmts []Statement) error {
	typ, err := x.schemas.Type(ctx, typeName)
	if err != nil {
		return err
	}
	sc := &scope{typ: typ}
	for _, stmt := range stmts {
		if _, err := x.plan(ctx, sc, stmt); err != nil {
			return err
		}
	}
	return nil
}

// scope is the node type statements are resolved against, plus the scopes
// enclosing it.
type scope struct {
	parent *scope
	typ    *schema.Type
}

func (s *scope) child(typ *schema.Type) *scope {
	return &scope{parent: s, typ: typ}
}

// functions returns the pure functions usable in expressions, inner scopes
// shadowing outer ones.
func (s *scope) functions() map[string]function.Function {
	fns := make(map[string]function.Function)
	for sc := s; sc != nil; sc = sc.parent {
		for _, e := range sc.typ.PureFunctions() {
			if _, shadowed := fns[e.Name]; !shadowed {
				fns[e.Name] = *e.Binding.Func
			}
		}
	}
	return fns
}

// pure finds the pure function name resolves to, with the same shadowing
// as functions.
func (s *scope) pure(name string) (schema.PureFunction, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		for _, e := range sc.typ.PureFunctions() {
			if e.Name == name {
				pf, ok := e.Category.(schema.PureFunction)
				return pf, ok
			}
		}
	}
	return schema.PureFunction{}, false
}

func (x *Executor) plan(ctx context.Context, sc *scope, stmt Statement) (op, error) {
	switch s := stmt.(type) {
	case Assign:
		return x.planAssign(sc, s)
	case Invoke:
		return x.planInvoke(ctx, sc, s)
	default:
		return nil, fmt.Errorf("unsupported statement %T", stmt)
	}
}

func (x *Executor) planAssign(sc *scope, s Assign) (op, error) {
	entry, err := lookup(sc, s.Name, s.Range)
	if err != nil {
		return nil, err
	}
	prop, ok := entry.Category.(schema.AssignableProperty)
	if !ok {
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleNotAssignable, s.Range,
			"'%s' is a %s; only assignable properties accept '='", s.Name, entry.Category.Name())
	}
	if prop.ValueType != "" {
		if err := checkFactoryCall(sc, s, prop.ValueType); err != nil {
			return nil, err
		}
	}

	val, err := x.evaluate(sc, s.Name, s.Expr)
	if err != nil {
		return nil, err
	}
	if err := entry.Binding.Check(val); err != nil {
		e := semanticsError(sc.typ.Name(), s.Name, RuleTypeMismatch, s.Range, "%v", err)
		e.Cause = err
		return nil, e
	}
	return assignOp{entry: entry, value: val}, nil
}

// checkFactoryCall requires a value of valueType to come from a call to a
// pure function returning that value type.
func checkFactoryCall(sc *scope, s Assign, valueType string) error {
	e := s.Expr
	for {
		paren, ok := e.(*hclsyntax.ParenthesesExpr)
		if !ok {
			break
		}
		e = paren.Expression
	}
	call, ok := e.(*hclsyntax.FunctionCallExpr)
	if !ok {
		return semanticsError(sc.typ.Name(), s.Name, RuleTypeMismatch, s.Range,
			"'%s' holds a %s value and must be built with a function returning one", s.Name, valueType)
	}
	pf, ok := sc.pure(call.Name)
	if !ok {
		return semanticsError(sc.typ.Name(), s.Name, RuleInvalidExpression, call.NameRange,
			"'%s' is not a function visible here", call.Name)
	}
	if pf.ValueType != valueType {
		return semanticsError(sc.typ.Name(), s.Name, RuleTypeMismatch, s.Range,
			"'%s' holds a %s value but '%s' does not return one", s.Name, valueType, call.Name)
	}
	return nil
}

func (x *Executor) planInvoke(ctx context.Context, sc *scope, s Invoke) (op, error) {
	if head, rest, dotted := strings.Cut(s.Name, "."); dotted {
		if entry, ok := sc.typ.Lookup(head); ok {
			if _, isProp := entry.Category.(schema.AssignableProperty); isProp {
				return nil, semanticsError(sc.typ.Name(), head, RuleImperativeMutation, s.Range,
					"'%s' cannot be called on a property; write '%s = <value>' instead", rest, head)
			}
		}
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleUnknownMember, s.Range,
			"'%s' has no callable member '%s'", head, rest)
	}

	entry, err := lookup(sc, s.Name, s.Range)
	if err != nil {
		if _, isPure := sc.functions()[s.Name]; isPure {
			return nil, semanticsError(sc.typ.Name(), s.Name, RuleBarePureCall, s.Range,
				"the result of '%s' must be assigned or passed to another function", s.Name)
		}
		return nil, err
	}

	var target string
	switch c := entry.Category.(type) {
	case schema.PureFunction:
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleBarePureCall, s.Range,
			"the result of '%s' must be assigned or passed to another function", s.Name)
	case schema.AssignableProperty:
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleNotCallable, s.Range,
			"'%s' is a property; write '%s = <value>' instead", s.Name, s.Name)
	case schema.ConfiguringFunction:
		target = c.Target
	case schema.AddingFunction:
		target = c.Element
	default:
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleNotCallable, s.Range, "'%s' is a %s", s.Name, entry.Category.Name())
	}

	if len(s.Args) > 0 {
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleArity, s.Range,
			"'%s' takes only a configuration body, got %d argument(s)", s.Name, len(s.Args))
	}
	if !s.HasBody {
		return nil, semanticsError(sc.typ.Name(), s.Name, RuleMissingBody, s.Range,
			"'%s' must be followed by a configuration body", s.Name)
	}

	targetType, err := x.schemas.Type(ctx, target)
	if err != nil {
		return nil, err
	}
	inner := sc.child(targetType)
	body := make([]op, 0, len(s.Body))
	for _, stmt := range s.Body {
		o, err := x.plan(ctx, inner, stmt)
		if err != nil {
			return nil, err
		}
		body = append(body, o)
	}

	if _, adding := entry.Category.(schema.AddingFunction); adding {
		return addOp{entry: entry, body: body, target: target}, nil
	}
	return configureOp{entry: entry, body: body, target: target}, nil
}

func (x *Executor) evaluate(sc *scope, member string, expr hcl.Expression) (cty.Value, error) {
	evalCtx := &hcl.EvalContext{Functions: sc.functions()}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		e := semanticsError(sc.typ.Name(), member, RuleInvalidExpression, expr.Range(), "%s", diags.Error())
		e.Cause = diags
		return cty.NilVal, e
	}
	return val, nil
}

func lookup(sc *scope, name string, rng hcl.Range) (schema.Entry, error) {
	entry, ok := sc.typ.Lookup(name)
	if ok {
		return entry, nil
	}
	if sc.typ.IsInvisible(name) {
		return schema.Entry{}, semanticsError(sc.typ.Name(), name, RuleUnknownMember, rng,
			"'%s' is not visible to scripts", name)
	}
	return schema.Entry{}, semanticsError(sc.typ.Name(), name, RuleUnknownMember, rng,
		"'%s' has no member '%s'", sc.typ.Name(), name)
}
