package schema

import (
	"context"
	"fmt"

	"github.com/vk/restricteddsl/internal/property"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Kind is the shape of a declared member.
type Kind int

const (
	KindProperty Kind = iota
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Param is a positional function parameter.
type Param struct {
	Name string
	Type cty.Type
}

// Binding connects a declaration to the Go code that implements it. Which
// fields are needed depends on the category the member classifies into.
type Binding struct {
	// Slot returns the property cell of a node instance.
	Slot func(node any) (property.Slot, error)
	// Check reports whether v could be assigned, without an instance.
	Check func(v cty.Value) error
	// Configure runs configure against the singleton owned by node.
	Configure func(ctx context.Context, node any, configure func(any) error) error
	// Add constructs, configures and appends a new element, returning it.
	Add func(ctx context.Context, node any, configure func(any) error) (any, error)
	// Len counts the elements already added, which is the index of the next.
	Len func(node any) (int, error)
	// Func implements a pure function.
	Func *function.Function
}

// Member is one declared member of a node type.
type Member struct {
	Name    string
	Kind    Kind
	Markers Marker
	// Type is the property value type or the function result type.
	// cty.NilType means the function returns nothing.
	Type   cty.Type
	Params []Param
	// Callback names the node type passed to the configuration callback.
	Callback string
	// Returns names the node type the function returns, if any.
	Returns string
	Binding Binding
}

// With returns a copy of m carrying the additional markers.
func (m Member) With(markers Marker) Member {
	m.Markers |= markers
	return m
}

// TypeDecl is the full member list of a node type.
type TypeDecl struct {
	Name    string
	Members []Member
}

// PropertyOf declares an assignable property backed by the cell get returns.
func PropertyOf[N any, T any](name string, get func(N) *property.Property[T]) Member {
	return Member{
		Name:    name,
		Kind:    KindProperty,
		Markers: Restricted,
		Type:    property.TypeOf[T](),
		Binding: Binding{
			Slot: func(node any) (property.Slot, error) {
				n, err := receiver[N](node)
				if err != nil {
					return nil, err
				}
				return get(n).Slot(), nil
			},
			Check: func(v cty.Value) error {
				_, err := property.Decode[T](v)
				return err
			},
		},
	}
}

// ConfigureOf declares a configuring function over a singleton of node type
// target.
func ConfigureOf[N any, S any](name, target string, fn func(N, func(S) error) error) Member {
	return Member{
		Name:     name,
		Kind:     KindFunction,
		Markers:  Configuring,
		Callback: target,
		Binding: Binding{
			Configure: func(_ context.Context, node any, configure func(any) error) error {
				n, err := receiver[N](node)
				if err != nil {
					return err
				}
				return fn(n, func(s S) error { return configure(s) })
			},
		},
	}
}

// AddOf declares an adding function creating elements of node type element.
// elements exposes the collection fn appends to.
func AddOf[N any, E any](name, element string, elements func(N) property.View[E], fn func(N, context.Context, func(E) error) (E, error)) Member {
	return Member{
		Name:     name,
		Kind:     KindFunction,
		Markers:  Adding,
		Callback: element,
		Returns:  element,
		Binding: Binding{
			Add: func(ctx context.Context, node any, configure func(any) error) (any, error) {
				n, err := receiver[N](node)
				if err != nil {
					return nil, err
				}
				return fn(n, ctx, func(e E) error { return configure(e) })
			},
			Len: func(node any) (int, error) {
				n, err := receiver[N](node)
				if err != nil {
					return 0, err
				}
				return elements(n).Len(), nil
			},
		},
	}
}

// PureOf declares a pure function implemented by fn. The result type is
// derived from the declared parameter types.
func PureOf(name string, fn function.Function) Member {
	var params []Param
	var argTypes []cty.Type
	for _, p := range fn.Params() {
		params = append(params, Param{Name: p.Name, Type: p.Type})
		argTypes = append(argTypes, p.Type)
	}
	ret, err := fn.ReturnType(argTypes)
	if err != nil {
		ret = cty.NilType
	}
	return Member{
		Name:    name,
		Kind:    KindFunction,
		Markers: Restricted,
		Type:    ret,
		Params:  params,
		Binding: Binding{Func: &fn},
	}
}

// HiddenOf declares a member that carries no marker.
func HiddenOf(name string, kind Kind) Member {
	return Member{Name: name, Kind: kind}
}

func receiver[N any](node any) (N, error) {
	n, ok := node.(N)
	if !ok {
		var zero N
		return zero, fmt.Errorf("receiver is %T, expected %T", node, zero)
	}
	return n, nil
}
