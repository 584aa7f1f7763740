package object

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownType is returned when no constructor is registered for a type.
var ErrUnknownType = errors.New("unknown node type")

// Factory instantiates bare nodes by type name.
type Factory interface {
	Instantiate(ctx context.Context, typeName string) (Node, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(ctx context.Context, typeName string) (Node, error)

// Instantiate calls f.
func (f FactoryFunc) Instantiate(ctx context.Context, typeName string) (Node, error) {
	return f(ctx, typeName)
}

// Constructors is the default Factory: a table of constructor functions.
type Constructors struct {
	all map[string]func() Node
}

// NewConstructors returns an empty constructor table.
func NewConstructors() *Constructors {
	return &Constructors{all: make(map[string]func() Node)}
}

// Register adds the constructor of a node type.
func (c *Constructors) Register(typeName string, fn func() Node) {
	if _, exists := c.all[typeName]; exists {
		panic(fmt.Sprintf("constructor for node type '%s' already registered", typeName))
	}
	c.all[typeName] = fn
}

// Types returns the registered type names in lexical order.
func (c *Constructors) Types() []string {
	names := make([]string, 0, len(c.all))
	for name := range c.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instantiate implements Factory.
func (c *Constructors) Instantiate(_ context.Context, typeName string) (Node, error) {
	fn, ok := c.all[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownType, typeName)
	}
	return fn(), nil
}
