package object

import (
	"context"
	"fmt"

	"github.com/vk/restricteddsl/internal/ctxlog"
)

// ConstructionError reports that a node could not be constructed. The
// underlying cause is kept for errors.Is and errors.As.
type ConstructionError struct {
	Type string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing node '%s': %v", e.Type, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Runtime constructs nodes through a Factory and finishes their setup.
type Runtime struct {
	factory Factory
}

// NewRuntime returns a runtime backed by factory.
func NewRuntime(factory Factory) *Runtime {
	return &Runtime{factory: factory}
}

// New instantiates a node of typeName, wires its singletons and applies its
// conventions.
func (rt *Runtime) New(ctx context.Context, typeName string) (Node, error) {
	logger := ctxlog.FromContext(ctx)

	n, err := rt.factory.Instantiate(ctx, typeName)
	if err != nil {
		return nil, &ConstructionError{Type: typeName, Err: err}
	}
	if n == nil {
		return nil, &ConstructionError{Type: typeName, Err: fmt.Errorf("factory returned no instance")}
	}
	if got := n.NodeType(); got != typeName {
		return nil, &ConstructionError{Type: typeName, Err: fmt.Errorf("factory returned a '%s'", got)}
	}

	if owner, ok := n.(Owner); ok {
		if err := owner.WireSingletons(ctx, rt); err != nil {
			return nil, &ConstructionError{Type: typeName, Err: fmt.Errorf("wiring singletons: %w", err)}
		}
	}
	if conv, ok := n.(Conventional); ok {
		if err := conv.ApplyConventions(ctx, rt); err != nil {
			return nil, &ConstructionError{Type: typeName, Err: fmt.Errorf("applying conventions: %w", err)}
		}
	}

	logger.Debug("Constructed node.", "type", typeName)
	return n, nil
}

// New constructs a node and asserts its Go type.
func New[T Node](ctx context.Context, rt *Runtime, typeName string) (T, error) {
	var zero T
	n, err := rt.New(ctx, typeName)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, &ConstructionError{Type: typeName, Err: fmt.Errorf("instance is %T, expected %T", n, zero)}
	}
	return t, nil
}

// Configure runs configure against an existing singleton. It never
// constructs, so every call observes the same target.
func Configure[T any](target T, configure func(T) error) error {
	if configure == nil {
		return nil
	}
	return configure(target)
}

// Add constructs a fresh node, runs configure against it, appends it to into
// and returns it. When configure fails nothing is appended.
func Add[T Node](ctx context.Context, rt *Runtime, typeName string, into Appender[T], configure func(T) error) (T, error) {
	var zero T
	element, err := New[T](ctx, rt, typeName)
	if err != nil {
		return zero, err
	}
	if err := Configure(element, configure); err != nil {
		return zero, err
	}
	into.Append(element)
	ctxlog.FromContext(ctx).Debug("Appended element.", "type", typeName)
	return element, nil
}
