package object

import "context"

// Node is a configuration node instance.
type Node interface {
	// NodeType returns the name of the node's schema type.
	NodeType() string
}

// Owner is implemented by nodes that own singleton sub-objects.
type Owner interface {
	WireSingletons(ctx context.Context, rt *Runtime) error
}

// Conventional is implemented by nodes whose properties declare conventions.
type Conventional interface {
	ApplyConventions(ctx context.Context, rt *Runtime) error
}

// Appender is the write path of an owned collection.
type Appender[T any] interface {
	Append(T)
}
