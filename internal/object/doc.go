// Package object is the runtime that owns configuration node instances.
//
// Nodes are obtained from a Factory, which stands in for whatever mechanism
// the host uses to instantiate objects. A freshly instantiated node has all of
// its property cells present but unset. The Runtime then finishes
// construction in a fixed order:
//
//  1. WireSingletons, for nodes that own singleton sub-objects. Each singleton
//     is constructed here exactly once and kept for the node's lifetime.
//  2. ApplyConventions, for nodes whose properties declare conventions.
//
// Adding functions use Add, which runs the same construction path for every
// new element before handing it to the caller's configuration callback and
// appending it. Configuring functions use Configure, which never constructs.
//
// The runtime is not safe for concurrent use. Construction and configuration
// happen sequentially during a single configuration phase.
package object
