// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key int

const (
	// loggerKey is the key for the slog.Logger in a context.Context.
	loggerKey key = iota
	// baseKey holds the logger WithNode annotations are derived from.
	baseKey
)

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, baseKey, logger)
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. A context without a
// logger is a wiring mistake, so it panics instead of falling back silently.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// WithNode returns a context whose logger is annotated with the node type and
// the script path of the node currently being configured. The annotation
// replaces the one of an enclosing node rather than adding to it.
func WithNode(ctx context.Context, nodeType, path string) context.Context {
	base, ok := ctx.Value(baseKey).(*slog.Logger)
	if !ok {
		base = FromContext(ctx)
	}
	return context.WithValue(ctx, loggerKey, base.With("node_type", nodeType, "node_path", path))
}

// Discard returns a context carrying a logger that drops every record. It is
// meant for tests and for host code that does not care about diagnostics.
func Discard(ctx context.Context) context.Context {
	return WithLogger(ctx, slog.New(slog.DiscardHandler))
}
