package schema

import (
	"context"
	"errors"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/value"
)

// Registry holds node type declarations and the schemas built from them.
// Schemas are built once per type name and shared by every instance.
type Registry struct {
	values *value.Registry
	decls  map[string]TypeDecl
	built  *gocache.Cache
}

// NewRegistry creates a registry resolving value types through values.
func NewRegistry(values *value.Registry) *Registry {
	return &Registry{
		values: values,
		decls:  make(map[string]TypeDecl),
		// Schemas never expire and there is nothing for a janitor to do.
		built: gocache.New(gocache.NoExpiration, 0),
	}
}

// Values returns the value type registry.
func (r *Registry) Values() *value.Registry {
	return r.values
}

// Declare adds the declaration of a node type.
func (r *Registry) Declare(decl TypeDecl) {
	if _, exists := r.decls[decl.Name]; exists {
		panic(fmt.Sprintf("node type '%s' already declared", decl.Name))
	}
	r.decls[decl.Name] = decl
}

// Build returns the schema of the root node type after building it and every
// node type reachable from it. Nothing is cached unless all of them build.
func (r *Registry) Build(ctx context.Context, root string) (*Type, error) {
	logger := ctxlog.FromContext(ctx)

	if t, ok := r.cached(root); ok {
		logger.Debug("Schema cache hit.", "type", root)
		return t, nil
	}

	fresh := make(map[string]*Type)
	var errs []error
	queue := []string{root}
	visited := map[string]bool{root: true}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		t, ok := r.cached(name)
		if !ok {
			decl, declared := r.decls[name]
			if !declared {
				errs = append(errs, definitionError(name, "", RuleUnknownType, "node type is not declared"))
				continue
			}
			var err error
			t, err = buildType(decl, func(m Member) (Category, error) {
				return Classify(name, m, r.values)
			})
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fresh[name] = t
			logger.Debug("Built schema for node type.", "type", name, "entries", len(t.entries), "invisible", len(t.invisible))
		}

		for _, ref := range t.refs {
			if !visited[ref] {
				visited[ref] = true
				queue = append(queue, ref)
			}
		}
	}

	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	for name, t := range fresh {
		r.built.Set(name, t, gocache.NoExpiration)
	}
	return fresh[root], nil
}

// Type returns the schema of a node type, building it when needed.
func (r *Registry) Type(ctx context.Context, name string) (*Type, error) {
	return r.Build(ctx, name)
}

// Closure returns the root type followed by every reachable node type, in
// breadth-first order.
func (r *Registry) Closure(ctx context.Context, root string) ([]*Type, error) {
	first, err := r.Build(ctx, root)
	if err != nil {
		return nil, err
	}
	out := []*Type{first}
	seen := map[string]bool{root: true}
	for i := 0; i < len(out); i++ {
		for _, ref := range out[i].refs {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			t, ok := r.cached(ref)
			if !ok {
				return nil, fmt.Errorf("schema for '%s' missing after build", ref)
			}
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *Registry) cached(name string) (*Type, bool) {
	v, ok := r.built.Get(name)
	if !ok {
		return nil, false
	}
	t, ok := v.(*Type)
	return t, ok
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
