package value

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Registry records the value types that scripts are allowed to see. A
// property whose type is a cty object must name a registered value type.
type Registry struct {
	byName map[string]cty.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]cty.Type)}
}

// Register makes a value type visible under the given name.
func (r *Registry) Register(name string, ty cty.Type) {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("value type '%s' already registered", name))
	}
	if !ty.IsObjectType() {
		panic(fmt.Sprintf("value type '%s' must be an object type, got %s", name, ty.FriendlyName()))
	}
	r.byName[name] = ty
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (cty.Type, bool) {
	ty, ok := r.byName[name]
	return ty, ok
}

// NameOf returns the name of the registered value type equal to ty.
func (r *Registry) NameOf(ty cty.Type) (string, bool) {
	for name, candidate := range r.byName {
		if candidate.Equals(ty) {
			return name, true
		}
	}
	return "", false
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPrimitive reports whether ty is a type that needs no registration.
func IsPrimitive(ty cty.Type) bool {
	return ty.IsPrimitiveType()
}
