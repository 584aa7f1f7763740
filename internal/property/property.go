package property

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Property is a typed assignable slot with an optional convention.
type Property[T any] struct {
	ty            cty.Type
	value         T
	set           bool
	convention    T
	hasConvention bool
}

// New returns an unset property without a convention. It panics when T has no
// cty representation, since that is a mistake in the declaring node type.
func New[T any]() *Property[T] {
	return &Property[T]{ty: TypeOf[T]()}
}

// TypeOf returns the cty type that values of T are exchanged as.
func TypeOf[T any]() cty.Type {
	var zero T
	ty, err := gocty.ImpliedType(zero)
	if err != nil {
		panic(fmt.Sprintf("property: type %T has no cty representation: %v", zero, err))
	}
	return ty
}

// Convention sets the value reported while the property is unset.
func (p *Property[T]) Convention(v T) *Property[T] {
	p.convention = v
	p.hasConvention = true
	return p
}

// ConventionFunc computes the convention immediately and keeps the result, so
// later reads observe the inputs that were known at construction.
func (p *Property[T]) ConventionFunc(fn func() T) *Property[T] {
	return p.Convention(fn())
}

// Set assigns v. Every call counts as an explicit assignment, including one
// that repeats the current convention.
func (p *Property[T]) Set(v T) {
	p.value = v
	p.set = true
}

// Get returns the assigned value, else the convention, else the zero value.
func (p *Property[T]) Get() T {
	if p.set {
		return p.value
	}
	if p.hasConvention {
		return p.convention
	}
	var zero T
	return zero
}

// GetOrElse returns Get() when a value is present and fallback otherwise.
func (p *Property[T]) GetOrElse(fallback T) T {
	if !p.Present() {
		return fallback
	}
	return p.Get()
}

// Present reports whether Get returns an assigned or conventional value.
func (p *Property[T]) Present() bool {
	return p.set || p.hasConvention
}

// IsSet reports whether the property was ever explicitly assigned.
func (p *Property[T]) IsSet() bool {
	return p.set
}

// HasConvention reports whether a convention was declared.
func (p *Property[T]) HasConvention() bool {
	return p.hasConvention
}

// Type returns the cty type of the property's values.
func (p *Property[T]) Type() cty.Type {
	return p.ty
}

// Slot returns a type-erased view of the property.
func (p *Property[T]) Slot() Slot {
	return slot[T]{p: p}
}

// Decode converts a cty value into T, applying cty's standard conversions
// first. It does not touch any property, which makes it usable to check a
// value before deciding to assign it.
func Decode[T any](v cty.Value) (T, error) {
	var out T
	if v.IsNull() {
		return out, fmt.Errorf("null is not assignable")
	}
	if !v.IsWhollyKnown() {
		return out, fmt.Errorf("value is not known")
	}
	ty := TypeOf[T]()
	if err := sameAttributes(v.Type(), ty); err != nil {
		return out, err
	}
	converted, err := convert.Convert(v, ty)
	if err != nil {
		return out, fmt.Errorf("cannot convert %s to %s: %w", v.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return out, fmt.Errorf("cannot decode %s: %w", ty.FriendlyName(), err)
	}
	return out, nil
}

// sameAttributes rejects objects whose attribute names differ from the
// target's, which conversion would otherwise drop silently.
func sameAttributes(from, to cty.Type) error {
	if !from.IsObjectType() || !to.IsObjectType() {
		return nil
	}
	var extra, missing []string
	for name := range from.AttributeTypes() {
		if !to.HasAttribute(name) {
			extra = append(extra, name)
		}
	}
	for name := range to.AttributeTypes() {
		if !from.HasAttribute(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(extra)
	sort.Strings(missing)
	switch {
	case len(extra) > 0:
		return fmt.Errorf("unexpected attribute(s) %s", strings.Join(extra, ", "))
	case len(missing) > 0:
		return fmt.Errorf("missing attribute(s) %s", strings.Join(missing, ", "))
	}
	return nil
}
