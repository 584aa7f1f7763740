package property

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Slot is the type-erased face of a Property used by the script layer and by
// readers that only know cty values.
type Slot interface {
	Type() cty.Type
	// AssignCty decodes and assigns v. On error the property is unchanged.
	AssignCty(v cty.Value) error
	// Cty returns the current value, or cty.NullVal when nothing is present.
	Cty() (cty.Value, error)
	IsSet() bool
}

type slot[T any] struct {
	p *Property[T]
}

func (s slot[T]) Type() cty.Type { return s.p.ty }

func (s slot[T]) IsSet() bool { return s.p.set }

func (s slot[T]) AssignCty(v cty.Value) error {
	decoded, err := Decode[T](v)
	if err != nil {
		return err
	}
	s.p.Set(decoded)
	return nil
}

func (s slot[T]) Cty() (cty.Value, error) {
	if !s.p.Present() {
		return cty.NullVal(s.p.ty), nil
	}
	return gocty.ToCtyValue(s.p.Get(), s.p.ty)
}
