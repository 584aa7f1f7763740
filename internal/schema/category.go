package schema

import "github.com/zclconf/go-cty/cty"

// Category is the closed set of classification outcomes. Only the types in
// this file implement it.
type Category interface {
	isCategory()
	// Name is the stable, human readable name of the category.
	Name() string
}

// Invisible members are excluded from the schema.
type Invisible struct{}

// AssignableProperty accepts whole-value assignment only.
type AssignableProperty struct {
	Type cty.Type
	// ValueType names the registered value type when Type is an object.
	ValueType string
}

// ConfiguringFunction configures the singleton of node type Target.
type ConfiguringFunction struct {
	Target string
}

// AddingFunction appends a new node of type Element on every call.
type AddingFunction struct {
	Element string
}

// PureFunction produces a value and has no side effects.
type PureFunction struct {
	Params    []Param
	Returns   cty.Type
	ValueType string
}

func (Invisible) isCategory()           {}
func (AssignableProperty) isCategory()  {}
func (ConfiguringFunction) isCategory() {}
func (AddingFunction) isCategory()      {}
func (PureFunction) isCategory()        {}

func (Invisible) Name() string           { return "invisible" }
func (AssignableProperty) Name() string  { return "assignable property" }
func (ConfiguringFunction) Name() string { return "configuring function" }
func (AddingFunction) Name() string      { return "adding function" }
func (PureFunction) Name() string        { return "pure function" }
