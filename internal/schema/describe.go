package schema

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Description is the serializable form of a schema, handed to external
// interpreters that discover what a script may do.
type Description struct {
	Root       string                 `json:"root" yaml:"root"`
	Types      []TypeDescription      `json:"types" yaml:"types"`
	ValueTypes []ValueTypeDescription `json:"value_types,omitempty" yaml:"value_types,omitempty"`
}

// TypeDescription describes one node type.
type TypeDescription struct {
	Name    string              `json:"name" yaml:"name"`
	Members []MemberDescription `json:"members" yaml:"members"`
}

// MemberDescription describes one visible member.
type MemberDescription struct {
	Name     string             `json:"name" yaml:"name"`
	Category string             `json:"category" yaml:"category"`
	Type     string             `json:"type,omitempty" yaml:"type,omitempty"`
	Params   []ParamDescription `json:"params,omitempty" yaml:"params,omitempty"`
	Node     string             `json:"node,omitempty" yaml:"node,omitempty"`
}

// ParamDescription describes a pure function parameter.
type ParamDescription struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ValueTypeDescription describes a registered value type.
type ValueTypeDescription struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Describe builds the description of root and everything reachable from it.
func (r *Registry) Describe(ctx context.Context, root string) (*Description, error) {
	types, err := r.Closure(ctx, root)
	if err != nil {
		return nil, err
	}

	d := &Description{Root: root}
	usedValues := make(map[string]bool)
	for _, t := range types {
		td := TypeDescription{Name: t.name}
		for _, e := range t.entries {
			md := MemberDescription{Name: e.Name, Category: e.Category.Name()}
			switch c := e.Category.(type) {
			case AssignableProperty:
				md.Type = typeName(c.Type, c.ValueType)
				if c.ValueType != "" {
					usedValues[c.ValueType] = true
				}
			case ConfiguringFunction:
				md.Node = c.Target
			case AddingFunction:
				md.Node = c.Element
			case PureFunction:
				md.Type = typeName(c.Returns, c.ValueType)
				if c.ValueType != "" {
					usedValues[c.ValueType] = true
				}
				for _, p := range c.Params {
					md.Params = append(md.Params, ParamDescription{Name: p.Name, Type: typeexpr.TypeString(p.Type)})
				}
			}
			td.Members = append(td.Members, md)
		}
		d.Types = append(d.Types, td)
	}

	if r.values != nil {
		for _, name := range r.values.Names() {
			if !usedValues[name] {
				continue
			}
			ty, _ := r.values.Lookup(name)
			d.ValueTypes = append(d.ValueTypes, ValueTypeDescription{Name: name, Type: typeexpr.TypeString(ty)})
		}
	}
	return d, nil
}

// JSON renders the description as indented JSON.
func (d *Description) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the description as YAML.
func (d *Description) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

func typeName(ty cty.Type, valueType string) string {
	if valueType != "" {
		return valueType
	}
	return typeexpr.TypeString(ty)
}
