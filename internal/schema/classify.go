package schema

import (
	"github.com/vk/restricteddsl/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// Classify assigns a member of node type typeName to its category. values
// resolves object-typed properties and results to registered value types.
func Classify(typeName string, m Member, values *value.Registry) (Category, error) {
	if m.Markers == 0 {
		return Invisible{}, nil
	}
	if m.Markers.Count() > 1 {
		return nil, definitionError(typeName, m.Name, RuleAmbiguousMarkers,
			"declared as %s, but a member may carry exactly one marker", m.Markers)
	}

	switch m.Kind {
	case KindProperty:
		return classifyProperty(typeName, m, values)
	case KindFunction:
		return classifyFunction(typeName, m, values)
	default:
		return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature, "unknown member kind %s", m.Kind)
	}
}

func classifyProperty(typeName string, m Member, values *value.Registry) (Category, error) {
	if !m.Markers.Has(Restricted) {
		return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
			"%s applies to functions only; properties are included with restricted", m.Markers)
	}
	if m.Type == cty.NilType {
		return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature, "property has no value type")
	}
	if m.Binding.Slot == nil || m.Binding.Check == nil {
		return nil, definitionError(typeName, m.Name, RuleMissingBinding, "property has no slot binding")
	}
	valueType, err := resolveValueType(typeName, m.Name, m.Type, values)
	if err != nil {
		return nil, err
	}
	return AssignableProperty{Type: m.Type, ValueType: valueType}, nil
}

func classifyFunction(typeName string, m Member, values *value.Registry) (Category, error) {
	switch {
	case m.Markers.Has(Configuring):
		if m.Callback == "" {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"configuring function must take a configuration callback")
		}
		if len(m.Params) > 0 {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"configuring function takes parameters besides the configuration callback")
		}
		if m.Returns != "" || m.Type != cty.NilType {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"configuring function must not return a value")
		}
		if m.Binding.Configure == nil {
			return nil, definitionError(typeName, m.Name, RuleMissingBinding, "configuring function has no binding")
		}
		return ConfiguringFunction{Target: m.Callback}, nil

	case m.Markers.Has(Adding):
		if m.Callback == "" {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"adding function must take a configuration callback")
		}
		if len(m.Params) > 0 {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"adding function takes parameters besides the configuration callback")
		}
		if m.Returns != m.Callback {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"adding function must return the '%s' it configured, got '%s'", m.Callback, m.Returns)
		}
		if m.Binding.Add == nil {
			return nil, definitionError(typeName, m.Name, RuleMissingBinding, "adding function has no binding")
		}
		return AddingFunction{Element: m.Callback}, nil

	default:
		if m.Callback != "" {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"function takes a configuration callback; mark it configuring or adding")
		}
		if m.Returns != "" {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"pure function must not return a configuration node")
		}
		if m.Type == cty.NilType {
			return nil, definitionError(typeName, m.Name, RuleIncompatibleSignature,
				"pure function must return a value")
		}
		if m.Binding.Func == nil {
			return nil, definitionError(typeName, m.Name, RuleMissingBinding, "pure function has no implementation")
		}
		valueType, err := resolveValueType(typeName, m.Name, m.Type, values)
		if err != nil {
			return nil, err
		}
		return PureFunction{Params: m.Params, Returns: m.Type, ValueType: valueType}, nil
	}
}

// resolveValueType accepts primitives as they are and requires object types
// to be registered value types.
func resolveValueType(typeName, member string, ty cty.Type, values *value.Registry) (string, error) {
	switch {
	case value.IsPrimitive(ty):
		return "", nil
	case ty.IsObjectType():
		if values != nil {
			if name, ok := values.NameOf(ty); ok {
				return name, nil
			}
		}
		return "", definitionError(typeName, member, RuleInvisibleValueType,
			"type %s is not a registered value type", ty.FriendlyName())
	default:
		return "", definitionError(typeName, member, RuleIncompatibleSignature,
			"unsupported type %s", ty.FriendlyName())
	}
}
