package schema

import (
	"context"

	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/property"
	"github.com/vk/restricteddsl/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

type gadget struct {
	on *property.Property[bool]
}

type widget struct {
	label  *property.Property[string]
	origin *property.Property[value.Point]
	part   *gadget
	parts  *property.List[*gadget]
}

func newWidget() *widget {
	return &widget{
		label:  property.New[string]().Convention("<none>"),
		origin: property.New[value.Point](),
		part:   &gadget{on: property.New[bool]()},
		parts:  property.NewList[*gadget](),
	}
}

var pointFn = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x", Type: cty.Number},
		{Name: "y", Type: cty.Number},
	},
	Type: function.StaticReturnType(value.PointType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.ObjectVal(map[string]cty.Value{"x": args[0], "y": args[1]}), nil
	},
})

var voidFn = function.New(&function.Spec{
	Type: function.StaticReturnType(cty.NilType),
	Impl: func([]cty.Value, cty.Type) (cty.Value, error) { return cty.NilVal, nil },
})

func labelMember() Member {
	return PropertyOf("label", func(w *widget) *property.Property[string] { return w.label })
}

func originMember() Member {
	return PropertyOf("origin", func(w *widget) *property.Property[value.Point] { return w.origin })
}

func partMember() Member {
	return ConfigureOf("part", "gadget", func(w *widget, configure func(*gadget) error) error {
		return configure(w.part)
	})
}

func partsMember() Member {
	return AddOf("parts", "gadget", func(w *widget) property.View[*gadget] { return w.parts.View() }, func(w *widget, _ context.Context, configure func(*gadget) error) (*gadget, error) {
		g := &gadget{on: property.New[bool]()}
		if err := configure(g); err != nil {
			return nil, err
		}
		w.parts.Append(g)
		return g, nil
	})
}

func pointMember() Member {
	return PureOf("point", pointFn)
}

func widgetDecl() TypeDecl {
	return TypeDecl{
		Name: "widget",
		Members: []Member{
			labelMember(),
			originMember(),
			partMember(),
			partsMember(),
			pointMember(),
			HiddenOf("parts", KindProperty),
		},
	}
}

func gadgetDecl() TypeDecl {
	return TypeDecl{
		Name: "gadget",
		Members: []Member{
			PropertyOf("on", func(g *gadget) *property.Property[bool] { return g.on }),
		},
	}
}

func testValues() *value.Registry {
	values := value.NewRegistry()
	values.Register(value.PointTypeName, value.PointType)
	return values
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}
