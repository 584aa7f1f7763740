package restricted

import (
	"context"
	"fmt"

	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/property"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/vk/restricteddsl/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	// ExtensionName is the name the extension is registered under.
	ExtensionName = "restricted"
	// ExtensionType is the schema name of Extension.
	ExtensionType = "restricted_extension"

	noID        = "<no id>"
	primaryName = "primary"
)

// Extension is the root node of the restricted configuration surface.
type Extension struct {
	objects *object.Runtime

	primaryAccess   *Access
	secondaryAccess *property.List[*Access]

	id             *property.Property[string]
	referencePoint *property.Property[value.Point]
}

func newExtension() object.Node {
	return &Extension{
		secondaryAccess: property.NewList[*Access](),
		id:              property.New[string](),
		referencePoint:  property.New[value.Point](),
	}
}

// NodeType implements object.Node.
func (e *Extension) NodeType() string { return ExtensionType }

// WireSingletons implements object.Owner. The primary access is created
// here, once, and named explicitly rather than by convention.
func (e *Extension) WireSingletons(ctx context.Context, rt *object.Runtime) error {
	e.objects = rt
	primary, err := object.New[*Access](ctx, rt, AccessType)
	if err != nil {
		return err
	}
	primary.Name().Set(primaryName)
	e.primaryAccess = primary
	return nil
}

// ApplyConventions implements object.Conventional.
func (e *Extension) ApplyConventions(context.Context, *object.Runtime) error {
	e.id.Convention(noID)
	e.referencePoint.ConventionFunc(func() value.Point { return e.Point(-1, -1) })
	return nil
}

// ID is the extension identifier.
func (e *Extension) ID() *property.Property[string] { return e.id }

// ReferencePoint is the extension's reference coordinate.
func (e *Extension) ReferencePoint() *property.Property[value.Point] { return e.referencePoint }

// PrimaryAccess returns the primary access for readers.
func (e *Extension) PrimaryAccess() *Access { return e.primaryAccess }

// SecondaryAccess returns the secondary accesses in the order they were added.
func (e *Extension) SecondaryAccess() property.View[*Access] { return e.secondaryAccess.View() }

// ConfigurePrimaryAccess runs configure against the primary access.
func (e *Extension) ConfigurePrimaryAccess(configure func(*Access) error) error {
	return object.Configure(e.primaryAccess, configure)
}

// AddSecondaryAccess creates a new access, configures it and appends it.
func (e *Extension) AddSecondaryAccess(ctx context.Context, configure func(*Access) error) (*Access, error) {
	return object.Add(ctx, e.objects, AccessType, e.secondaryAccess, func(a *Access) error {
		a.Name().Convention(noName)
		return object.Configure(a, configure)
	})
}

// Point builds a value.Point. It has no side effects.
func (e *Extension) Point(x, y int) value.Point {
	return value.NewPoint(x, y)
}

// PointFunc is the script form of Point.
var PointFunc = function.New(&function.Spec{
	Description: "Builds a point from two integer coordinates.",
	Params: []function.Parameter{
		{Name: "x", Type: cty.Number},
		{Name: "y", Type: cty.Number},
	},
	Type: function.StaticReturnType(value.PointType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var x, y int
		if err := gocty.FromCtyValue(args[0], &x); err != nil {
			return cty.NilVal, function.NewArgError(0, fmt.Errorf("x must be a whole number: %w", err))
		}
		if err := gocty.FromCtyValue(args[1], &y); err != nil {
			return cty.NilVal, function.NewArgError(1, fmt.Errorf("y must be a whole number: %w", err))
		}
		return value.NewPoint(x, y).Cty(), nil
	},
})

// DescribeExtension declares the schema of Extension.
func DescribeExtension() schema.TypeDecl {
	return schema.TypeDecl{
		Name: ExtensionType,
		Members: []schema.Member{
			schema.HiddenOf("secondary_access", schema.KindProperty),
			schema.PropertyOf("id", (*Extension).ID),
			schema.PropertyOf("reference_point", (*Extension).ReferencePoint),
			schema.ConfigureOf("primary_access", AccessType, (*Extension).ConfigurePrimaryAccess),
			schema.AddOf("secondary_access", AccessType, (*Extension).SecondaryAccess, (*Extension).AddSecondaryAccess),
			schema.PureOf("point", PointFunc),
		},
	}
}

// Register declares both node types and their constructors.
func Register(reg *schema.Registry, ctors *object.Constructors) {
	reg.Declare(DescribeExtension())
	reg.Declare(DescribeAccess())
	ctors.Register(ExtensionType, newExtension)
	ctors.Register(AccessType, newAccess)
}
