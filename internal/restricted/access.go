package restricted

import (
	"context"

	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/property"
	"github.com/vk/restricteddsl/internal/schema"
)

// AccessType is the schema name of Access.
const AccessType = "access"

const noName = "<no name>"

// Access is a named pair of read/write flags.
type Access struct {
	name  *property.Property[string]
	read  *property.Property[bool]
	write *property.Property[bool]
}

func newAccess() object.Node {
	return &Access{
		name:  property.New[string](),
		read:  property.New[bool](),
		write: property.New[bool](),
	}
}

// NodeType implements object.Node.
func (a *Access) NodeType() string { return AccessType }

// ApplyConventions implements object.Conventional.
func (a *Access) ApplyConventions(context.Context, *object.Runtime) error {
	a.name.Convention(noName)
	a.read.Convention(false)
	a.write.Convention(false)
	return nil
}

func (a *Access) Name() *property.Property[string] { return a.name }
func (a *Access) Read() *property.Property[bool]   { return a.read }
func (a *Access) Write() *property.Property[bool]  { return a.write }

// DescribeAccess declares the schema of Access.
func DescribeAccess() schema.TypeDecl {
	return schema.TypeDecl{
		Name: AccessType,
		Members: []schema.Member{
			schema.PropertyOf("name", (*Access).Name),
			schema.PropertyOf("read", (*Access).Read),
			schema.PropertyOf("write", (*Access).Write),
		},
	}
}
