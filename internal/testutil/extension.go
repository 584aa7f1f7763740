package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/restricted"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/vk/restricteddsl/internal/value"
)

// ExtensionFixture is a freshly constructed restricted extension together
// with the registries it was built from.
type ExtensionFixture struct {
	Ctx       context.Context
	Schemas   *schema.Registry
	Runtime   *object.Runtime
	Extension *restricted.Extension
}

// NewExtension constructs a restricted extension with a discarding logger.
func NewExtension(t testing.TB) *ExtensionFixture {
	t.Helper()

	values := value.NewRegistry()
	values.Register(value.PointTypeName, value.PointType)
	schemas := schema.NewRegistry(values)
	ctors := object.NewConstructors()
	restricted.Register(schemas, ctors)
	rt := object.NewRuntime(ctors)

	ctx := ctxlog.Discard(context.Background())
	ext, err := object.New[*restricted.Extension](ctx, rt, restricted.ExtensionType)
	require.NoError(t, err)

	return &ExtensionFixture{Ctx: ctx, Schemas: schemas, Runtime: rt, Extension: ext}
}
