package plugin

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/property"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/vk/restricteddsl/internal/script"
)

type counter struct {
	count *property.Property[int]
}

func (c *counter) NodeType() string { return "counter" }

type counterPlugin struct {
	broken bool
	made   *counter
}

func (cp *counterPlugin) Apply(ctx context.Context, p *Project) error {
	count := schema.PropertyOf("count", func(c *counter) *property.Property[int] { return c.count })
	if cp.broken {
		count = count.With(schema.Adding)
	}
	p.Schemas().Declare(schema.TypeDecl{Name: "counter", Members: []schema.Member{count}})
	p.Constructors().Register("counter", func() object.Node { return &counter{count: property.New[int]()} })

	c, err := CreateExtension[*counter](ctx, p, "counter", "counter")
	if err != nil {
		return err
	}
	cp.made = c
	p.RegisterTask("show", func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})
	return nil
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestProject_ExtensionsBecomeConfiguringBlocks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := testContext()
	p := NewProject()
	cp := &counterPlugin{}
	require.NoError(t, p.Apply(ctx, cp))

	countExpr, diags := hclsyntax.ParseExpression([]byte("41 + 1"), "t.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors())

	// --- Act ---
	err := p.Configure(ctx, []script.Statement{
		script.Invoke{Name: "counter", HasBody: true, Body: []script.Statement{
			script.Assign{Name: "count", Expr: countExpr},
		}},
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 42, cp.made.count.Get())

	n, ok := p.Extension("counter")
	require.True(t, ok)
	require.Same(t, cp.made, n)
	require.Equal(t, []string{"counter"}, p.Extensions())
}

func TestProject_DefinitionErrorAbortsApply(t *testing.T) {
	t.Parallel()

	p := NewProject()
	err := p.Apply(testContext(), &counterPlugin{broken: true})

	var defErr *schema.DefinitionError
	require.True(t, errors.As(err, &defErr))
	require.Equal(t, schema.RuleAmbiguousMarkers, defErr.Rule)

	_, ok := p.Extension("counter")
	require.False(t, ok, "no extension is created for a type whose schema failed")
	require.Error(t, p.Configure(testContext(), nil))
}

type ghost struct{}

func (ghost) NodeType() string { return "ghost" }

func TestProject_FailedProjectSchemaIsReportedAgain(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := testContext()
	p := NewProject()
	p.extensions["ghost"] = ghost{}
	p.order = append(p.order, "ghost")

	// --- Act ---
	first := p.Apply(ctx)
	var second error
	require.NotPanics(t, func() { second = p.Apply(ctx) })

	// --- Assert ---
	var defErr *schema.DefinitionError
	require.True(t, errors.As(first, &defErr))
	require.Equal(t, schema.RuleUnknownType, defErr.Rule)
	require.ErrorContains(t, second, "already failed to build")
	require.True(t, errors.As(second, &defErr))
	require.Error(t, p.Configure(ctx, nil), "a project that failed to build is never sealed")
}

func TestProject_Tasks(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	p := NewProject()
	require.NoError(t, p.Apply(ctx, &counterPlugin{}))

	buf := &bytes.Buffer{}
	require.NoError(t, p.RunTask(ctx, "show", buf))
	require.Equal(t, "ok", buf.String())

	err := p.RunTask(ctx, "missing", buf)
	require.ErrorContains(t, err, "task 'missing' not found; available: [show]")

	require.Panics(t, func() { p.RegisterTask("show", nil) })
}

func TestProject_SealedAfterApply(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	p := NewProject()
	require.NoError(t, p.Apply(ctx))

	_, err := p.CreateExtension(ctx, "late", "counter")
	require.ErrorContains(t, err, "already configured")
	require.Error(t, p.Apply(ctx))
}
