package value

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

func TestPoint_CtyRoundTrip(t *testing.T) {
	t.Parallel()

	p := NewPoint(3, 4)
	v := p.Cty()
	require.True(t, v.Type().Equals(PointType))

	var back Point
	require.NoError(t, gocty.FromCtyValue(v, &back))
	require.True(t, p.Equal(back))
	require.Equal(t, "(3, 4)", back.String())
}

func TestPointType_MatchesImpliedType(t *testing.T) {
	t.Parallel()

	implied, err := gocty.ImpliedType(Point{})
	require.NoError(t, err)
	require.True(t, implied.Equals(PointType), "tags on Point must agree with PointType")
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(PointTypeName, PointType)

	ty, ok := r.Lookup(PointTypeName)
	require.True(t, ok)
	require.True(t, ty.Equals(PointType))

	name, ok := r.NameOf(cty.Object(map[string]cty.Type{"x": cty.Number, "y": cty.Number}))
	require.True(t, ok)
	require.Equal(t, PointTypeName, name)

	_, ok = r.NameOf(cty.Object(map[string]cty.Type{"z": cty.Number}))
	require.False(t, ok)

	require.Panics(t, func() { r.Register(PointTypeName, PointType) })
	require.Panics(t, func() { r.Register("str", cty.String) })
	require.Equal(t, []string{PointTypeName}, r.Names())
}
