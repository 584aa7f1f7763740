package property

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/value"
	"github.com/zclconf/go-cty/cty"
	"pgregory.net/rapid"
)

func TestProperty_ConventionUntilAssigned(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	p := New[string]().Convention("<no id>")

	// --- Act & Assert ---
	require.Equal(t, "<no id>", p.Get())
	require.False(t, p.IsSet())
	require.True(t, p.Present())

	p.Set("gateway")
	require.Equal(t, "gateway", p.Get())
	require.True(t, p.IsSet())
}

func TestProperty_AssigningConventionValueStillSupersedes(t *testing.T) {
	t.Parallel()

	p := New[bool]().Convention(false)
	p.Set(false)
	require.True(t, p.IsSet(), "re-assigning the convention value is an explicit assignment")
	require.False(t, p.Get())
}

func TestProperty_ConventionFuncIsFixedAtConstruction(t *testing.T) {
	t.Parallel()

	calls := 0
	origin := value.NewPoint(-1, -1)
	p := New[value.Point]().ConventionFunc(func() value.Point {
		calls++
		return origin
	})
	origin = value.NewPoint(9, 9)

	require.Equal(t, value.NewPoint(-1, -1), p.Get())
	require.Equal(t, value.NewPoint(-1, -1), p.Get())
	require.Equal(t, 1, calls)
}

func TestProperty_NoConvention(t *testing.T) {
	t.Parallel()

	p := New[int]()
	require.False(t, p.Present())
	require.Equal(t, 0, p.Get())
	require.Equal(t, 7, p.GetOrElse(7))

	p.Set(3)
	require.Equal(t, 3, p.GetOrElse(7))
}

func TestSlot_AssignCty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		in        cty.Value
		expectErr string
		expect    value.Point
	}{
		{
			name:   "object with whole numbers",
			in:     value.NewPoint(3, 4).Cty(),
			expect: value.NewPoint(3, 4),
		},
		{
			name:      "fractional coordinate",
			in:        cty.ObjectVal(map[string]cty.Value{"x": cty.NumberFloatVal(1.5), "y": cty.NumberIntVal(0)}),
			expectErr: "cannot decode",
		},
		{
			name:      "wrong type",
			in:        cty.StringVal("3,4"),
			expectErr: "cannot convert",
		},
		{
			name: "object with an extra attribute",
			in: cty.ObjectVal(map[string]cty.Value{
				"x": cty.NumberIntVal(3), "y": cty.NumberIntVal(4), "z": cty.NumberIntVal(9),
			}),
			expectErr: "unexpected attribute(s) z",
		},
		{
			name:      "object with a missing attribute",
			in:        cty.ObjectVal(map[string]cty.Value{"x": cty.NumberIntVal(3)}),
			expectErr: "missing attribute(s) y",
		},
		{
			name:      "null",
			in:        cty.NullVal(value.PointType),
			expectErr: "null is not assignable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := New[value.Point]().Convention(value.NewPoint(-1, -1))
			err := p.Slot().AssignCty(tc.in)

			if tc.expectErr != "" {
				require.ErrorContains(t, err, tc.expectErr)
				require.False(t, p.IsSet(), "a rejected assignment must not change the property")
				require.Equal(t, value.NewPoint(-1, -1), p.Get())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, p.Get())
		})
	}
}

func TestSlot_CtyReflectsState(t *testing.T) {
	t.Parallel()

	p := New[string]()
	v, err := p.Slot().Cty()
	require.NoError(t, err)
	require.True(t, v.IsNull())

	p.Convention("<no name>")
	v, err = p.Slot().Cty()
	require.NoError(t, err)
	require.Equal(t, cty.StringVal("<no name>"), v)
}

func TestProperty_AssignmentIsMonotonic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		convention := rapid.String().Draw(rt, "convention")
		assigned := rapid.String().Draw(rt, "assigned")
		reads := rapid.IntRange(0, 5).Draw(rt, "reads")

		p := New[string]().Convention(convention)
		for i := 0; i < reads; i++ {
			require.Equal(t, convention, p.Get())
		}

		p.Set(assigned)
		for i := 0; i < reads+1; i++ {
			require.Equal(t, assigned, p.Get())
			require.True(t, p.IsSet())
		}
	})
}

func TestList_AppendPreservesOrder(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOf(rapid.String()).Draw(rt, "names")

		l := NewList[string]()
		view := l.View()
		for i, n := range names {
			l.Append(n)
			require.Equal(t, i+1, view.Len())
			require.Equal(t, n, view.At(i))
		}
		require.Equal(t, len(names), len(view.Values()))
		for i, n := range view.Values() {
			require.Equal(t, names[i], n)
		}
	})
}

func TestList_ValuesIsACopy(t *testing.T) {
	t.Parallel()

	l := NewList[int]()
	l.Append(1)
	vals := l.Values()
	vals[0] = 42

	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, l.At(0))
}
