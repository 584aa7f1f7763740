package nodepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPath_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		path Path
		want string
	}{
		{name: "root", path: Path{}, want: ""},
		{name: "plain", path: New("restricted", "primary_access"), want: "restricted.primary_access"},
		{name: "indexed", path: New("restricted").Element("secondary_access", 2).Child("name"), want: "restricted.secondary_access[2].name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.path.String())
		})
	}
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	base := New("restricted")

	// --- Act ---
	a := base.Child("a")
	b := base.Child("b")

	// --- Assert ---
	require.Equal(t, "restricted.a", a.String())
	require.Equal(t, "restricted.b", b.String())
	require.Equal(t, 1, base.Len())
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw     string
		want    Path
		wantErr string
	}{
		{raw: "restricted", want: New("restricted")},
		{raw: "restricted.secondary_access[0]", want: New("restricted").Element("secondary_access", 0)},
		{raw: "", wantErr: "cannot be empty"},
		{raw: "a..b", wantErr: "empty segment"},
		{raw: "a.b[x]", wantErr: "invalid path segment"},
		{raw: "a.1b", wantErr: "invalid path segment"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.raw)

			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z_][a-z0-9_]{0,8}`)
		n := rapid.IntRange(1, 5).Draw(t, "segments")

		var p Path
		for i := 0; i < n; i++ {
			seg := name.Draw(t, "name")
			if rapid.Bool().Draw(t, "indexed") {
				p = p.Element(seg, rapid.IntRange(0, 99).Draw(t, "index"))
			} else {
				p = p.Child(seg)
			}
		}

		parsed, err := Parse(p.String())
		if err != nil {
			t.Fatalf("parsing %q: %v", p.String(), err)
		}
		if !parsed.Equal(p) {
			t.Fatalf("round trip changed %q into %q", p.String(), parsed.String())
		}
	})
}
