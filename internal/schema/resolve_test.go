package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/nodepath"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		path    nodepath.Path
		want    string
		wantErr string
	}{
		{name: "root", path: nodepath.Path{}, want: "widget"},
		{name: "configuring", path: nodepath.New("part"), want: "gadget"},
		{name: "adding", path: nodepath.New("parts"), want: "gadget"},
		{name: "adding with index", path: nodepath.Path{}.Element("parts", 3), want: "gadget"},
		{name: "configuring with index", path: nodepath.Path{}.Element("part", 0), wantErr: "takes no index"},
		{name: "property", path: nodepath.New("label"), wantErr: "assignable property and has no nested node"},
		{name: "unknown", path: nodepath.New("part", "missing"), wantErr: "'gadget' has no member 'missing' at 'part'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			r := newTestRegistry()

			// --- Act ---
			got, err := r.Resolve(testContext(), "widget", tc.path)

			// --- Assert ---
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Name())
		})
	}
}
