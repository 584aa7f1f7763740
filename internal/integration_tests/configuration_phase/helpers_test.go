package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/restricted"
	"github.com/vk/restricteddsl/internal/testutil"
)

func restrictedExtension(t *testing.T, result *testutil.HarnessResult) *restricted.Extension {
	t.Helper()
	require.NotNil(t, result.App)
	n, ok := result.App.Project().Extension(restricted.ExtensionName)
	require.True(t, ok)
	ext, ok := n.(*restricted.Extension)
	require.True(t, ok)
	return ext
}
