package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/app"
	"github.com/vk/restricteddsl/internal/testutil"
)

// An empty configuring block leaves every property at its convention.
func TestConfigurationPhase_UnassignedPropertiesReadConventions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `restricted {}`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "id = <no id>\n"+
		"referencePoint = -1, -1\n"+
		"primaryAccess = { primary, false, false}\n", result.Output)
}

func TestConfigurationPhase_AssignmentSupersedesConvention(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Assigning the convention's own value still counts as an assignment.
	files := map[string]string{
		"main.hcl": `
restricted {
  id              = "<no id>"
  reference_point = point(3, 4)
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "id = <no id>\n")
	require.Contains(t, result.Output, "referencePoint = 3, 4\n")

	ext := restrictedExtension(t, result)
	require.True(t, ext.ID().IsSet())
	require.True(t, ext.ReferencePoint().IsSet())
}

func TestConfigurationPhase_LastAssignmentWins(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
restricted {
  id = "first"
}
restricted {
  id = "second"
}
`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "id = second\n")
}
