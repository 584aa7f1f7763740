package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# "+name), 0644))
	}
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "nested/c.hcl", "notes.txt")
	single := filepath.Join(root, "nested", "c.hcl")

	// --- Act ---
	files, err := CollectFiles([]string{root, single}, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "nope.hcl")}, ".hcl")
	require.ErrorContains(t, err, "error accessing path")
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}
