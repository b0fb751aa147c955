package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for file discovery:
// - Match source globs, skip ignore globs
// - Declaration files excluded by pattern
// - Results are sorted for deterministic runs
// - Invalid patterns fail at construction

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileDiscovery_PatternsAndIgnores(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "src/api.ts", "interface A {}")
	writeFile(t, root, "src/view.tsx", "interface V {}")
	writeFile(t, root, "src/types.d.ts", "interface D {}")
	writeFile(t, root, "node_modules/pkg/index.ts", "interface N {}")
	writeFile(t, root, "README.md", "# readme")

	fd, err := NewFileDiscovery(root,
		[]string{"**/*.ts", "**/*.tsx"},
		[]string{"node_modules/**", "**/*.d.ts"})
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "src/api.ts"), files[0])
	assert.Equal(t, filepath.Join(root, "src/view.tsx"), files[1])
}

func TestFileDiscovery_SortedOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "b.ts", "")
	writeFile(t, root, "a.ts", "")
	writeFile(t, root, "c.ts", "")

	fd, err := NewFileDiscovery(root, []string{"**/*.ts"}, nil)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a.ts"), files[0])
	assert.Equal(t, filepath.Join(root, "b.ts"), files[1])
	assert.Equal(t, filepath.Join(root, "c.ts"), files[2])
}

func TestFileDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewFileDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
