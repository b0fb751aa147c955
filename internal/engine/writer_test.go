package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tommygaessler/angular/internal/entities"
)

// Test Plan for the atomic writer:
// - Write then read round-trips the manifest
// - Missing manifest reads as empty, not as an error
// - No temp files remain after a write

func TestAtomicWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewAtomicWriter(dir, true)
	require.NoError(t, err)

	manifest := &Manifest{
		Version:     manifestVersion,
		RunID:       "test-run",
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Files: map[string]FileResult{
			"src/api.ts": {
				Checksum: "abc123",
				Entries: []entities.DocEntry{
					{
						Name:      "X",
						EntryType: entities.EntryTypeInterface,
						Members: []entities.MemberEntry{
							{
								Name:       "a",
								MemberType: entities.MemberTypeProperty,
								MemberTags: []entities.MemberTag{},
								Type:       "number",
							},
						},
					},
				},
			},
		},
	}

	require.NoError(t, w.WriteManifest(manifest))
	assert.True(t, w.HasManifest())

	got, err := w.ReadManifest()
	require.NoError(t, err)
	assert.Equal(t, manifest.Version, got.Version)
	assert.Equal(t, manifest.RunID, got.RunID)
	assert.Equal(t, manifest.Files, got.Files)
}

func TestAtomicWriter_MissingManifest(t *testing.T) {
	t.Parallel()

	w, err := NewAtomicWriter(t.TempDir(), false)
	require.NoError(t, err)

	assert.False(t, w.HasManifest())

	got, err := w.ReadManifest()
	require.NoError(t, err)
	assert.Empty(t, got.Files)
	assert.NotNil(t, got.Files)
}

func TestAtomicWriter_NoTempLeftovers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewAtomicWriter(dir, false)
	require.NoError(t, err)

	manifest := &Manifest{Version: manifestVersion, Files: map[string]FileResult{}}
	require.NoError(t, w.WriteManifest(manifest))

	leftovers, err := os.ReadDir(filepath.Join(dir, ".tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
