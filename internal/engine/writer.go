package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestFilename is the output file the downstream renderer reads.
const ManifestFilename = "docs-output.json"

// AtomicWriter handles atomic manifest writing using the temp → rename
// pattern, so the renderer never observes a half-written manifest.
type AtomicWriter struct {
	outputDir string
	tempDir   string
	pretty    bool
}

// NewAtomicWriter creates a new atomic writer rooted at outputDir.
func NewAtomicWriter(outputDir string, pretty bool) (*AtomicWriter, error) {
	tempDir := filepath.Join(outputDir, ".tmp")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale temp files from interrupted runs
	if err := os.RemoveAll(tempDir); err != nil {
		return nil, fmt.Errorf("failed to clean temp directory: %w", err)
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &AtomicWriter{
		outputDir: outputDir,
		tempDir:   tempDir,
		pretty:    pretty,
	}, nil
}

// WriteManifest writes the extraction manifest atomically.
func (w *AtomicWriter) WriteManifest(manifest *Manifest) error {
	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(manifest, "", "  ")
	} else {
		data, err = json.Marshal(manifest)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	tempPath := filepath.Join(w.tempDir, ManifestFilename)
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp manifest: %w", err)
	}

	finalPath := filepath.Join(w.outputDir, ManifestFilename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp manifest: %w", err)
	}

	return nil
}

// ReadManifest reads the manifest from a previous run. A missing manifest is
// not an error; it yields an empty manifest so the caller falls back to a
// full extraction.
func (w *AtomicWriter) ReadManifest() (*Manifest, error) {
	manifestPath := filepath.Join(w.outputDir, ManifestFilename)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Files: make(map[string]FileResult)}, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}

	if manifest.Files == nil {
		manifest.Files = make(map[string]FileResult)
	}

	return &manifest, nil
}

// HasManifest reports whether a previous run left a manifest behind.
func (w *AtomicWriter) HasManifest() bool {
	_, err := os.Stat(filepath.Join(w.outputDir, ManifestFilename))
	return err == nil
}
