package engine

import (
	"time"

	"github.com/tommygaessler/angular/internal/entities"
)

// Manifest is the serialized output of one extraction run: the plain
// structured doc entries handed to the downstream documentation renderer,
// plus the per-file checksums incremental runs key on.
type Manifest struct {
	Version     string                `json:"version"`
	RunID       string                `json:"runId"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Files       map[string]FileResult `json:"files"`
}

// FileResult holds the extraction output and content checksum for one source
// file, keyed by root-relative path.
type FileResult struct {
	Checksum string              `json:"checksum"`
	Entries  []entities.DocEntry `json:"entries"`
}

// Stats tracks what one extraction run processed.
type Stats struct {
	FilesProcessed int
	FilesReused    int
	Interfaces     int
	Members        int
	Duration       time.Duration
}
