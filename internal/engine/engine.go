// Package engine drives doc extraction over a directory tree: glob-based
// discovery, a bounded worker pool running the per-file extraction, and an
// atomically written JSON manifest. Per-file extraction shares no mutable
// state, so files are processed in parallel with no ordering dependency.
package engine

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tommygaessler/angular/internal/config"
	"github.com/tommygaessler/angular/internal/extractor"
)

// manifestVersion is bumped when the manifest schema changes.
const manifestVersion = "1.0.0"

// Engine runs discovery and parallel per-file extraction for one root
// directory.
type Engine struct {
	rootDir   string
	discovery *FileDiscovery
	writer    *AtomicWriter
	progress  ProgressReporter
	workers   int
}

// New creates an engine from a validated configuration. A nil progress
// reporter defaults to no-op.
func New(rootDir string, cfg *config.Config, progress ProgressReporter) (*Engine, error) {
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	discovery, err := NewFileDiscovery(rootDir, cfg.Paths.Source, cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to compile discovery patterns: %w", err)
	}

	writer, err := NewAtomicWriter(filepath.Join(rootDir, cfg.Output.Dir), cfg.Output.Pretty)
	if err != nil {
		return nil, err
	}

	workers := cfg.Engine.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Engine{
		rootDir:   rootDir,
		discovery: discovery,
		writer:    writer,
		progress:  progress,
		workers:   workers,
	}, nil
}

// HasPreviousRun reports whether an earlier run left a manifest to do
// incremental extraction against.
func (e *Engine) HasPreviousRun() bool {
	return e.writer.HasManifest()
}

// Run performs a full extraction of every discovered file.
func (e *Engine) Run(ctx context.Context) (*Stats, error) {
	return e.run(ctx, nil)
}

// RunIncremental re-extracts only files whose checksum changed since the
// previous manifest; unchanged files carry their entries over.
func (e *Engine) RunIncremental(ctx context.Context) (*Stats, error) {
	previous, err := e.writer.ReadManifest()
	if err != nil {
		return nil, err
	}
	return e.run(ctx, previous)
}

// Watch runs incremental extraction whenever watched files change. It blocks
// until the context is cancelled.
func (e *Engine) Watch(ctx context.Context) error {
	w, err := NewWatcher(e)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
	return nil
}

func (e *Engine) run(ctx context.Context, previous *Manifest) (*Stats, error) {
	start := time.Now()

	e.progress.OnDiscoveryStart()
	files, err := e.discovery.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	e.progress.OnDiscoveryComplete(len(files))
	e.progress.OnExtractionStart(len(files))

	manifest := &Manifest{
		Version:     manifestVersion,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Files:       make(map[string]FileResult, len(files)),
	}
	stats := &Stats{}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if ctx.Err() != nil {
					continue
				}
				e.extractOne(path, previous, manifest, stats, &mu)
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.writer.WriteManifest(manifest); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	e.progress.OnComplete(stats)
	return stats, nil
}

// extractOne processes a single file: checksum, reuse-or-extract, record.
// Files that fail to read or parse are logged and skipped; they never abort
// the run.
func (e *Engine) extractOne(path string, previous *Manifest, manifest *Manifest, stats *Stats, mu *sync.Mutex) {
	relPath, err := filepath.Rel(e.rootDir, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	checksum, err := fileChecksum(path)
	if err != nil {
		log.Printf("Warning: failed to checksum %s: %v", relPath, err)
		return
	}

	if previous != nil {
		if prev, ok := previous.Files[relPath]; ok && prev.Checksum == checksum {
			mu.Lock()
			manifest.Files[relPath] = prev
			stats.FilesReused++
			countEntries(stats, prev)
			mu.Unlock()
			e.progress.OnFileProcessed(relPath)
			return
		}
	}

	entries, err := extractor.ExtractFile(path)
	if err != nil {
		log.Printf("Warning: failed to extract %s: %v", relPath, err)
		return
	}

	result := FileResult{Checksum: checksum, Entries: entries}

	mu.Lock()
	manifest.Files[relPath] = result
	stats.FilesProcessed++
	countEntries(stats, result)
	mu.Unlock()

	e.progress.OnFileProcessed(relPath)
}

func countEntries(stats *Stats, result FileResult) {
	stats.Interfaces += len(result.Entries)
	for _, entry := range result.Entries {
		stats.Members += len(entry.Members)
	}
}
