package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tommygaessler/angular/internal/config"
	"github.com/tommygaessler/angular/internal/engine"
)

var (
	quietFlag bool
	watchFlag bool
	fullFlag  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract interface doc entries from TypeScript sources",
	Long: `Extract walks the configured source globs, parses each TypeScript file,
and produces a doc entry for every interface declaration: properties,
methods, getters and setters, with canonical type strings and modifier
tags. The result is written atomically to .docgen/docs-output.json.

Examples:
  # Extract the current directory
  docgen extract

  # Extract without progress bars
  docgen extract --quiet

  # Watch for changes and re-extract incrementally
  docgen extract --watch

  # Ignore the previous manifest and re-extract everything
  docgen extract --full
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and re-extract incrementally")
	extractCmd.Flags().BoolVar(&fullFlag, "full", false, "Force a full extraction even when a previous manifest exists")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	progress := NewCLIProgressReporter(quietFlag)

	eng, err := engine.New(rootDir, cfg, progress)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// Incremental only pays off when a previous manifest exists
	useIncremental := cfg.Engine.Incremental && !fullFlag && eng.HasPreviousRun()
	if useIncremental && !quietFlag {
		log.Println("Using incremental extraction (only processing changed files)")
	}

	var stats *engine.Stats
	if useIncremental {
		stats, err = eng.RunIncremental(ctx)
	} else {
		stats, err = eng.Run(ctx)
	}

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("extraction cancelled")
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	if quietFlag {
		fmt.Printf("Extraction complete: %d interfaces (%d members) from %d files in %.2fs\n",
			stats.Interfaces, stats.Members,
			stats.FilesProcessed+stats.FilesReused,
			stats.Duration.Seconds())
	}

	if watchFlag {
		if !quietFlag {
			log.Println("Starting watch mode...")
		}

		if err := eng.Watch(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("watch mode failed: %w", err)
		}

		if !quietFlag {
			log.Println("Watch mode stopped")
		}
	}

	return nil
}
