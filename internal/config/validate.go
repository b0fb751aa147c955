package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Validate checks a configuration for values the engine cannot run with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if len(cfg.Paths.Source) == 0 {
		return fmt.Errorf("paths.source must contain at least one glob pattern")
	}

	if err := validatePatterns("paths.source", cfg.Paths.Source); err != nil {
		return err
	}
	if err := validatePatterns("paths.ignore", cfg.Paths.Ignore); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	if cfg.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must not be negative, got %d", cfg.Engine.Workers)
	}

	return nil
}

// validatePatterns compiles each glob pattern to surface syntax errors at
// load time instead of mid-run.
func validatePatterns(field string, patterns []string) error {
	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("%s contains an empty pattern", field)
		}
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("%s pattern %q is invalid: %w", field, pattern, err)
		}
	}
	return nil
}
