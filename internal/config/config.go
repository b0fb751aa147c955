package config

import "runtime"

// Config represents the complete docgen configuration.
// It can be loaded from .docgen/config.yml with environment variable
// overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
}

// PathsConfig defines which files to extract from and which to ignore.
type PathsConfig struct {
	Source []string `yaml:"source" mapstructure:"source"` // glob patterns for TypeScript sources
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// OutputConfig defines where and how the manifest is written.
type OutputConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`       // output directory, relative to the root
	Pretty bool   `yaml:"pretty" mapstructure:"pretty"` // indent the manifest JSON
}

// EngineConfig tunes the extraction run.
type EngineConfig struct {
	Workers     int  `yaml:"workers" mapstructure:"workers"`         // parallel extraction workers; 0 means NumCPU
	Incremental bool `yaml:"incremental" mapstructure:"incremental"` // reuse unchanged files from the previous manifest
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Source: []string{
				"**/*.ts",
				"**/*.tsx",
				"**/*.mts",
			},
			Ignore: []string{
				"node_modules/**",
				".git/**",
				"dist/**",
				"build/**",
				".docgen/**",
				"**/*.d.ts",
			},
		},
		Output: OutputConfig{
			Dir:    ".docgen",
			Pretty: true,
		},
		Engine: EngineConfig{
			Workers:     runtime.NumCPU(),
			Incremental: true,
		},
	}
}
